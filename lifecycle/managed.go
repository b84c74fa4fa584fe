package lifecycle

// Resource is the constraint satisfied by pointers to managed element
// types. See the package documentation for the contract of each method.
type Resource[T any] interface {
	*T
	Init()
	Release()
	CopyFrom(src *T)
}

// Managed is the Policy for element types that own resources. Every step
// goes through the Resource methods of PT.
type Managed[T any, PT Resource[T]] struct{}

func (Managed[T, PT]) Trivial() bool { return false }

func (Managed[T, PT]) Init(s []T) {
	for i := range s {
		PT(&s[i]).Init()
	}
}

func (Managed[T, PT]) Destroy(s []T) {
	var zero T
	for i := range s {
		PT(&s[i]).Release()
		s[i] = zero
	}
}

func (Managed[T, PT]) Relocate(dst, src []T) {
	var zero T
	for i := range src {
		dst[i] = src[i]
		src[i] = zero
		PT(&src[i]).Release()
	}
}

func (Managed[T, PT]) Clone(dst, src []T) {
	for i := range src {
		PT(&dst[i]).CopyFrom(&src[i])
	}
}

func (Managed[T, PT]) CopyValue(src *T) T {
	var v T
	PT(&v).CopyFrom(src)
	return v
}

func (Managed[T, PT]) Assign(dst *T, v T) {
	PT(dst).Release()
	*dst = v
}

func (Managed[T, PT]) ShiftRight(s []T) {
	n := len(s)
	if n == 0 {
		return
	}
	var zero T
	PT(&s[n-1]).Release()
	for i := n - 1; i > 0; i-- {
		s[i] = s[i-1]
	}
	s[0] = zero
}

func (Managed[T, PT]) ShiftLeft(s []T) {
	n := len(s)
	if n == 0 {
		return
	}
	var zero T
	PT(&s[0]).Release()
	for i := 0; i < n-1; i++ {
		s[i] = s[i+1]
	}
	s[n-1] = zero
}
