// Package lifecycle classifies vector element types and carries out their
// construct, relocate, copy and destroy steps.
//
// # Policies
//
// A Policy is a zero-size struct type passed as a type parameter, so the
// classification is fixed once per instantiation and every call is
// statically bound:
//
//   - Trivial[T]: copying the bytes of T copies its value and nothing needs
//     releasing. Relocation is a bulk copy; destruction only drops
//     references so the collector can reclaim them.
//   - Managed[T, PT]: T owns resources. Each slot is explicitly
//     initialized, moved, deep-copied and released through the methods of
//     *T (the Resource constraint).
//
// # Resources
//
// A managed element type implements Resource on its pointer:
//
//	type Blob struct{ data []byte }
//
//	func (b *Blob) Init()              { b.data = make([]byte, 0, 64) }
//	func (b *Blob) Release()           { b.data = nil }
//	func (b *Blob) CopyFrom(src *Blob) { b.data = append([]byte(nil), src.data...) }
//
// Release must be a no-op on the zero value: a moved-from slot is zeroed and
// later released like any other. CopyFrom is called on a zero receiver and
// must leave it an independent deep copy of src. None of the methods may
// panic; a panic leaves the owning buffer in an unspecified state.
//
// # Move semantics
//
// Moving a managed element is a bitwise transfer followed by zeroing the
// source, which hands ownership of everything the element references to
// the destination. Move-assignment releases the destination first.
package lifecycle
