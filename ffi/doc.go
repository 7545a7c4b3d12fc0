// Package ffi is the boundary layer a host (a cgo or JNI thunk, in the
// original) would call into: it validates raw pointers and lengths,
// constructs typed slice views over caller-owned memory with Bind, and
// delegates to vect for the actual kernel work. Every exported entry point
// other than Bind takes a context.Context purely to carry a per-call correlation ID
// through its log line; none of them are cancellable, since the
// underlying vect operations are CPU-bound and run to completion.
package ffi
