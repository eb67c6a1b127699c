package common

// Object is the identity every stored record exposes.
type Object interface {
	ID() string
	SetID(id string)
}

// Record constrains a pointer to T that carries the identity contract.
// New builds a fresh value with a unique identifier and the given display name;
// it is called on a zero value, so it must not depend on the receiver.
type Record[T any] interface {
	*T
	Object
	New(name string) T
}

// NewObject constructs a T through its Record implementation.
func NewObject[T any, P Record[T]](name string) T {
	var zero T
	return P(&zero).New(name)
}

// IDOf returns the identifier of v.
func IDOf[T any, P Record[T]](v T) string {
	return P(&v).ID()
}

// WithID returns a copy of v whose identifier is id. v itself is left untouched.
func WithID[T any, P Record[T]](v T, id string) T {
	P(&v).SetID(id)
	return v
}
