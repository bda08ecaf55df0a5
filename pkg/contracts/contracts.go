package contracts

// Equaler is implemented by every type that is comparable.
type Equaler interface {
	Equal(Equaler) bool // Equal checks for equality.
}

// HashCoder is implemented by every type with a structural hash code.
// Values that are Equal must have the same hash code.
type HashCoder interface {
	HashCode() int32 // HashCode returns the structural hash code.
}

// IDer is implemented by every entity with an identity.
type IDer interface {
	ID() string // ID returns the identity token.
}

// ClassNamer is implemented by every entity that knows the name of its class.
type ClassNamer interface {
	ClassName() string // ClassName returns the class name.
}

// Entity is implemented by every identifiable, hashable entity.
type Entity interface {
	IDer
	ClassNamer
	HashCoder
}
