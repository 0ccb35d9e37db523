package tuple

// Tuple0 is the tuple of degree 0. It has no getters, so Get always fails with
// ErrIndexOutOfRange. In Go an interface without methods is just any, so Tuple0
// doubles as the degree-0 capability contract.
type Tuple0 struct {
	base
}

var empty = Tuple0{base: base{kind: kindEmpty}} //nolint:gochecknoglobals

// Of0 returns the empty tuple. There is nothing to label, so labels are ignored.
func Of0(_ ...Option) Tuple0 {
	return empty
}

// tupleKind is fixed, so the zero value of Tuple0 is the same tuple as Of0.
func (Tuple0) tupleKind() kind {
	return kindEmpty
}

// Kind returns "Empty".
func (Tuple0) Kind() string {
	return kindEmpty.name
}

// Equals reports whether other is also the empty tuple.
func (Tuple0) Equals(other any) bool {
	return equalTuple(kindEmpty, nil, other)
}

// String returns "Empty ()".
func (Tuple0) String() string {
	return render(kindEmpty.name, nil)
}
