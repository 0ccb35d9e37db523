package tuple

// Mapper is the degree-agnostic view of a composed projection from S to a tuple.
type Mapper[S any] interface {
	// Degree returns the number of extractors, which is the degree of every produced tuple.
	Degree() int

	// Get returns the extractor at index unchanged, or ErrIndexOutOfRange.
	Get(index int) (any, error)

	// Map applies every extractor to source and collects the results.
	Map(source S) (Tuple, error)
}

// Mapper0 maps every source to the empty tuple.
type Mapper0[S any] struct{}

// MapperOf0 returns the mapper producing empty tuples.
func MapperOf0[S any]() Mapper0[S] {
	return Mapper0[S]{}
}

// ToTuple0 returns a function mapping every source to the empty tuple.
func ToTuple0[S any]() func(S) Tuple0 {
	return MapperOf0[S]().Apply
}

// Degree returns 0.
func (Mapper0[S]) Degree() int {
	return 0
}

// Get always fails with ErrIndexOutOfRange.
func (Mapper0[S]) Get(index int) (any, error) {
	return nil, mapperIndexOutOfRange(index, 0)
}

// Apply returns the empty tuple.
func (Mapper0[S]) Apply(S) Tuple0 {
	return Of0()
}

// Map returns the empty tuple.
func (m Mapper0[S]) Map(source S) (Tuple, error) {
	return m.Apply(source), nil
}

// mustExtractors panics if any extractor of the named mapper is missing.
func mustExtractors(name string, missing ...bool) {
	for i, isMissing := range missing {
		if isMissing {
			panic(nilExtractor(name, i))
		}
	}
}
