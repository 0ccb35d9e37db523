package tuple

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by Get when the index is outside [0, degree).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNullElement is returned when a strict tuple is constructed with a nil element.
	ErrNullElement = errors.New("null element")

	// ErrNilExtractor is the panic value of a mapper factory given a nil extractor.
	ErrNilExtractor = errors.New("nil extractor")
)

func indexOutOfRange(index, degree int) error {
	return fmt.Errorf("%w: index %d is illegal. The degree of this Tuple is %d.", //nolint:revive
		ErrIndexOutOfRange, index, degree)
}

func mapperIndexOutOfRange(index, degree int) error {
	return fmt.Errorf("%w: index %d is illegal. The degree of this Mapper is %d.", //nolint:revive
		ErrIndexOutOfRange, index, degree)
}

func nullElement(kindName string, index int) error {
	return fmt.Errorf("%w: %s cannot hold null values. Element %d is nil.", //nolint:revive
		ErrNullElement, kindName, index)
}

func nilExtractor(mapperName string, index int) error {
	return fmt.Errorf("%w: extractor %d of %s is nil", ErrNilExtractor, index, mapperName)
}
