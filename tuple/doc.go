// Package tuple provides immutable, fixed-arity heterogeneous tuples of degree 0 through 20,
// plus an unbounded fallback for anything longer.
//
// Every degree has three faces:
//
//   - A capability interface named after the arity (Single, Pair, Triple, ... Vigintuple)
//     that only declares the positional getters First() ... Twentieth(). Any type with the
//     right getters satisfies it, so ad hoc implementations work without the factory.
//   - A strict concrete type (Tuple1 ... Tuple20) created with Of1 ... Of20. Strict tuples
//     never hold nil elements; construction fails with ErrNullElement instead.
//   - A nullable concrete type (NullableTuple1 ... NullableTuple20) created with
//     NullableOf1 ... NullableOf20, whose getters return optional.Value.
//
// All concrete tuples implement Tuple, the degree-agnostic view used by generic code:
// positional Get with bounds checking, Stream, labels, structural equality and hashing.
//
// Tuples can also be produced by a Mapper, which composes one extractor function per
// position and is applied to many source records, or assembled step by step with the
// type-state builder (NewBuilder, AddFirst, AddSecond, ...), where every step's arity
// is tracked by the compiler.
//
// When the arity is only known at run time, OfArray picks the matching fixed-degree
// type for up to MaxDegree elements and an Unbounded tuple beyond that. It is the only
// place where the package dispatches on a runtime length.
//
// Example:
//
//	player, err := tuple.Of2("Jordan", 23, tuple.WithLabels("lastName", "number"))
//	if err != nil {
//	    return err
//	}
//
//	player.First()       // "Jordan"
//	player.Second()      // 23
//	player.LabelledMap() // map[lastName:Jordan number:23]
//
// The per-degree code lives in the *_gen.go files, which are generated by
// cmd/tuplegen from the templates in package tuplegen. Do not edit them by hand.
package tuple

//go:generate go run ../cmd/tuplegen -out .
