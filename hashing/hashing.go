// Package hashing provides order-sensitive hashing of heterogeneous values.
// Tuples use it to derive their hash codes from their element sequence.
package hashing

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"math"
	"reflect"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the XXH3 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// XXH3 returns the 64-bit XXH3 hash of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hash, an error is returned.
func XXH3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

// XXHash64 returns the 64-bit xxHash of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hash, an error is returned.
func XXHash64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Sum64 hashes a sequence of values with XXH3. The result depends on the
// values, their dynamic types and their order. Values that fail to hash
// themselves fall back to their printed representation, so Sum64 never fails.
func Sum64(values ...any) uint64 {
	h := xxh3.New()

	for _, value := range values {
		if err := WriteValue(h, value); err != nil {
			writeFallback(h, value)
		}
	}

	return h.Sum64()
}

// Type tags keep values of different types from colliding,
// e.g. int(1) and "1", or a nil and an empty string.
const (
	tagNil byte = iota
	tagBool
	tagInt
	tagUint
	tagFloat
	tagString
	tagBytes
	tagHashable
	tagOther
	tagSequence
	tagStruct
	tagMap
	tagReference
	tagCycle
)

// WriteValue writes a typed, self-delimiting encoding of value to h.
// Primitive types are encoded directly and Hashable values hash themselves.
// Anything else is walked the way reflect.DeepEqual compares it: pointers and
// interfaces by what they point to, structs field by field, sequences element
// by element and maps independently of iteration order. Values that DeepEqual
// reports equal therefore write the same bytes.
func WriteValue(h hash.Hash, value any) error { //nolint:cyclop
	switch typedValue := value.(type) {
	case nil:
		return writeTag(h, tagNil)
	case bool:
		return writeBool(h, typedValue)
	case int:
		return writeInt(h, int64(typedValue))
	case int8:
		return writeInt(h, int64(typedValue))
	case int16:
		return writeInt(h, int64(typedValue))
	case int32:
		return writeInt(h, int64(typedValue))
	case int64:
		return writeInt(h, typedValue)
	case uint:
		return writeUint(h, uint64(typedValue))
	case uint8:
		return writeUint(h, uint64(typedValue))
	case uint16:
		return writeUint(h, uint64(typedValue))
	case uint32:
		return writeUint(h, uint64(typedValue))
	case uint64:
		return writeUint(h, typedValue)
	case float32:
		return writeFloat(h, float64(typedValue))
	case float64:
		return writeFloat(h, typedValue)
	case string:
		return writeBytes(h, tagString, []byte(typedValue))
	case []byte:
		return writeBytes(h, tagBytes, typedValue)
	case Hashable:
		if err := writeTag(h, tagHashable); err != nil {
			return err
		}

		return typedValue.UpdateHash(h)
	default:
		w := walker{h: h}

		return w.write(reflect.ValueOf(value))
	}
}

// walker hashes arbitrary values through reflection. active holds the
// references on the current path, so cyclic values terminate.
type walker struct {
	h      hash.Hash
	active map[visit]struct{}
}

type visit struct {
	ptr uintptr
	typ reflect.Type
}

func (w *walker) write(v reflect.Value) error { //nolint:cyclop
	switch v.Kind() {
	case reflect.Invalid:
		return writeTag(w.h, tagNil)
	case reflect.Bool:
		return writeBool(w.h, v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return writeInt(w.h, v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return writeUint(w.h, v.Uint())
	case reflect.Float32, reflect.Float64:
		return writeFloat(w.h, v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		if err := writeFloat(w.h, real(c)); err != nil {
			return err
		}

		return writeFloat(w.h, imag(c))
	case reflect.String:
		return writeBytes(w.h, tagString, []byte(v.String()))
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return writeBytes(w.h, tagBytes, v.Bytes())
		}

		return w.follow(v, func() error { return w.sequence(v) })
	case reflect.Array:
		return w.sequence(v)
	case reflect.Struct:
		return w.structure(v)
	case reflect.Pointer:
		if v.IsNil() {
			return writeTag(w.h, tagNil)
		}

		return w.follow(v, func() error { return w.write(v.Elem()) })
	case reflect.Interface:
		if v.IsNil() {
			return writeTag(w.h, tagNil)
		}

		return w.write(v.Elem())
	case reflect.Map:
		return w.follow(v, func() error { return w.mapping(v) })
	default:
		// Channels, funcs and unsafe pointers are only ever equal to themselves.
		return writeUint64(w.h, tagReference, uint64(v.Pointer()))
	}
}

func (w *walker) follow(v reflect.Value, next func() error) error {
	key := visit{ptr: v.Pointer(), typ: v.Type()}
	if key.ptr == 0 {
		return next()
	}

	if _, seen := w.active[key]; seen {
		return writeTag(w.h, tagCycle)
	}

	if w.active == nil {
		w.active = make(map[visit]struct{})
	}

	w.active[key] = struct{}{}
	defer delete(w.active, key)

	return next()
}

func (w *walker) sequence(v reflect.Value) error {
	if err := writeUint64(w.h, tagSequence, uint64(v.Len())); err != nil { //nolint:gosec
		return err
	}

	for i := range v.Len() {
		if err := w.write(v.Index(i)); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) structure(v reflect.Value) error {
	if err := writeBytes(w.h, tagStruct, []byte(v.Type().String())); err != nil {
		return err
	}

	for i := range v.NumField() {
		if err := w.write(v.Field(i)); err != nil {
			return err
		}
	}

	return nil
}

// mapping sums per-entry hashes, which makes the result independent of
// iteration order.
func (w *walker) mapping(v reflect.Value) error {
	var sum uint64

	entries := v.MapRange()
	for entries.Next() {
		entryHash := xxh3.New()
		entry := walker{h: entryHash, active: w.active}

		if err := entry.write(entries.Key()); err != nil {
			return err
		}

		if err := entry.write(entries.Value()); err != nil {
			return err
		}

		sum += entryHash.Sum64()
	}

	if err := writeUint64(w.h, tagMap, uint64(v.Len())); err != nil { //nolint:gosec
		return err
	}

	return writeUint64(w.h, tagMap, sum)
}

func writeFallback(h hash.Hash, value any) {
	_ = writeBytes(h, tagOther, []byte(fmt.Sprintf("%T:%v", value, value)))
}

func writeTag(h hash.Hash, tag byte) error {
	_, err := h.Write([]byte{tag})

	return err
}

func writeBool(h hash.Hash, value bool) error {
	b := byte(0)
	if value {
		b = 1
	}

	_, err := h.Write([]byte{tagBool, b})

	return err
}

func writeInt(h hash.Hash, value int64) error {
	return writeUint64(h, tagInt, uint64(value)) //nolint:gosec
}

func writeUint(h hash.Hash, value uint64) error {
	return writeUint64(h, tagUint, value)
}

// writeFloat folds -0 into +0, which compares equal to it.
func writeFloat(h hash.Hash, value float64) error {
	if value == 0 {
		value = 0
	}

	return writeUint64(h, tagFloat, math.Float64bits(value))
}

func writeUint64(h hash.Hash, tag byte, value uint64) error {
	var buf [9]byte

	buf[0] = tag
	binary.BigEndian.PutUint64(buf[1:], value)

	_, err := h.Write(buf[:])

	return err
}

// writeBytes length-prefixes the payload so adjacent values cannot run together.
func writeBytes(h hash.Hash, tag byte, payload []byte) error {
	if err := writeUint64(h, tag, uint64(len(payload))); err != nil {
		return err
	}

	_, err := h.Write(payload)

	return err
}
