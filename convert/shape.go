package convert

import (
	"reflect"

	"env-binder/enum"
	"env-binder/primitive"
)

//go:generate go tool stringer -type=Shape -output=shape_string.go

// Shape is the declared form of a bound field. It is fixed when the field descriptor is built.
type Shape int

const (
	ShapeUnsupported Shape = iota
	ShapeBool
	ShapeEnum
	ShapeScalar
	ShapeSlice
	ShapeArray

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// IsSequence reports whether values of the shape are comma separated lists.
func (s Shape) IsSequence() bool {
	return s == ShapeSlice || s == ShapeArray
}

// ShapeOf classifies t. Registered enumerations win over their underlying kind,
// so an enumeration over int is never parsed as a number.
func ShapeOf(t reflect.Type) Shape {
	if t == nil {
		return ShapeUnsupported
	}

	if _, ok := enum.Lookup(t); ok {
		return ShapeEnum
	}

	if t.Kind() == reflect.Bool {
		return ShapeBool
	}

	if primitive.FromReflectType(t) != 0 {
		return ShapeScalar
	}

	if t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		elem := ShapeOf(t.Elem())
		if elem == ShapeUnsupported || elem.IsSequence() {
			return ShapeUnsupported
		}

		if t.Kind() == reflect.Array {
			return ShapeArray
		}

		return ShapeSlice
	}

	return ShapeUnsupported
}
