package convert

import (
	"fmt"
	"reflect"
	"strings"

	"env-binder/enum"
	"env-binder/primitive"
)

// Separator splits sequence values.
const Separator = ","

// Converter turns raw environment values into values of a single type.
// Its shape, enumeration members and element converter are resolved once by New.
type Converter struct {
	typ     reflect.Type
	shape   Shape
	members *enum.Members
	elem    *Converter
}

// New builds the converter for t. Unsupported types are accepted here and fail on Convert,
// so a bad field only aborts population when its turn comes.
func New(t reflect.Type) *Converter {
	c := &Converter{typ: t, shape: ShapeOf(t)}

	switch c.shape {
	case ShapeEnum:
		c.members, _ = enum.Lookup(t)
	case ShapeSlice, ShapeArray:
		c.elem = New(t.Elem())
	}

	return c
}

func (c *Converter) Type() reflect.Type { return c.typ }

func (c *Converter) Shape() Shape { return c.shape }

// Convert converts the raw value of the variable name. present is false when the variable is unset.
// Every failure is returned as a *ConversionError.
func (c *Converter) Convert(name, raw string, present bool) (reflect.Value, error) {
	if !present {
		raw = ""
	}

	v, err := c.convert(raw, present)
	if err != nil {
		return reflect.Value{}, &ConversionError{
			Name:   name,
			Value:  raw,
			Absent: !present,
			Type:   c.typ,
			Err:    err,
		}
	}

	return v, nil
}

func (c *Converter) convert(raw string, present bool) (reflect.Value, error) {
	switch c.shape {
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, c.typ)

	case ShapeBool:
		// unset is false, not an error
		return reflect.ValueOf(present && primitive.ParseBool(raw)).Convert(c.typ), nil

	case ShapeEnum:
		return c.members.Parse(raw)

	case ShapeScalar:
		return primitive.Parse(raw, c.typ)

	case ShapeSlice, ShapeArray:
		return c.sequence(raw)
	}
}

func (c *Converter) sequence(raw string) (reflect.Value, error) {
	segments := strings.Split(raw, Separator)

	var out reflect.Value
	if c.shape == ShapeArray {
		if len(segments) != c.typ.Len() {
			return reflect.Value{}, fmt.Errorf("%w: %s holds %d elements, got %d",
				ErrLength, c.typ, c.typ.Len(), len(segments))
		}

		out = reflect.New(c.typ).Elem()
	} else {
		out = reflect.MakeSlice(c.typ, len(segments), len(segments))
	}

	for i, segment := range segments {
		segment = strings.TrimSpace(segment)

		v, err := c.elem.convert(segment, true)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("element %d (%q): %w", i, segment, err)
		}

		out.Index(i).Set(v)
	}

	return out, nil
}
