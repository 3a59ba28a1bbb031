package binding

import (
	"reflect"

	"env-binder/convert"
)

// Field describes one bound field: its declaration, where it lives and how to read and write it.
type Field struct {
	Declaration

	// Path is a human readable location such as "Settings.Port".
	Path string

	conv  *convert.Converter
	value reflect.Value
}

// NewField builds the descriptor for value, which must be settable.
// The conversion shape is chosen here, once per descriptor.
func NewField(decl Declaration, path string, value reflect.Value) Field {
	if !value.CanSet() {
		panic("binding: field " + path + " is not settable")
	}

	return Field{
		Declaration: decl,
		Path:        path,
		conv:        convert.New(value.Type()),
		value:       value,
	}
}

func (f Field) Type() reflect.Type { return f.value.Type() }

func (f Field) Shape() convert.Shape { return f.conv.Shape() }

// Get returns the current value of the field.
func (f Field) Get() any { return f.value.Interface() }

// Set assigns v, which must have the field's type.
func (f Field) Set(v reflect.Value) { f.value.Set(v) }

// Convert converts a raw value read for the field's name.
func (f Field) Convert(raw string, present bool) (reflect.Value, error) {
	return f.conv.Convert(f.Name, raw, present)
}
