package convert

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrUnsupportedType = errors.New("field type cannot be bound to an environment variable")
	ErrLength          = errors.New("wrong number of elements for a fixed-size array")
)

// ConversionError reports a raw environment value that could not be coerced into a field's type.
type ConversionError struct {
	Name   string       // binding name, the environment variable
	Value  string       // raw value; empty when Absent
	Absent bool         // the variable was not set
	Type   reflect.Type // declared type of the target field
	Err    error
}

func (e *ConversionError) Error() string {
	value := fmt.Sprintf("%q", e.Value)
	if e.Absent {
		value = "<unset>"
	}

	return fmt.Sprintf("failed to convert value %s of %s to target type %s: %v", value, e.Name, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
