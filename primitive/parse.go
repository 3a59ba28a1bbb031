package primitive

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var ErrUnsupportedKind = errors.New("type is not a supported scalar")

// TimeLayouts are tried in order when parsing time.Time values.
var TimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseBool reports whether raw spells "true" in any letter case.
// Every other input, including the empty string, is false.
func ParseBool(raw string) bool {
	return strings.EqualFold(raw, "true")
}

// Parse converts raw into a value of type rtype.
// The returned value has exactly type rtype, so named types keep their identity.
// Parsing never depends on the host locale: numbers use strconv and '.' as the decimal separator.
// Numbers, durations and times ignore surrounding whitespace; floats are decimal only.
func Parse(raw string, rtype reflect.Type) (reflect.Value, error) {
	kind := FromReflectType(rtype)
	out := reflect.New(rtype).Elem()

	if kind.trimmed() {
		raw = strings.TrimSpace(raw)
	}

	switch {
	case kind == 0:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnsupportedKind, rtype)

	case kind.IsSigned():
		n, err := strconv.ParseInt(raw, 10, kind.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetInt(n)

	case kind.IsUnsigned():
		n, err := strconv.ParseUint(raw, 10, kind.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetUint(n)

	case kind.IsFloat():
		if isHex(raw) {
			return reflect.Value{}, &strconv.NumError{Func: "ParseFloat", Num: raw, Err: strconv.ErrSyntax}
		}

		f, err := strconv.ParseFloat(raw, kind.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetFloat(f)
	}

	switch kind {
	case KindBool:
		out.SetBool(ParseBool(raw))

	case KindString:
		out.SetString(raw)

	case KindDuration:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetInt(int64(d))

	case KindTime:
		t, err := parseTime(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Set(reflect.ValueOf(t))

	case KindText:
		ptr := reflect.New(rtype)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw)); err != nil {
			return reflect.Value{}, err
		}
		out = ptr.Elem()
	}

	return out, nil
}

func (k KindEnum) trimmed() bool {
	return k.IsNumber() || k == KindDuration || k == KindTime
}

// isHex reports a 0x prefix after an optional sign, which strconv.ParseFloat would accept.
func isHex(raw string) bool {
	raw = strings.TrimLeft(raw, "+-")
	return len(raw) > 1 && raw[0] == '0' && (raw[1] == 'x' || raw[1] == 'X')
}

func parseTime(raw string) (time.Time, error) {
	var firstErr error
	for _, layout := range TimeLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	return time.Time{}, firstErr
}
