package convert_test

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"env-binder/convert"
	"env-binder/enum"
)

type Mode string

const (
	ModeFast Mode = "Fast"
	ModeSafe Mode = "Safe"
)

type Switch bool

func init() {
	enum.Register(ModeFast, ModeSafe)
}

func convertTo[T any](t *testing.T, raw string, present bool) (T, error) {
	t.Helper()

	var zero T
	v, err := convert.New(reflect.TypeFor[T]()).Convert("TEST_VAR", raw, present)
	if err != nil {
		return zero, err
	}

	require.Equal(t, reflect.TypeFor[T](), v.Type(), "converted value must have the declared type")
	return v.Interface().(T), nil
}

func TestShapeOf(t *testing.T) {
	t.Parallel()

	cases := map[reflect.Type]convert.Shape{
		reflect.TypeFor[bool]():                convert.ShapeBool,
		reflect.TypeFor[Switch]():              convert.ShapeBool,
		reflect.TypeFor[Mode]():                convert.ShapeEnum,
		reflect.TypeFor[string]():              convert.ShapeScalar,
		reflect.TypeFor[float64]():             convert.ShapeScalar,
		reflect.TypeFor[time.Time]():           convert.ShapeScalar,
		reflect.TypeFor[uuid.UUID]():           convert.ShapeScalar,
		reflect.TypeFor[[]string]():            convert.ShapeSlice,
		reflect.TypeFor[[]Mode]():              convert.ShapeSlice,
		reflect.TypeFor[[3]int]():              convert.ShapeArray,
		reflect.TypeFor[[][]string]():          convert.ShapeUnsupported,
		reflect.TypeFor[map[string]string]():   convert.ShapeUnsupported,
		reflect.TypeFor[*int]():                convert.ShapeUnsupported,
		reflect.TypeFor[struct{ A int }]():     convert.ShapeUnsupported,
		reflect.TypeFor[[]struct{ A int }]():   convert.ShapeUnsupported,
		reflect.TypeFor[chan int]():            convert.ShapeUnsupported,
		reflect.TypeFor[func()]():              convert.ShapeUnsupported,
		reflect.TypeFor[any]():                 convert.ShapeUnsupported,
		reflect.TypeFor[[]time.Duration]():     convert.ShapeSlice,
		reflect.TypeFor[[2]bool]():             convert.ShapeArray,
		reflect.TypeFor[[]uuid.UUID]():         convert.ShapeSlice,
		reflect.TypeFor[complex128]():          convert.ShapeUnsupported,
		reflect.TypeFor[[]map[string]string](): convert.ShapeUnsupported,
	}

	for typ, want := range cases {
		assert.Equal(t, want, convert.ShapeOf(typ), typ.String())
	}
}

func TestConvert_Bool(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"true", "TRUE", "True", "tRuE"} {
		got, err := convertTo[bool](t, raw, true)
		require.NoError(t, err)
		assert.True(t, got, raw)
	}

	for _, raw := range []string{"", "1", "yes", "on", "false", " true", "truee"} {
		got, err := convertTo[bool](t, raw, true)
		require.NoError(t, err)
		assert.False(t, got, raw)
	}

	got, err := convertTo[bool](t, "", false)
	require.NoError(t, err)
	assert.False(t, got, "unset is false")

	named, err := convertTo[Switch](t, "True", true)
	require.NoError(t, err)
	assert.Equal(t, Switch(true), named)
}

func TestConvert_Enum(t *testing.T) {
	t.Parallel()

	got, err := convertTo[Mode](t, "safe", true)
	require.NoError(t, err)
	assert.Equal(t, ModeSafe, got)

	_, err = convertTo[Mode](t, "reckless", true)
	var convErr *convert.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.ErrorIs(t, err, enum.ErrNoMember)
	assert.Equal(t, "TEST_VAR", convErr.Name)
	assert.Equal(t, "reckless", convErr.Value)
	assert.Equal(t, reflect.TypeFor[Mode](), convErr.Type)

	_, err = convertTo[Mode](t, "", false)
	require.ErrorAs(t, err, &convErr)
	assert.True(t, convErr.Absent)
}

func TestConvert_Scalar(t *testing.T) {
	t.Parallel()

	f, err := convertTo[float64](t, "12.5", true)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, f, 0)

	n, err := convertTo[int](t, "42", true)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	s, err := convertTo[string](t, "", false)
	require.NoError(t, err)
	assert.Empty(t, s, "unset string is empty")

	_, err = convertTo[int](t, "", false)
	var convErr *convert.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.True(t, convErr.Absent)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), "<unset>")

	_, err = convertTo[int8](t, "1000", true)
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = convertTo[float64](t, "12,5", true)
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "12,5", convErr.Value)
}

func TestConvert_Sequence(t *testing.T) {
	t.Parallel()

	t.Run("strings are trimmed and ordered", func(t *testing.T) {
		t.Parallel()

		got, err := convertTo[[]string](t, "a, b ,c", true)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("numbers", func(t *testing.T) {
		t.Parallel()

		got, err := convertTo[[]int](t, "3, 1,2", true)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 1, 2}, got)
	})

	t.Run("enumerations", func(t *testing.T) {
		t.Parallel()

		got, err := convertTo[[]Mode](t, "fast, SAFE", true)
		require.NoError(t, err)
		assert.Equal(t, []Mode{ModeFast, ModeSafe}, got, spew.Sdump(got))
	})

	t.Run("booleans", func(t *testing.T) {
		t.Parallel()

		got, err := convertTo[[]bool](t, "true, no, TRUE", true)
		require.NoError(t, err)
		assert.Equal(t, []bool{true, false, true}, got)
	})

	t.Run("durations", func(t *testing.T) {
		t.Parallel()

		got, err := convertTo[[]time.Duration](t, "1s, 2m", true)
		require.NoError(t, err)
		assert.Equal(t, []time.Duration{time.Second, 2 * time.Minute}, got)
	})

	t.Run("array", func(t *testing.T) {
		t.Parallel()

		got, err := convertTo[[3]uint](t, "1,2, 3", true)
		require.NoError(t, err)
		assert.Equal(t, [3]uint{1, 2, 3}, got)
	})

	t.Run("array length mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := convertTo[[3]uint](t, "1,2", true)
		assert.ErrorIs(t, err, convert.ErrLength)
	})

	t.Run("bad element", func(t *testing.T) {
		t.Parallel()

		_, err := convertTo[[]int](t, "1, two, 3", true)
		var convErr *convert.ConversionError
		require.ErrorAs(t, err, &convErr)
		assert.Equal(t, "1, two, 3", convErr.Value)
		assert.Equal(t, reflect.TypeFor[[]int](), convErr.Type)
		assert.Contains(t, err.Error(), `element 1 ("two")`)
	})

	t.Run("empty value is one empty element", func(t *testing.T) {
		t.Parallel()

		got, err := convertTo[[]string](t, "", true)
		require.NoError(t, err)
		assert.Equal(t, []string{""}, got)
	})
}

func TestConvert_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := convertTo[map[string]string](t, "a=b", true)

	var convErr *convert.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.ErrorIs(t, err, convert.ErrUnsupportedType)
}
