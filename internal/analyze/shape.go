package analyze

import (
	"go/types"

	"env-binder/convert"
	"env-binder/primitive"
)

// ShapeOf classifies t like convert.ShapeOf does at runtime, without the
// enumeration registry.
func ShapeOf(t types.Type) convert.Shape {
	if t == nil {
		return convert.ShapeUnsupported
	}

	if b, ok := t.Underlying().(*types.Basic); ok && b.Info()&types.IsBoolean != 0 {
		return convert.ShapeBool
	}

	if KindOf(t) != 0 {
		return convert.ShapeScalar
	}

	var (
		elem  types.Type
		shape convert.Shape
	)

	switch u := t.Underlying().(type) {
	case *types.Slice:
		elem, shape = u.Elem(), convert.ShapeSlice
	case *types.Array:
		elem, shape = u.Elem(), convert.ShapeArray
	default:
		return convert.ShapeUnsupported
	}

	es := ShapeOf(elem)
	if es == convert.ShapeUnsupported || es.IsSequence() {
		return convert.ShapeUnsupported
	}

	return shape
}

// KindOf is primitive.FromReflectType for go/types.
func KindOf(t types.Type) primitive.KindEnum {
	if named, ok := t.(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() == "time" {
			switch obj.Name() {
			case "Duration":
				return primitive.KindDuration
			case "Time":
				return primitive.KindTime
			}
		}
	}

	if implementsTextUnmarshaler(t) {
		return primitive.KindText
	}

	b, ok := t.Underlying().(*types.Basic)
	if !ok {
		return 0
	}

	switch b.Kind() {
	default:
		return 0
	case types.Int:
		return primitive.KindInt
	case types.Int8:
		return primitive.KindInt8
	case types.Int16:
		return primitive.KindInt16
	case types.Int32:
		return primitive.KindInt32
	case types.Int64:
		return primitive.KindInt64
	case types.Uint:
		return primitive.KindUint
	case types.Uint8:
		return primitive.KindUint8
	case types.Uint16:
		return primitive.KindUint16
	case types.Uint32:
		return primitive.KindUint32
	case types.Uint64:
		return primitive.KindUint64
	case types.Float32:
		return primitive.KindFloat32
	case types.Float64:
		return primitive.KindFloat64
	case types.String:
		return primitive.KindString
	}
}

// implementsTextUnmarshaler reports whether *t has UnmarshalText([]byte) error.
func implementsTextUnmarshaler(t types.Type) bool {
	if _, ok := t.(*types.Pointer); ok {
		return false
	}

	obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(t), true, nil, "UnmarshalText")
	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}

	sig := fn.Type().(*types.Signature)
	if sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		return false
	}

	param, ok := sig.Params().At(0).Type().(*types.Slice)
	if !ok || !types.Identical(param.Elem(), types.Typ[types.Byte]) {
		return false
	}

	return types.Identical(sig.Results().At(0).Type(), types.Universe.Lookup("error").Type())
}
