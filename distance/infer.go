package distance

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// ErrCannotInfer is returned by Infer when no metric fits the sample element.
var ErrCannotInfer = errors.New("cannot infer distance function")

// Shape classifies an element for distance inference.
type Shape int

const (
	ShapeUnsupported Shape = iota
	ShapeScalar
	ShapeVector
	ShapeRGB
)

func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeVector:
		return "vector"
	case ShapeRGB:
		return "rgb"
	default:
		return "unsupported"
	}
}

// Metric returns the metric Infer selects for the shape.
// The bool is false for ShapeUnsupported.
func (s Shape) Metric() (Metric, bool) {
	switch s {
	case ShapeScalar:
		return MetricAbs, true
	case ShapeVector:
		return MetricSquaredL2, true
	case ShapeRGB:
		return MetricRGB, true
	default:
		return 0, false
	}
}

// ShapeOf classifies sample. For vectors, dim is the number of components.
// Empty vectors are unsupported.
//
// Besides the builtin types, named numeric types (type Celsius float64) are
// scalars, and structs with numeric R, G and B fields (or r, g and b) are
// colors even without an RGB method.
func ShapeOf(sample any) (shape Shape, dim int) {
	switch v := sample.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return ShapeScalar, 0
	case []float64:
		return vectorShape(len(v))
	case []float32:
		return vectorShape(len(v))
	case []int:
		return vectorShape(len(v))
	case [2]float64:
		return ShapeVector, 2
	case [3]float64:
		return ShapeVector, 3
	case RGB:
		return ShapeRGB, 3
	case nil:
		return ShapeUnsupported, 0
	default:
		rt := reflect.TypeOf(sample)
		if isNumberKind(rt.Kind()) {
			return ShapeScalar, 0
		}
		if _, ok := rgbFields(rt); ok {
			return ShapeRGB, 3
		}
		return ShapeUnsupported, 0
	}
}

func vectorShape(n int) (Shape, int) {
	if n == 0 {
		return ShapeUnsupported, 0
	}
	return ShapeVector, n
}

// Infer returns a distance function suited to the element type of sample.
//
// Scalars and vectors are matched on the static element type T, so T must be
// a concrete type such as int, Celsius or []float64. Elements implementing
// RGB are supported for any T, including interface types; every element must
// then be a non-nil RGB. Structs matched by their R, G and B fields are read
// through reflection, and every element must have the sample's struct type.
// Vectors are limited to []float64, []float32, []int, [2]float64 and
// [3]float64; use VectorProvider for other element types.
func Infer[T any](sample T) (Func[T], error) {
	shape, dim := ShapeOf(sample)

	var f any
	switch shape {
	case ShapeScalar:
		f = scalarFunc(sample)
		if f == nil && isNumberKind(reflect.TypeFor[T]().Kind()) {
			return func(a, b T) float64 {
				return math.Abs(numberValue(reflect.ValueOf(a)) - numberValue(reflect.ValueOf(b)))
			}, nil
		}
	case ShapeVector:
		f = vectorFunc(sample, dim)
	case ShapeRGB:
		if _, ok := any(sample).(RGB); ok {
			return func(a, b T) float64 {
				return SquaredRGB(any(a).(RGB), any(b).(RGB))
			}, nil
		}
		idx, _ := rgbFields(reflect.TypeOf(sample))
		return func(a, b T) float64 {
			return SquaredRGB(idx.color(reflect.ValueOf(a)), idx.color(reflect.ValueOf(b)))
		}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported element type %T", ErrCannotInfer, sample)
	}

	fn, ok := f.(Func[T])
	if !ok {
		return nil, fmt.Errorf("%w: element type %T is held in a non-concrete type", ErrCannotInfer, sample)
	}
	return fn, nil
}

func scalarFunc(sample any) any {
	switch sample.(type) {
	case int:
		return Func[int](Abs[int])
	case int8:
		return Func[int8](Abs[int8])
	case int16:
		return Func[int16](Abs[int16])
	case int32:
		return Func[int32](Abs[int32])
	case int64:
		return Func[int64](Abs[int64])
	case uint:
		return Func[uint](Abs[uint])
	case uint8:
		return Func[uint8](Abs[uint8])
	case uint16:
		return Func[uint16](Abs[uint16])
	case uint32:
		return Func[uint32](Abs[uint32])
	case uint64:
		return Func[uint64](Abs[uint64])
	case uintptr:
		return Func[uintptr](Abs[uintptr])
	case float32:
		return Func[float32](Abs[float32])
	case float64:
		return Func[float64](Abs[float64])
	default:
		return nil
	}
}

func vectorFunc(sample any, dim int) any {
	switch sample.(type) {
	case []float64:
		return VectorProvider[float64](dim)
	case []float32:
		return VectorProvider[float32](dim)
	case []int:
		return VectorProvider[int](dim)
	case [2]float64:
		return Func[[2]float64](func(a, b [2]float64) float64 {
			return SquaredL2Dim2(a[:], b[:])
		})
	case [3]float64:
		return Func[[3]float64](func(a, b [3]float64) float64 {
			return SquaredL2Dim3(a[:], b[:])
		})
	default:
		return nil
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func numberValue(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

// rgbIndex holds the field indexes of a struct's color channels.
type rgbIndex [3][]int

// rgbFields finds numeric R, G and B fields in a struct type, falling back
// to lowercase r, g and b.
func rgbFields(rt reflect.Type) (rgbIndex, bool) {
	if rt.Kind() != reflect.Struct {
		return rgbIndex{}, false
	}
	for _, names := range [][3]string{{"R", "G", "B"}, {"r", "g", "b"}} {
		var idx rgbIndex
		found := true
		for i, name := range names {
			f, ok := rt.FieldByName(name)
			if !ok || !isNumberKind(f.Type.Kind()) {
				found = false
				break
			}
			idx[i] = f.Index
		}
		if found {
			return idx, true
		}
	}
	return rgbIndex{}, false
}

type channels [3]float64

func (c channels) RGB() (r, g, b float64) { return c[0], c[1], c[2] }

func (idx rgbIndex) color(v reflect.Value) channels {
	var c channels
	for i, fi := range idx {
		c[i] = numberValue(v.FieldByIndex(fi))
	}
	return c
}
