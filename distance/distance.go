package distance

import (
	"fmt"
)

// Number is the set of element types the numeric metrics accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Func is a function type for distance calculation.
// The query is always the first argument.
type Func[T any] func(query, candidate T) float64

// RGB is implemented by elements that expose red, green and blue channels.
type RGB interface {
	RGB() (r, g, b float64)
}

// Abs returns the absolute difference between two scalars.
func Abs[N Number](a, b N) float64 {
	d := float64(a) - float64(b)
	if d < 0 {
		return -d
	}
	return d
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2[N Number](a, b []N) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

// SquaredL2Dim2 is SquaredL2 unrolled for two dimensions.
func SquaredL2Dim2[N Number](a, b []N) float64 {
	d0 := float64(a[0]) - float64(b[0])
	d1 := float64(a[1]) - float64(b[1])
	return d0*d0 + d1*d1
}

// SquaredL2Dim3 is SquaredL2 unrolled for three dimensions.
func SquaredL2Dim3[N Number](a, b []N) float64 {
	d0 := float64(a[0]) - float64(b[0])
	d1 := float64(a[1]) - float64(b[1])
	d2 := float64(a[2]) - float64(b[2])
	return d0*d0 + d1*d1 + d2*d2
}

// SquaredRGB calculates the squared Euclidean distance between two colors.
func SquaredRGB[C RGB](a, b C) float64 {
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	dr, dg, db := ar-br, ag-bg, ab-bb
	return dr*dr + dg*dg + db*db
}

// Metric represents a built-in distance metric.
type Metric int

const (
	MetricAbs Metric = iota
	MetricSquaredL2
	MetricRGB
)

func (m Metric) String() string {
	switch m {
	case MetricAbs:
		return "Abs"
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricRGB:
		return "RGB"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// VectorProvider returns the vector distance function for the given dimension.
// Dimensions 2 and 3 get unrolled implementations.
func VectorProvider[N Number](dim int) Func[[]N] {
	switch dim {
	case 2:
		return SquaredL2Dim2[N]
	case 3:
		return SquaredL2Dim3[N]
	default:
		return SquaredL2[N]
	}
}
