// Package distance provides query-relative distance functions for k-nearest
// selection.
//
// A Func maps a query and a candidate to a non-negative number where smaller
// means closer. Callers should pass an explicit metric:
//
//	distance.Abs[int]               // scalars
//	distance.SquaredL2[float64]     // []float64 of any length
//	distance.SquaredRGB[Color]      // any type implementing RGB
//
// # Inference
//
// Infer picks a metric from the shape of a sample element. It is a
// convenience adapter on top of the explicit metrics:
//
//   - scalar (any Go integer or float type): absolute difference
//   - numeric vector: squared Euclidean distance, unrolled for 2 and 3 dimensions
//   - RGB: squared Euclidean distance over the three channels
//
// Any other shape yields ErrCannotInfer.
package distance
