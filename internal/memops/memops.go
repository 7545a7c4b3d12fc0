// Package memops implements small generic fill primitives over numeric
// slices, the same "build an array, flood it with one value" shape as
// dataframe.Zeros/Ones, expressed with a type parameter instead of a
// fixed []float64.
package memops

type Pointerless interface {
	// TODO: should be constraints.Integer | constraints.Float | a recursive
	// composition of Pointerless, but Go doesn't support this concept.
}

// ZeroMemory fills buf with the zero value of T.
func ZeroMemory[T Pointerless](buf []T) {
	clear(buf)
}
