// Package vector provides sparse term-weight vectors for TF-IDF matching.
package vector

import "math"

// Vector is a sparse term-weight mapping. Terms absent from the map carry
// zero weight. Vectors are built once and never mutated afterwards.
type Vector map[string]float64

// Dot returns the dot product of two sparse vectors. Terms present in only
// one of them contribute zero.
func (v Vector) Dot(other Vector) float64 {
	// Iterate over the smaller map
	a, b := v, other
	if len(b) < len(a) {
		a, b = b, a
	}

	var sum float64
	for term, w := range a {
		sum += w * b[term]
	}
	return sum
}

// Norm returns the Euclidean norm of the vector.
func (v Vector) Norm() float64 {
	var sq float64
	for _, w := range v {
		sq += w * w
	}
	return math.Sqrt(sq)
}

// Cosine returns the cosine similarity between two vectors in [0, 1].
// Defined as 0 when either vector has zero norm — no shared informative
// terms means no match confidence, never NaN.
func (v Vector) Cosine(other Vector) float64 {
	nv, no := v.Norm(), other.Norm()
	if nv == 0 || no == 0 {
		return 0
	}
	return v.Dot(other) / (nv * no)
}
