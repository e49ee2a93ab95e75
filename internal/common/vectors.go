package common

import "math"

// CosineSimilarity calculates the cosine similarity between two vectors
// and returns the score along with a boolean indicating if the calculation was successful.
// Empty, mismatched or zero-norm vectors are not comparable and score 0.
func CosineSimilarity(a, b []float64) (float64, bool) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, false
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// MaxSimilarity returns the highest cosine similarity between query and any of the candidates.
// Candidates that cannot be compared count as 0, so the result is 0 when none can.
func MaxSimilarity(query []float64, candidates [][]float64) float64 {
	best := 0.0
	for i, candidate := range candidates {
		score, _ := CosineSimilarity(query, candidate)
		if i == 0 || score > best {
			best = score
		}
	}
	return best
}

// Float32sToFloat64s widens a float32 vector, as returned by some embedding APIs.
func Float32sToFloat64s(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}
