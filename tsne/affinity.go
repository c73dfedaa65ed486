package tsne

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Affinities computes the joint neighbor-probability matrix P for x.
//
// Description:
//
//	Each point i gets a Gaussian kernel whose bandwidth is calibrated so
//	that the Shannon entropy of its conditional neighbor distribution
//	p(j|i) equals log(perplexity). The conditionals are then symmetrized
//	into P_ij = (p(j|i) + p(i|j)) / (2N) and floored at a small positive
//	constant, so the full matrix is symmetric, strictly positive and sums
//	to ~1.
//
// Errors:
//   - ErrNilInput, ErrInsufficientSamples, ErrNonFinite, ErrBadPerplexity.
//
// Determinism:
//   - Fixed i→j loop orders; identical inputs yield identical P.
//
// Complexity:
//   - Time O(N²·D + N²·steps), Space O(N²).
func Affinities(x *mat.Dense, perplexity float64) (*mat.Dense, error) {
	if err := validateInput(x); err != nil {
		return nil, err
	}
	n, _ := x.Dims()
	if err := validatePerplexity(perplexity, n); err != nil {
		return nil, err
	}

	return jointProbabilities(squaredDistances(x), perplexity), nil
}

// squaredDistances returns the full N×N squared Euclidean distance matrix,
// via the expansion ||a−b||² = ||a||² + ||b||² − 2·a·b, clamped at zero to
// absorb floating-point cancellation on near-duplicate rows.
//
// Complexity: O(N²·D) time, O(N²) space.
func squaredDistances(x *mat.Dense) *mat.Dense {
	n, _ := x.Dims()

	norms := make([]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		row := x.RawRowView(i)
		norms[i] = floats.Dot(row, row)
	}

	dist := mat.NewDense(n, n, nil)
	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = norms[i] + norms[j] - 2*floats.Dot(x.RawRowView(i), x.RawRowView(j))
			if v < 0 {
				v = 0
			}
			dist.Set(i, j, v)
			dist.Set(j, i, v)
		}
	}

	return dist
}

// jointProbabilities turns a squared-distance matrix into the symmetric,
// floored joint distribution P.
//
// Per-point calibration:
//
//	For each row i a precision β_i is found by bisection so that the
//	entropy of p(j|i) ∝ exp(-d_ij²·β_i) matches log(perplexity) within
//	entropyTol. The bracket starts unbounded on both sides: β doubles or
//	halves until a finite bracket exists, then bisects. The search is
//	capped at maxBisectSteps; on degenerate rows (duplicate points, all
//	distances zero) the cap is hit and the last β found is used as-is —
//	lower-fidelity output, not an error.
//
// Complexity: O(N²·maxBisectSteps) time, O(N²) space.
func jointProbabilities(dist *mat.Dense, perplexity float64) *mat.Dense {
	n, _ := dist.Dims()
	target := math.Log(perplexity)

	// cond holds the conditional distributions p(j|i); diagonal stays zero.
	cond := mat.NewDense(n, n, nil)
	expRow := make([]float64, n)

	var (
		i, j, step           int
		beta, betaMin        float64
		betaMax              float64
		sumExp, sumWeighted  float64
		entropy, entropyDiff float64
	)
	for i = 0; i < n; i++ {
		di := dist.RawRowView(i)
		beta = 1.0
		betaMin, betaMax = math.Inf(-1), math.Inf(1)

		for step = 0; step < maxBisectSteps; step++ {
			// Evaluate the kernel row and its entropy at the current β.
			sumExp, sumWeighted = 0, 0
			for j = 0; j < n; j++ {
				if j == i {
					expRow[j] = 0

					continue
				}
				expRow[j] = math.Exp(-di[j] * beta)
				sumExp += expRow[j]
				sumWeighted += di[j] * expRow[j]
			}
			entropy = math.Log(sumExp) + beta*sumWeighted/sumExp

			entropyDiff = entropy - target
			if math.Abs(entropyDiff) < entropyTol {
				break
			}

			// Entropy too high ⇒ kernel too wide ⇒ raise β; too low ⇒ lower β.
			// Double/halve while the bracket is open, bisect once it closes.
			if entropyDiff > 0 {
				betaMin = beta
				if math.IsInf(betaMax, 1) {
					beta *= 2
				} else {
					beta = (beta + betaMax) / 2
				}
			} else {
				betaMax = beta
				if math.IsInf(betaMin, -1) {
					beta /= 2
				} else {
					beta = (beta + betaMin) / 2
				}
			}
		}

		// expRow/sumExp correspond to the accepted β (or the last one tried).
		for j = 0; j < n; j++ {
			if j != i {
				cond.Set(i, j, expRow[j]/sumExp)
			}
		}
	}

	// Symmetrize and floor: P_ij = (p(j|i)+p(i|j)) / (2N), each entry ≥ probFloor.
	p := mat.NewDense(n, n, nil)
	scale := 1.0 / (2 * float64(n))
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = (cond.At(i, j) + cond.At(j, i)) * scale
			if v < probFloor {
				v = probFloor
			}
			p.Set(i, j, v)
		}
	}

	return p
}

// validatePerplexity enforces 0 < perplexity < n with a finite value.
func validatePerplexity(perplexity float64, n int) error {
	if math.IsNaN(perplexity) || math.IsInf(perplexity, 0) {
		return ErrBadPerplexity
	}
	if perplexity <= 0 || perplexity >= float64(n) {
		return ErrBadPerplexity
	}

	return nil
}

// validateInput enforces the shared input contract: non-nil, at least two
// rows, every entry finite. Fail-fast: nothing is computed after a
// validation error.
//
// Complexity: O(N·D).
func validateInput(x *mat.Dense) error {
	if x == nil {
		return ErrNilInput
	}
	n, d := x.Dims()
	if n < 2 {
		return ErrInsufficientSamples
	}

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			v = x.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNonFinite
			}
		}
	}

	return nil
}
