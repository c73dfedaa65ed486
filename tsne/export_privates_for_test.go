package tsne

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose UNEXPORTED numeric kernels to tsne_test ONLY, without widening
//     the production API.
//   - Enable white-box verification of the distance expansion, the entropy
//     calibration and the low-dimensional affinity kernel.
//
// Behavior & Determinism:
//   - Thin pass-through wrappers; no side effects beyond what the wrapped
//     functions allocate.

import "gonum.org/v1/gonum/mat"

// SquaredDistances_TestOnly forwards to the private squaredDistances kernel.
func SquaredDistances_TestOnly(x *mat.Dense) *mat.Dense {
	return squaredDistances(x)
}

// JointProbabilities_TestOnly forwards to jointProbabilities.
func JointProbabilities_TestOnly(dist *mat.Dense, perplexity float64) *mat.Dense {
	return jointProbabilities(dist, perplexity)
}

// LowDimAffinities_TestOnly computes the normalized Student-t affinity
// matrix Q for a layout y, allocating fresh scratch so callers need not
// manage the num buffer.
func LowDimAffinities_TestOnly(y *mat.Dense) *mat.Dense {
	n, _ := y.Dims()
	num := mat.NewDense(n, n, nil)
	q := mat.NewDense(n, n, nil)
	lowDimAffinities(y, num, q)

	return q
}

// ResolveOptions_TestOnly forwards to resolveOptions for defaulting and
// validation assertions.
func ResolveOptions_TestOnly(opts Options, n, d int) (Options, error) {
	return resolveOptions(opts, n, d)
}
