package pca

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Project reduces x to its top-k principal components.
//
// Description:
//
//	Given an N×D input matrix (one row per item) and a target dimension k,
//	Project returns the N×k matrix of coordinates in the basis of the k
//	eigenvectors of the covariance matrix with the largest eigenvalues.
//
// Algorithm Outline:
//  1. Validate: non-nil, N ≥ 2, all entries finite, 1 ≤ k ≤ D.
//  2. Subtract the column mean from every column (centering).
//  3. Form the D×D sample covariance matrix (N−1 divisor).
//  4. Eigendecompose the covariance; sort eigenpairs by descending eigenvalue.
//  5. Multiply the centered data by the top-k eigenvector basis.
//
// Behavior highlights:
//   - Pure function: x is never mutated; all buffers are call-scoped.
//   - Eigenvector sign is NOT canonicalized: two equivalent runs may return
//     axis-flipped (mirror-image) layouts. Magnitudes are stable.
//   - Rank-deficient data is accepted: trailing components simply carry
//     near-zero variance. This is low-information output, not an error.
//
// Errors:
//   - ErrNilInput, ErrInsufficientSamples, ErrNonFinite, ErrBadDimension,
//     ErrEigenFailed.
//
// Determinism:
//   - Fixed traversal orders everywhere; the eigensolver is deterministic
//     for identical input, so identical calls return identical output.
//
// Complexity:
//   - Time O(N·D² + D³), Space O(N·D + D²).
func Project(x *mat.Dense, k int) (*mat.Dense, error) {
	centered, basis, _, err := fit(x, k)
	if err != nil {
		return nil, err
	}

	// Y = centered × basis, shape N×k.
	var y mat.Dense
	y.Mul(centered, basis)

	return &y, nil
}

// PrincipalComponents returns the top-k eigenvector basis of the covariance
// matrix of x, plus the matching eigenvalues sorted in descending order.
//
// The basis is D×k with orthonormal columns; eigenvalues[j] is the variance
// captured by column j. Callers that only need projected coordinates should
// use Project; this entry point exists so the fitted model itself (explained
// variance, basis orthonormality) can be inspected.
//
// Sign of each basis column is arbitrary (see Project). Same validation and
// errors as Project.
//
// Complexity: Time O(N·D² + D³), Space O(N·D + D²).
func PrincipalComponents(x *mat.Dense, k int) (*mat.Dense, []float64, error) {
	_, basis, eigenvalues, err := fit(x, k)
	if err != nil {
		return nil, nil, err
	}

	return basis, eigenvalues, nil
}

// fit runs the shared pipeline: validate, center, covariance, eigen, select.
// It returns the centered copy of x, the D×k basis and the k eigenvalues.
func fit(x *mat.Dense, k int) (*mat.Dense, *mat.Dense, []float64, error) {
	if err := validateInput(x); err != nil {
		return nil, nil, nil, err
	}
	n, d := x.Dims()
	if k < 1 || k > d {
		return nil, nil, nil, ErrBadDimension
	}

	centered := centerColumns(x, n, d)

	// Sample covariance of the raw input (CovarianceMatrix centers
	// internally, matching the N−1 divisor of the centered formulation).
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, x, nil)

	var eig mat.EigenSym
	if !eig.Factorize(&cov, true) {
		return nil, nil, nil, ErrEigenFailed
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Argsort eigenvalues descending. EigenSym reports ascending order, but
	// sorting explicitly keeps the selection independent of solver ordering.
	order := make([]int, d)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] > vals[order[b]] })

	basis := mat.NewDense(d, k, nil)
	eigenvalues := make([]float64, k)
	var i, j, src int
	for j = 0; j < k; j++ {
		src = order[j]
		eigenvalues[j] = vals[src]
		for i = 0; i < d; i++ {
			basis.Set(i, j, vecs.At(i, src))
		}
	}

	return centered, basis, eigenvalues, nil
}

// centerColumns returns a fresh copy of x with every column shifted to zero
// mean. Centering ensures the leading component captures spread around the
// centroid rather than the centroid's offset from the origin.
func centerColumns(x *mat.Dense, n, d int) *mat.Dense {
	means := make([]float64, d)
	var i, j int
	for j = 0; j < d; j++ {
		means[j] = stat.Mean(mat.Col(nil, j, x), nil)
	}

	centered := mat.NewDense(n, d, nil)
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			centered.Set(i, j, x.At(i, j)-means[j])
		}
	}

	return centered
}

// validateInput enforces the shared input contract: non-nil, at least
// MinSamples rows, every entry finite. Fail-fast: no partial computation
// happens after a validation error.
//
// Complexity: O(N·D).
func validateInput(x *mat.Dense) error {
	if x == nil {
		return ErrNilInput
	}
	n, d := x.Dims()
	if n < MinSamples {
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
