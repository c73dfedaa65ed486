// Package pca defines the sentinel errors shared by all PCA entry points.
//
// Errors (sentinel):
//
//	– ErrNilInput            if the input matrix is nil.
//	– ErrInsufficientSamples if the input has fewer than 2 rows (the
//	  covariance of a single point is undefined).
//	– ErrBadDimension        if the requested component count is outside 1..D.
//	– ErrNonFinite           if any entry of the input is NaN or ±Inf.
//	– ErrEigenFailed         if the symmetric eigensolver fails to converge
//	  (practically unreachable for finite covariance matrices).
//
// All algorithms return these sentinels and tests check them via errors.Is.
// No function in this package panics on user input.
package pca

import "errors"

var (
	// ErrNilInput indicates that a nil *mat.Dense was passed in.
	ErrNilInput = errors.New("pca: input matrix is nil")

	// ErrInsufficientSamples indicates fewer than 2 input rows.
	ErrInsufficientSamples = errors.New("pca: need at least 2 samples")

	// ErrBadDimension indicates a component count k outside 1..D.
	ErrBadDimension = errors.New("pca: component count out of range")

	// ErrNonFinite indicates a NaN or ±Inf entry in the input matrix.
	ErrNonFinite = errors.New("pca: non-finite value in input")

	// ErrEigenFailed indicates the eigensolver did not converge.
	ErrEigenFailed = errors.New("pca: eigen decomposition failed")
)

// MinSamples is the smallest number of rows for which a covariance matrix
// (and therefore a projection) is defined.
const MinSamples = 2
