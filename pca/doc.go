// Package pca projects high-dimensional data onto its directions of maximal
// variance (Principal Component Analysis).
//
// 🚀 What is PCA?
//
//	PCA finds the orthonormal directions along which a dataset varies the
//	most and re-expresses every point in that basis.  Keeping only the top
//	k directions yields a k-dimensional view that preserves as much global
//	variance as possible.  Common uses:
//	  • 2D/3D visualization of embedding vectors
//	  • Warm-starting nonlinear embeddings (see package tsne)
//	  • Decorrelating features before further analysis
//
// ✨ Key properties:
//   - covariance route: center → D×D covariance → symmetric eigensolver
//   - eigenpairs sorted by descending eigenvalue; top-k form the basis
//   - pure function: inputs are never mutated, no state survives a call
//   - deterministic up to eigenvector sign (mirror-image layouts are
//     equivalent; magnitudes are stable)
//
// ⚙️ Usage:
//
//	import "github.com/daiviknambiar/manifold/pca"
//
//	// X is an N×D matrix, one row per item.
//	coords, err := pca.Project(X, 2) // N×2 output
//
// Performance:
//
//   - Time:   O(N·D² + D³)  (covariance + eigendecomposition)
//   - Memory: O(N·D + D²)
//
// The eigendecomposition is delegated to gonum's symmetric eigensolver
// (mat.EigenSym); only centering, selection and projection live here.
package pca
