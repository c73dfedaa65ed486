// Package tsne embeds high-dimensional points into 2D or 3D while preserving
// local neighborhood structure (t-distributed Stochastic Neighbor Embedding).
//
// 🚀 What is t-SNE?
//
//	t-SNE converts pairwise distances into neighbor probabilities, then
//	arranges points in low-dimensional space so the low-dimensional
//	neighbor probabilities match the high-dimensional ones.  Unlike PCA it
//	is nonlinear: it sacrifices global geometry to keep tight clusters
//	tight.  Common uses:
//	  • Visualizing embedding vectors as cluster maps
//	  • Qualitative inspection of classifier feature spaces
//
// ✨ Key features:
//   - exact pairwise affinities (no approximate neighbor search)
//   - per-point entropy calibration: a bisection search tunes each point's
//     Gaussian bandwidth until its neighborhood entropy matches
//     log(perplexity) within 1e-5 (50 steps max)
//   - gradient descent with a two-phase momentum schedule (0.5 → 0.8)
//   - PCA warm start (default) or seeded Gaussian initialization
//   - cancellation checked once per iteration; progress hook every 100
//
// ⚙️ Usage:
//
//	import "github.com/daiviknambiar/manifold/tsne"
//
//	opts := tsne.DefaultOptions()
//	opts.Perplexity = 15
//	opts.Iterations = 500
//
//	coords, err := tsne.Embed(X, opts) // N×2 output
//
// Performance:
//
//   - Time:   O(N²·D) for affinities + O(iterations·N²·k) for the layout
//   - Memory: O(N²)
//
// Determinism: identical input, options and seed produce identical output.
// The PCA warm start is deterministic up to eigenvector sign, so layouts may
// be mirror images across library versions but never across repeated calls.
package tsne
