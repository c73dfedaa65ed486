// Package projection is the single entry point for dimensionality
// reduction: pick a method, hand over a point matrix, get back 2-D or 3-D
// coordinates ready for plotting.
//
// 🚀 What it does
//
//   - Dispatches to the pca or tsne subpackages behind one Reduce call.
//   - Normalizes the option surface: zero values resolve to sensible
//     defaults (2 output dimensions, perplexity capped by the sample
//     count, a fixed seed) so the common case is Reduce(x, DefaultOptions()).
//   - Converts between row-slice data ([][]float64, the shape most
//     embedding stores produce) and the dense matrices the numeric
//     packages consume.
//
// ✨ Usage
//
//	x, err := projection.FromRows(rows)
//	if err != nil { ... }
//	y, err := projection.Reduce(x, projection.Options{Method: projection.MethodTSNE})
//	if err != nil { ... }
//	coords := projection.ToRows(y)
//
// ⚙️ Behavior
//
//   - Output dimensionality is restricted to 2 or 3 here; callers needing
//     other widths use the subpackages directly.
//   - Errors from the underlying method are wrapped with the method name
//     and stay matchable via errors.Is against the subpackage sentinels.
//   - Fully deterministic for a fixed input and Options.
package projection
