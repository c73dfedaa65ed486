// Package manifold reduces high-dimensional embedding vectors to 2D or 3D
// coordinates you can actually look at — preserving either global variance
// (PCA) or local neighborhood structure (t-SNE).
//
// 🚀 What is manifold?
//
//	A small, deterministic numerical library that brings together:
//		• Linear projection: PCA via covariance eigendecomposition
//		• Nonlinear embedding: exact t-SNE with entropy-calibrated affinities
//		• A one-call facade: pick a method, get an N×k coordinate matrix
//
// ✨ Why choose manifold?
//
//   - Deterministic – fixed seeds, fixed loop orders, reproducible layouts
//   - Pure functions – no global state, no cross-call caching
//   - Strict sentinels – every failure mode is a named error, never a panic
//   - Cancellable – long optimizations abort cleanly via a cancel channel
//
// Under the hood, everything is organized under three subpackages:
//
//	pca/        — LinearProjector: center → covariance → eigen → project
//	tsne/       — NeighborEmbedder: affinities + momentum gradient descent
//	projection/ — method dispatch and row-slice converters for callers
//
// Typical flow: an external embedder turns documents into an N×D matrix;
// manifold turns that matrix into N×2 (or N×3) coordinates; an external
// renderer draws them. This library is only ever the middle step.
//
//	go get github.com/daiviknambiar/manifold
package manifold
