// Package tsne defines options, defaults and sentinel errors for the
// neighbor embedding.
//
// Errors (sentinel):
//
//	– ErrNilInput            if the input matrix is nil.
//	– ErrInsufficientSamples if the input has fewer than 2 rows.
//	– ErrBadPerplexity       if perplexity is not finite, not positive, or
//	  ≥ N (the entropy target log(perplexity) is unreachable when the
//	  effective neighborhood exceeds the dataset).
//	– ErrBadDimension        if the output dimension is outside 1..D.
//	– ErrBadIterations       if the iteration budget is < 1.
//	– ErrBadLearningRate     if the learning rate is not positive and finite.
//	– ErrNonFinite           if any entry of the input is NaN or ±Inf.
//	– ErrCancelled           if the cancel channel fired mid-optimization.
//
// All are detected eagerly (before or during the first pass over the data)
// except ErrCancelled, which aborts the optimization loop between
// iterations. A cancelled call returns no matrix, never a partial layout.
package tsne

import "errors"

var (
	// ErrNilInput indicates that a nil *mat.Dense was passed in.
	ErrNilInput = errors.New("tsne: input matrix is nil")

	// ErrInsufficientSamples indicates fewer than 2 input rows.
	ErrInsufficientSamples = errors.New("tsne: need at least 2 samples")

	// ErrBadPerplexity indicates a perplexity outside (0, N).
	ErrBadPerplexity = errors.New("tsne: perplexity must be positive and below the sample count")

	// ErrBadDimension indicates an output dimension outside 1..D.
	ErrBadDimension = errors.New("tsne: output dimension out of range")

	// ErrBadIterations indicates a non-positive iteration budget.
	ErrBadIterations = errors.New("tsne: iterations must be >= 1")

	// ErrBadLearningRate indicates a learning rate that is not positive and finite.
	ErrBadLearningRate = errors.New("tsne: learning rate must be positive and finite")

	// ErrNonFinite indicates a NaN or ±Inf entry in the input matrix.
	ErrNonFinite = errors.New("tsne: non-finite value in input")

	// ErrCancelled indicates the caller's cancel channel fired before the
	// optimization finished. No partial layout is returned.
	ErrCancelled = errors.New("tsne: embedding cancelled")
)

// InitMode selects how the initial low-dimensional layout is produced.
//
//   - InitPCA    — project the input with PCA and shrink it by InitScale.
//     Deterministic (up to eigenvector sign) and usually the better start:
//     global structure is roughly right before the first gradient step.
//
//   - InitRandom — seeded Gaussian noise scaled by InitScale. Useful when
//     the PCA structure itself is what you want to verify, or for
//     degenerate inputs whose covariance carries no signal.
type InitMode int

const (
	// InitPCA warm-starts the layout from a shrunken PCA projection.
	InitPCA InitMode = iota

	// InitRandom starts from seeded Gaussian noise (see Options.Seed).
	InitRandom
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultDims is the output dimension used when Options.Dims is 0.
	DefaultDims = 2

	// DefaultPerplexity is the effective neighborhood size used when
	// Options.Perplexity is 0. It is additionally capped at N−1 at
	// resolution time, since the entropy target is unreachable otherwise.
	DefaultPerplexity = 30.0

	// DefaultIterations is the optimization budget used when
	// Options.Iterations is 0.
	DefaultIterations = 1000

	// DefaultLearningRate is the gradient step size used when
	// Options.LearningRate is 0.
	DefaultLearningRate = 200.0

	// DefaultSeed is the RNG seed used when Options.Seed is 0. The seed
	// only affects the InitRandom path; InitPCA is deterministic on its own.
	DefaultSeed int64 = 42

	// InitScale shrinks the initial layout so early gradients are
	// well-conditioned. Tunable, not load-bearing: any small positive
	// factor produces an equivalent (rescaled) trajectory start.
	InitScale = 1e-4

	// InitialMomentum damps updates during the early, unstable phase.
	InitialMomentum = 0.5

	// FinalMomentum accelerates convergence once the layout has settled.
	FinalMomentum = 0.8

	// SwitchIteration is the iteration after which momentum switches from
	// InitialMomentum to FinalMomentum. Tunable, not load-bearing.
	SwitchIteration = 250
)

// Internal numeric policy of the affinity and gradient kernels.
const (
	// entropyTol bounds |H − log(perplexity)| for the bisection to accept β.
	// Looser tolerances produce visibly uneven point density.
	entropyTol = 1e-5

	// maxBisectSteps caps the per-point β search so degenerate distance
	// rows (duplicate points) cannot spin forever; the last β found is
	// used as-is.
	maxBisectSteps = 50

	// probFloor keeps every affinity strictly positive so the divergence
	// gradient stays defined.
	probFloor = 1e-12

	// progressEvery is the iteration stride of the OnProgress hook.
	progressEvery = 100
)

// Options configures the neighbor embedding.
//
// Zero values select the documented defaults; explicitly set values are
// validated and never silently adjusted.
type Options struct {
	// Dims is the output dimension (typically 2 or 3). 0 ⇒ DefaultDims.
	Dims int

	// Perplexity is the effective neighborhood size. Must satisfy
	// 0 < Perplexity < N. 0 ⇒ min(DefaultPerplexity, N−1).
	Perplexity float64

	// Iterations is the gradient-descent budget. 0 ⇒ DefaultIterations.
	Iterations int

	// LearningRate scales each gradient step. 0 ⇒ DefaultLearningRate.
	LearningRate float64

	// Init selects the initial layout strategy (InitPCA by default).
	Init InitMode

	// Seed drives the InitRandom path. 0 ⇒ DefaultSeed; never time-based.
	Seed int64

	// OnProgress, when non-nil, is invoked every 100 iterations with the
	// completed iteration count and the total budget. Liveness only — it
	// is not part of the numeric contract.
	OnProgress func(iteration, total int)

	// Cancel, when non-nil, aborts the optimization between iterations.
	// A fired channel yields ErrCancelled and no output matrix.
	Cancel <-chan struct{}
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults. Use it as a starting point for field overrides.
//
// Defaults:
//   - Dims:         DefaultDims (2)
//   - Perplexity:   0, resolved to min(DefaultPerplexity, N−1) per call;
//     the cap depends on the input size, so it cannot be baked in here
//   - Iterations:   DefaultIterations (1000)
//   - LearningRate: DefaultLearningRate (200)
//   - Init:         InitPCA
//   - Seed:         DefaultSeed (42)
//   - OnProgress:   nil (no progress reporting)
//   - Cancel:       nil (not cancellable)
func DefaultOptions() Options {
	return Options{
		Dims:         DefaultDims,
		Iterations:   DefaultIterations,
		LearningRate: DefaultLearningRate,
		Init:         InitPCA,
		Seed:         DefaultSeed,
	}
}
