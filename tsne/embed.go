package tsne

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/daiviknambiar/manifold/pca"
)

// Embed computes a low-dimensional t-SNE layout of the rows of x.
//
// Description:
//
//	Runs the exact (dense) t-SNE pipeline: joint high-dimensional
//	affinities P via per-point entropy calibration, an initial layout
//	(PCA warm start by default, seeded Gaussian noise on request), then
//	momentum gradient descent on the Kullback-Leibler divergence between
//	P and the Student-t low-dimensional affinities Q.
//
// Algorithm Outline:
//  1. Validate input and resolve zero-value options to defaults.
//  2. P ← jointProbabilities(squaredDistances(x), perplexity).
//  3. Y ← initialLayout (PCA projection or seeded noise, scaled by InitScale).
//  4. For each iteration: check cancellation, recompute Q, accumulate the
//     gradient 4·Σ_j (P−Q)_ij·num_ij·(y_i−y_j), apply the momentum update,
//     switch momentum from InitialMomentum to FinalMomentum after
//     SwitchIteration, and report progress every progressEvery iterations.
//
// Behavior highlights:
//   - Two calls with the same input and Options produce bit-identical output.
//   - Options.Cancel aborts between iterations with ErrCancelled; partial
//     layouts are never returned.
//   - Options.OnProgress, when set, is invoked synchronously on the calling
//     goroutine; a slow callback slows the descent.
//
// Errors:
//   - ErrNilInput, ErrInsufficientSamples, ErrNonFinite on bad input;
//   - ErrBadPerplexity, ErrBadDimension, ErrBadIterations,
//     ErrBadLearningRate on bad options;
//   - ErrCancelled when Options.Cancel fires.
//
// Complexity:
//   - Time O(N²·D) for affinities plus O(iterations·N²·dims) for the
//     descent; Space O(N²).
func Embed(x *mat.Dense, opts Options) (*mat.Dense, error) {
	if err := validateInput(x); err != nil {
		return nil, err
	}
	n, d := x.Dims()

	o, err := resolveOptions(opts, n, d)
	if err != nil {
		return nil, err
	}

	p := jointProbabilities(squaredDistances(x), o.Perplexity)

	y, err := initialLayout(x, o, n)
	if err != nil {
		return nil, err
	}

	k := o.Dims
	velocity := mat.NewDense(n, k, nil)
	grad := mat.NewDense(n, k, nil)
	num := mat.NewDense(n, n, nil)
	q := mat.NewDense(n, n, nil)

	momentum := InitialMomentum
	var (
		iter, i, j, c int
		w, v          float64
	)
	for iter = 0; iter < o.Iterations; iter++ {
		if cancelled(o.Cancel) {
			return nil, ErrCancelled
		}

		lowDimAffinities(y, num, q)

		// Full gradient first, then the update: rows must not move while
		// their neighbors' gradients are still being accumulated.
		grad.Zero()
		for i = 0; i < n; i++ {
			yi := y.RawRowView(i)
			gi := grad.RawRowView(i)
			for j = 0; j < n; j++ {
				if j == i {
					continue
				}
				w = 4 * (p.At(i, j) - q.At(i, j)) * num.At(i, j)
				yj := y.RawRowView(j)
				for c = 0; c < k; c++ {
					gi[c] += w * (yi[c] - yj[c])
				}
			}
		}

		for i = 0; i < n; i++ {
			for c = 0; c < k; c++ {
				v = momentum*velocity.At(i, c) - o.LearningRate*grad.At(i, c)
				velocity.Set(i, c, v)
				y.Set(i, c, y.At(i, c)+v)
			}
		}

		if iter == SwitchIteration {
			momentum = FinalMomentum
		}
		if o.OnProgress != nil && (iter+1)%progressEvery == 0 {
			o.OnProgress(iter+1, o.Iterations)
		}
	}

	return y, nil
}

// lowDimAffinities fills num with the Student-t kernel values
// num_ij = 1/(1+||y_i−y_j||²) (diagonal zero) and q with the normalized,
// floored distribution Q = max(num/Σnum, probFloor).
//
// num and q are caller-owned scratch; both are fully overwritten.
//
// Complexity: O(N²·dims).
func lowDimAffinities(y, num, q *mat.Dense) {
	n, k := y.Dims()

	var (
		i, j, c int
		dist, v float64
		total   float64
	)
	for i = 0; i < n; i++ {
		num.Set(i, i, 0)
		yi := y.RawRowView(i)
		for j = i + 1; j < n; j++ {
			yj := y.RawRowView(j)
			dist = 0
			for c = 0; c < k; c++ {
				v = yi[c] - yj[c]
				dist += v * v
			}
			v = 1 / (1 + dist)
			num.Set(i, j, v)
			num.Set(j, i, v)
			total += 2 * v
		}
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = num.At(i, j) / total
			if v < probFloor {
				v = probFloor
			}
			q.Set(i, j, v)
		}
	}
}

// initialLayout produces the starting coordinates for the descent:
// either the PCA projection of x or seeded Gaussian noise, scaled down
// by InitScale so early gradients dominate the geometry.
func initialLayout(x *mat.Dense, o Options, n int) (*mat.Dense, error) {
	if o.Init == InitRandom {
		rng := rngFromSeed(o.Seed)
		y := mat.NewDense(n, o.Dims, nil)
		var i, c int
		for i = 0; i < n; i++ {
			for c = 0; c < o.Dims; c++ {
				y.Set(i, c, rng.NormFloat64()*InitScale)
			}
		}

		return y, nil
	}

	y, err := pca.Project(x, o.Dims)
	if err != nil {
		return nil, fmt.Errorf("tsne: warm start failed: %w", err)
	}
	y.Scale(InitScale, y)

	return y, nil
}

// resolveOptions fills zero-value fields with defaults and validates the
// result against the input shape (n rows, d columns).
func resolveOptions(opts Options, n, d int) (Options, error) {
	o := opts

	if o.Dims == 0 {
		o.Dims = DefaultDims
	}
	if o.Dims < 1 || o.Dims > d {
		return Options{}, ErrBadDimension
	}

	if o.Perplexity == 0 {
		o.Perplexity = math.Min(DefaultPerplexity, float64(n-1))
	}
	if err := validatePerplexity(o.Perplexity, n); err != nil {
		return Options{}, err
	}

	if o.Iterations == 0 {
		o.Iterations = DefaultIterations
	}
	if o.Iterations < 1 {
		return Options{}, ErrBadIterations
	}

	if o.LearningRate == 0 {
		o.LearningRate = DefaultLearningRate
	}
	if o.LearningRate <= 0 || math.IsNaN(o.LearningRate) || math.IsInf(o.LearningRate, 0) {
		return Options{}, ErrBadLearningRate
	}

	return o, nil
}

// cancelled reports whether ch is non-nil and already closed or signalled.
func cancelled(ch <-chan struct{}) bool {
	if ch == nil {
		return false
	}
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
