package projection

import "errors"

// Method selects the reduction algorithm Reduce dispatches to.
type Method int

const (
	// MethodPCA projects onto the top principal components. Fast, linear,
	// preserves global variance structure.
	MethodPCA Method = iota
	// MethodTSNE runs t-distributed stochastic neighbor embedding.
	// Slower, nonlinear, preserves local neighborhoods.
	MethodTSNE
)

// String returns the method name, "unknown" for out-of-range values.
func (m Method) String() string {
	switch m {
	case MethodPCA:
		return "pca"
	case MethodTSNE:
		return "tsne"
	default:
		return "unknown"
	}
}

// Sentinel errors of the facade. Subpackage errors pass through wrapped
// and remain matchable with errors.Is.
var (
	// ErrUnknownMethod - Options.Method is not one of the declared Method
	// constants.
	ErrUnknownMethod = errors.New("projection: unknown method")
	// ErrBadDimension - Options.Dims is not 2 or 3.
	ErrBadDimension = errors.New("projection: dims must be 2 or 3")
	// ErrEmptyInput - FromRows received no rows, or rows of zero width.
	ErrEmptyInput = errors.New("projection: empty input")
	// ErrRaggedRows - FromRows received rows of differing lengths.
	ErrRaggedRows = errors.New("projection: ragged rows")
)

// Default option values.
const (
	// DefaultDims is the output width when Options.Dims is zero.
	DefaultDims = 2
)

// Options configures a Reduce call. The zero value selects PCA into two
// dimensions; field semantics for the t-SNE knobs match tsne.Options.
type Options struct {
	// Method picks the algorithm. Zero value is MethodPCA.
	Method Method

	// Dims is the output dimensionality, 2 or 3. Zero means DefaultDims.
	Dims int

	// Perplexity, Iterations and Seed tune MethodTSNE; ignored by
	// MethodPCA. Zero values resolve to the tsne package defaults.
	Perplexity float64
	Iterations int
	Seed       int64

	// OnProgress, when non-nil, receives periodic (iteration, total)
	// reports from MethodTSNE.
	OnProgress func(iteration, total int)

	// Cancel, when non-nil and closed, aborts MethodTSNE between
	// iterations.
	Cancel <-chan struct{}
}

// DefaultOptions returns the canonical configuration: PCA into two
// dimensions.
func DefaultOptions() Options {
	return Options{
		Method: MethodPCA,
		Dims:   DefaultDims,
	}
}
