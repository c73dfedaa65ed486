package projection

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/daiviknambiar/manifold/pca"
	"github.com/daiviknambiar/manifold/tsne"
)

// Reduce maps the rows of x into opts.Dims coordinates using the selected
// method.
//
// Description:
//
//	Thin dispatcher: validates the facade-level contract (Dims ∈ {2, 3},
//	known Method), translates Options into the subpackage's option
//	surface and forwards. Input validation beyond the dimension check is
//	owned by the subpackages.
//
// Errors:
//   - ErrBadDimension, ErrUnknownMethod at this level;
//   - subpackage sentinels (pca.ErrNonFinite, tsne.ErrBadPerplexity,
//     tsne.ErrCancelled, ...) wrapped with the method name.
//
// Determinism:
//   - Inherited from the subpackages; identical input and Options yield
//     identical output.
func Reduce(x *mat.Dense, opts Options) (*mat.Dense, error) {
	dims := opts.Dims
	if dims == 0 {
		dims = DefaultDims
	}
	if dims != 2 && dims != 3 {
		return nil, ErrBadDimension
	}

	switch opts.Method {
	case MethodPCA:
		y, err := pca.Project(x, dims)
		if err != nil {
			return nil, fmt.Errorf("projection: %s: %w", opts.Method, err)
		}

		return y, nil

	case MethodTSNE:
		y, err := tsne.Embed(x, tsne.Options{
			Dims:       dims,
			Perplexity: opts.Perplexity,
			Iterations: opts.Iterations,
			Seed:       opts.Seed,
			OnProgress: opts.OnProgress,
			Cancel:     opts.Cancel,
		})
		if err != nil {
			return nil, fmt.Errorf("projection: %s: %w", opts.Method, err)
		}

		return y, nil

	default:
		return nil, ErrUnknownMethod
	}
}
