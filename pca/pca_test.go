package pca_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/daiviknambiar/manifold/pca"
)

// randomMatrix builds a deterministic n×d matrix from a fixed seed so tests
// are reproducible across runs.
func randomMatrix(n, d int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*d)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return mat.NewDense(n, d, data)
}

// TestProject_NilInput verifies that a nil matrix errors with ErrNilInput.
func TestProject_NilInput(t *testing.T) {
	_, err := pca.Project(nil, 2)
	assert.ErrorIs(t, err, pca.ErrNilInput, "nil input must error ErrNilInput")
}

// TestProject_InsufficientSamples verifies that a single row is rejected:
// the covariance of one point is undefined.
func TestProject_InsufficientSamples(t *testing.T) {
	x := mat.NewDense(1, 4, []float64{1, 2, 3, 4})

	_, err := pca.Project(x, 2)
	assert.ErrorIs(t, err, pca.ErrInsufficientSamples, "N<2 must error ErrInsufficientSamples")
}

// TestProject_BadDimension verifies the 1 ≤ k ≤ D bound on the component count.
func TestProject_BadDimension(t *testing.T) {
	x := randomMatrix(5, 3, 1)

	_, err := pca.Project(x, 0)
	assert.ErrorIs(t, err, pca.ErrBadDimension, "k=0 must error ErrBadDimension")

	_, err = pca.Project(x, 4)
	assert.ErrorIs(t, err, pca.ErrBadDimension, "k>D must error ErrBadDimension")
}

// TestProject_NonFinite verifies fail-fast rejection of NaN and Inf entries.
func TestProject_NonFinite(t *testing.T) {
	x := randomMatrix(4, 3, 2)
	x.Set(2, 1, math.NaN())
	_, err := pca.Project(x, 2)
	assert.ErrorIs(t, err, pca.ErrNonFinite, "NaN entry must error ErrNonFinite")

	x.Set(2, 1, math.Inf(1))
	_, err = pca.Project(x, 2)
	assert.ErrorIs(t, err, pca.ErrNonFinite, "Inf entry must error ErrNonFinite")
}

// TestProject_Shape verifies the output is N×k for valid inputs.
func TestProject_Shape(t *testing.T) {
	x := randomMatrix(10, 5, 3)

	y, err := pca.Project(x, 2)
	require.NoError(t, err)

	rows, cols := y.Dims()
	assert.Equal(t, 10, rows, "output must keep the sample count")
	assert.Equal(t, 2, cols, "output must have k columns")
}

// TestProject_TranslationInvariance verifies that shifting every row by the
// same constant vector does not change the projected coordinates (centering
// removes any uniform translation).
func TestProject_TranslationInvariance(t *testing.T) {
	const n, d = 12, 4
	x := randomMatrix(n, d, 4)

	shifted := mat.NewDense(n, d, nil)
	offset := []float64{100, -3, 0.5, 42}
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			shifted.Set(i, j, x.At(i, j)+offset[j])
		}
	}

	y1, err := pca.Project(x, 2)
	require.NoError(t, err)
	y2, err := pca.Project(shifted, 2)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, y1.At(i, j), y2.At(i, j), 1e-9,
				"translated input must project to identical coordinates")
		}
	}
}

// TestPrincipalComponents_Orthonormal verifies the basis columns are unit
// length and mutually orthogonal, and that eigenvalues come out descending.
func TestPrincipalComponents_Orthonormal(t *testing.T) {
	const d = 6
	x := randomMatrix(20, d, 5)

	basis, eigenvalues, err := pca.PrincipalComponents(x, 3)
	require.NoError(t, err)
	require.Len(t, eigenvalues, 3)

	// Descending eigenvalues.
	assert.GreaterOrEqual(t, eigenvalues[0], eigenvalues[1], "eigenvalues must be sorted descending")
	assert.GreaterOrEqual(t, eigenvalues[1], eigenvalues[2], "eigenvalues must be sorted descending")

	// Pairwise dot products: 1 on the diagonal, 0 off it.
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			dot := 0.0
			for i := 0; i < d; i++ {
				dot += basis.At(i, a) * basis.At(i, b)
			}
			if a == b {
				assert.InDelta(t, 1.0, dot, 1e-9, "basis columns must be unit length")
			} else {
				assert.InDelta(t, 0.0, dot, 1e-9, "basis columns must be orthogonal")
			}
		}
	}
}

// TestProject_Rank1Ordering verifies that for points on a single line in
// D-space, the k=1 projection reconstructs the ordering along that line
// exactly (|correlation| = 1 with the true line parameter).
func TestProject_Rank1Ordering(t *testing.T) {
	const n, d = 15, 5
	direction := []float64{1, -2, 0.5, 3, -1}
	params := make([]float64, n)
	x := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		params[i] = float64(i) * 0.7
		for j := 0; j < d; j++ {
			x.Set(i, j, params[i]*direction[j])
		}
	}

	y, err := pca.Project(x, 1)
	require.NoError(t, err)

	projected := mat.Col(nil, 0, y)
	corr := stat.Correlation(params, projected, nil)
	assert.InDelta(t, 1.0, math.Abs(corr), 1e-9,
		"rank-1 data must project with perfect monotonic correlation (sign is arbitrary)")
}

// TestProject_ZeroVarianceColumn verifies that constant columns degrade
// gracefully: low-information components, not an error.
func TestProject_ZeroVarianceColumn(t *testing.T) {
	x := randomMatrix(8, 3, 6)
	for i := 0; i < 8; i++ {
		x.Set(i, 1, 7.0) // column 1 carries no variance
	}

	y, err := pca.Project(x, 3)
	require.NoError(t, err, "zero-variance column must not error")

	rows, cols := y.Dims()
	assert.Equal(t, 8, rows)
	assert.Equal(t, 3, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.False(t, math.IsNaN(y.At(i, j)), "output must stay finite")
		}
	}
}

// TestProject_Deterministic verifies that two identical calls return
// bit-identical output.
func TestProject_Deterministic(t *testing.T) {
	x := randomMatrix(10, 4, 7)

	y1, err := pca.Project(x, 2)
	require.NoError(t, err)
	y2, err := pca.Project(x, 2)
	require.NoError(t, err)

	assert.True(t, mat.Equal(y1, y2), "identical inputs must yield identical projections")
}
