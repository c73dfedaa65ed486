package projection

import "gonum.org/v1/gonum/mat"

// FromRows packs a slice of equal-length rows into a dense matrix.
//
// Errors:
//   - ErrEmptyInput when rows is empty or the first row has zero width;
//   - ErrRaggedRows when any row's length differs from the first's.
//
// The data is copied; mutating rows afterwards does not affect the result.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyInput
	}

	d := len(rows[0])
	x := mat.NewDense(len(rows), d, nil)
	for i, row := range rows {
		if len(row) != d {
			return nil, ErrRaggedRows
		}
		x.SetRow(i, row)
	}

	return x, nil
}

// ToRows unpacks a dense matrix into freshly allocated row slices.
func ToRows(x *mat.Dense) [][]float64 {
	n, d := x.Dims()
	rows := make([][]float64, n)
	var i int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, d)
		copy(rows[i], x.RawRowView(i))
	}

	return rows
}
