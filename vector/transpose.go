package vector

// Transpose swaps rows with columns: given m points of dimension n it
// returns n slices of length m, where the j-th slice holds the j-th
// coordinate of every point in input order.
//
// An empty input yields an empty result. Points of differing dimension
// are rejected with an *ErrDimensionMismatch.
func Transpose(points []Point) ([][]float64, error) {
	if len(points) == 0 {
		return nil, nil
	}

	dim := len(points[0])
	for _, p := range points[1:] {
		if err := p.CheckDim(dim); err != nil {
			return nil, err
		}
	}

	// One backing array for all columns.
	data := make([]float64, dim*len(points))
	columns := make([][]float64, dim)
	for j := range columns {
		columns[j] = data[j*len(points) : (j+1)*len(points) : (j+1)*len(points)]
	}

	for i, p := range points {
		for j, c := range p {
			columns[j][i] = c
		}
	}

	return columns, nil
}
