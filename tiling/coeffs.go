package tiling

import "github.com/katalvlaran/isohedral/geom"

// The coefficient tables express every derived quantity as a linear
// combination over the augmented parameter vector [p₀ … pₙ₋₁ 1]. The
// parameter slices handled here stay pure of length n; the constant term's
// coefficient sits at its dedicated offset n within each row of n+1.

// makePoint evaluates one point from the table: the x row starts at offs,
// the y row at offs+n+1. Consumes 2·(n+1) coefficients.
func makePoint(coeffs []float64, offs int, params []float64) geom.Point {
	n := len(params)
	x := coeffs[offs+n]
	y := coeffs[offs+2*n+1]
	for i, p := range params {
		x += coeffs[offs+i] * p
		y += coeffs[offs+n+1+i] * p
	}
	return geom.Point{X: x, Y: y}
}

// makeMatrix evaluates one 2×3 affine from the table, row by row.
// Consumes 6·(n+1) coefficients.
func makeMatrix(coeffs []float64, offs int, params []float64) geom.Transform {
	n := len(params)
	var m geom.Transform
	for row := range m {
		v := coeffs[offs+n]
		for i, p := range params {
			v += coeffs[offs+i] * p
		}
		m[row] = v
		offs += n + 1
	}
	return m
}
