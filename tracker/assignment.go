package tracker

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Match pairs a row of a similarity matrix (a track) with a column (a
// detection)
type Match struct {
	Row int
	Col int
}

// Solve returns the one-to-one pairing of rows and columns of the similarity
// matrix that maximizes total similarity.  Similarities are expected to be
// non-negative.  Rows and columns left over from a rectangular matrix are
// unpaired.  A nil matrix returns no pairs.  Matches are ordered by row
func Solve(sim mat.Matrix) []Match {

	if sim == nil {
		return nil
	}

	nRows, nCols := sim.Dims()
	matches, _, _ := LinearAssignment(sim, nRows, nCols, 0)

	return matches
}

// LinearAssignment performs linear assignment on the similarity matrix using
// the Jonker-Volgenant algorithm and returns the matched pairs along with the
// unmatched row and column indexes in ascending order.
//
// When minOverlap is zero or less every row is paired while columns remain,
// giving the maximum total similarity.  When minOverlap is positive a pair is
// only matched when its similarity is greater than minOverlap, and the
// solver maximizes the total similarity of the pairs above minOverlap.
//
// nRows and nCols give the matrix shape so that a nil matrix can be passed
// when either dimension is zero
func LinearAssignment(sim mat.Matrix, nRows, nCols int,
	minOverlap float64) (matches []Match, unmatchedRows, unmatchedCols []int) {

	if sim == nil || nRows == 0 || nCols == 0 {
		for i := 0; i < nRows; i++ {
			unmatchedRows = append(unmatchedRows, i)
		}
		for j := 0; j < nCols; j++ {
			unmatchedCols = append(unmatchedCols, j)
		}
		return
	}

	rowsol, colsol := execLapjv(sim, nRows, nCols, minOverlap)

	for i, sol := range rowsol {
		if sol >= 0 && (minOverlap <= 0 || sim.At(i, sol) > minOverlap) {
			matches = append(matches, Match{Row: i, Col: sol})
		} else {
			unmatchedRows = append(unmatchedRows, i)
			if sol >= 0 {
				colsol[sol] = -1
			}
		}
	}

	for j, sol := range colsol {
		if sol < 0 {
			unmatchedCols = append(unmatchedCols, j)
		}
	}

	return
}

// execLapjv converts the similarity matrix into a square cost matrix of size
// nRows+nCols and solves it.  The extra rows and columns let any real row or
// column be left unassigned at a fixed cost.  Returns rowsol[i] as the column
// assigned to row i and colsol[j] as the row assigned to column j, or -1 when
// unassigned
func execLapjv(sim mat.Matrix, nRows, nCols int,
	minOverlap float64) (rowsol []int, colsol []int) {

	rowsol = make([]int, nRows)
	colsol = make([]int, nCols)

	for i := range rowsol {
		rowsol[i] = -1
	}
	for j := range colsol {
		colsol[j] = -1
	}

	// similarity is turned into a non-negative cost relative to the highest
	// similarity in the matrix
	simMax := math.Inf(-1)

	for i := 0; i < nRows; i++ {
		for j := 0; j < nCols; j++ {
			simMax = math.Max(simMax, sim.At(i, j))
		}
	}

	if minOverlap > 0 && simMax <= minOverlap {
		// nothing in the matrix is above the gate
		return
	}

	n := nRows + nCols
	cost := make([][]float64, n)

	for i := range cost {
		cost[i] = make([]float64, n)
	}

	costMax := float64(0)

	for i := 0; i < nRows; i++ {
		for j := 0; j < nCols; j++ {
			s := sim.At(i, j)
			c := simMax - s

			// a gated pair costs more than leaving both sides unassigned
			if minOverlap > 0 && s <= minOverlap {
				c = simMax + 1
			}

			cost[i][j] = c

			if c > costMax {
				costMax = c
			}
		}
	}

	// fill value for leaving a row or column unassigned.  With a gate an
	// unassigned row and column together cost simMax, the same as a pair of
	// zero similarity, so the solver maximizes the total similarity of the
	// pairs above the gate
	var unassigned float64

	if minOverlap > 0 {
		unassigned = simMax / 2.0
	} else {
		unassigned = costMax + 1
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i < nRows && j < nCols:
				continue
			case i >= nRows && j >= nCols:
				cost[i][j] = 0
			default:
				cost[i][j] = unassigned
			}
		}
	}

	x, y, err := solveLapjv(cost)

	if err != nil {
		return
	}

	for i := 0; i < nRows; i++ {
		if x[i] < nCols {
			rowsol[i] = x[i]
		}
	}

	for j := 0; j < nCols; j++ {
		if y[j] < nRows {
			colsol[j] = y[j]
		}
	}

	return rowsol, colsol
}
