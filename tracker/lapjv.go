package tracker

import (
	"fmt"
)

// largeCost is larger than any reduced cost of a cost matrix built from IoU
// similarities
const largeCost = 1000000.0

// lapjv holds the working state of the Jonker-Volgenant algorithm for a
// square dense cost matrix
type lapjv struct {
	n    int
	cost [][]float64
	// rowSol[i] is the column assigned to row i
	rowSol []int
	// colSol[j] is the row assigned to column j
	colSol []int
	// v are the column dual variables
	v []float64
	// free rows left after each phase
	free  []int
	nFree int
}

// solveLapjv solves the square linear assignment problem minimizing the
// total cost and returns the column assigned to each row and the row
// assigned to each column
func solveLapjv(cost [][]float64) (rowSol, colSol []int, err error) {

	n := len(cost)

	s := &lapjv{
		n:      n,
		cost:   cost,
		rowSol: make([]int, n),
		colSol: make([]int, n),
		v:      make([]float64, n),
		free:   make([]int, n),
	}

	if n == 0 {
		return s.rowSol, s.colSol, nil
	}

	s.columnReduction()

	// two rounds of augmenting row reduction are usually enough to leave
	// few free rows for the shortest path phase
	for round := 0; s.nFree > 0 && round < 2; round++ {
		s.rowReduction()
	}

	if s.nFree > 0 {
		if err := s.augment(); err != nil {
			return nil, nil, err
		}
	}

	return s.rowSol, s.colSol, nil
}

// columnReduction assigns each column to its cheapest row, then transfers
// the reduction for rows assigned a single column.  Rows without a column
// are recorded as free
func (s *lapjv) columnReduction() {

	unique := make([]bool, s.n)

	for i := 0; i < s.n; i++ {
		s.rowSol[i] = -1
		s.v[i] = largeCost
		s.colSol[i] = 0
		unique[i] = true
	}

	for i, row := range s.cost {
		for j, c := range row {
			if c < s.v[j] {
				s.v[j] = c
				s.colSol[j] = i
			}
		}
	}

	// a row that is the minimum of several columns keeps the lowest one
	for j := 0; j < s.n; j++ {
		i := s.colSol[j]

		if s.rowSol[i] < 0 {
			s.rowSol[i] = j
		} else {
			unique[i] = false
			s.colSol[j] = -1
		}
	}

	s.nFree = 0

	for i := 0; i < s.n; i++ {
		switch {
		case s.rowSol[i] < 0:
			s.free[s.nFree] = i
			s.nFree++

		case unique[i]:
			j := s.rowSol[i]
			minVal := largeCost

			for j2, c := range s.cost[i] {
				if j2 != j && c-s.v[j2] < minVal {
					minVal = c - s.v[j2]
				}
			}

			s.v[j] -= minVal
		}
	}
}

// rowReduction performs augmenting row reduction on the free rows
func (s *lapjv) rowReduction() {

	current := 0
	newFree := 0
	count := 0

	for current < s.nFree {

		count++
		freeI := s.free[current]
		current++

		// find the lowest and second lowest reduced cost in the row
		j1, u1 := 0, s.cost[freeI][0]-s.v[0]
		j2, u2 := -1, largeCost

		for j := 1; j < s.n; j++ {
			c := s.cost[freeI][j] - s.v[j]

			if c >= u2 {
				continue
			}

			if c >= u1 {
				j2, u2 = j, c
			} else {
				j2, u2 = j1, u1
				j1, u1 = j, c
			}
		}

		i0 := s.colSol[j1]
		lowered := s.v[j1] - (u2 - u1)
		lowers := lowered < s.v[j1]

		if count < current*s.n {
			if lowers {
				s.v[j1] = lowered
			} else if i0 >= 0 && j2 >= 0 {
				j1 = j2
				i0 = s.colSol[j2]
			}

			if i0 >= 0 {
				if lowers {
					// retry the displaced row straight away
					current--
					s.free[current] = i0
				} else {
					s.free[newFree] = i0
					newFree++
				}
			}

		} else if i0 >= 0 {
			s.free[newFree] = i0
			newFree++
		}

		s.rowSol[freeI] = j1
		s.colSol[j1] = freeI
	}

	s.nFree = newFree
}

// augment assigns each remaining free row along a shortest augmenting path
func (s *lapjv) augment() error {

	pred := make([]int, s.n)

	for _, freeI := range s.free[:s.nFree] {

		j := s.shortestPath(freeI, pred)

		if j < 0 || j >= s.n {
			return fmt.Errorf("augmenting path for row %d ended at invalid column %d", freeI, j)
		}

		// flip assignments back along the path, visiting each row at most
		// once
		i := -1

		for steps := 0; i != freeI; steps++ {
			if steps >= s.n {
				return fmt.Errorf("augmenting path for row %d does not terminate", freeI)
			}

			i = pred[j]
			s.colSol[j] = i
			j, s.rowSol[i] = s.rowSol[i], j
		}
	}

	s.nFree = 0
	return nil
}

// shortestPath runs the modified Dijkstra search of the JV paper from the
// free row startI and returns the unassigned column the path ends at.  pred
// receives the row preceding each column on the path
func (s *lapjv) shortestPath(startI int, pred []int) int {

	cols := make([]int, s.n)
	d := make([]float64, s.n)

	for j := 0; j < s.n; j++ {
		cols[j] = j
		pred[j] = startI
		d[j] = s.cost[startI][j] - s.v[j]
	}

	// cols[:ready] are done, cols[lo:hi] are on the SCAN list and
	// cols[hi:] are still TODO
	lo, hi, ready := 0, 0, 0
	endJ := -1
	minD := 0.0

	for endJ == -1 {
		if lo == hi {
			ready = lo
			hi, minD = s.collectMin(lo, d, cols)

			for _, j := range cols[lo:hi] {
				if s.colSol[j] < 0 {
					endJ = j
				}
			}
		}

		if endJ == -1 {
			endJ = s.scan(&lo, &hi, d, cols, pred)
		}
	}

	// scan may have moved lo past the SCAN list, so the path length is the
	// distance of the last collected minimum
	for _, j := range cols[:ready] {
		s.v[j] += d[j] - minD
	}

	return endJ
}

// collectMin moves the TODO columns with the minimum distance to the front
// of cols[lo:] and returns the new end of the SCAN list and that distance
func (s *lapjv) collectMin(lo int, d []float64, cols []int) (int, float64) {

	hi := lo + 1
	minD := d[cols[lo]]

	for k := hi; k < s.n; k++ {
		j := cols[k]

		if d[j] > minD {
			continue
		}

		if d[j] < minD {
			hi = lo
			minD = d[j]
		}

		cols[k], cols[hi] = cols[hi], j
		hi++
	}

	return hi, minD
}

// scan relaxes the TODO columns through each column on the SCAN list.  It
// returns an unassigned column reached at the minimum distance, or -1 when
// the SCAN list is exhausted
func (s *lapjv) scan(lo, hi *int, d []float64, cols, pred []int) int {

	for *lo != *hi {

		j := cols[*lo]
		*lo++

		i := s.colSol[j]
		minD := d[j]
		h := s.cost[i][j] - s.v[j] - minD

		for k := *hi; k < s.n; k++ {
			j = cols[k]
			reduced := s.cost[i][j] - s.v[j] - h

			if reduced >= d[j] {
				continue
			}

			d[j] = reduced
			pred[j] = i

			if reduced == minD {
				if s.colSol[j] < 0 {
					return j
				}

				cols[k], cols[*hi] = cols[*hi], j
				*hi++
			}
		}
	}

	return -1
}
