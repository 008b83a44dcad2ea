package tracker

import (
	"testing"
)

func runLapjvTest(t *testing.T, costMatrix [][]float64, expectedX, expectedY []int) {

	x, y, err := solveLapjv(costMatrix)
	if err != nil {
		t.Fatalf("solveLapjv returned an error: %v", err)
	}

	for i := range costMatrix {
		if x[i] != expectedX[i] {
			t.Errorf("Expected x[%d] = %d, but got %d", i, expectedX[i], x[i])
		}
		if y[i] != expectedY[i] {
			t.Errorf("Expected y[%d] = %d, but got %d", i, expectedY[i], y[i])
		}
	}
}

func TestSolveLapjv(t *testing.T) {

	tests := []struct {
		name      string
		cost      [][]float64
		expectedX []int
		expectedY []int
	}{
		{
			name: "unique minimum",
			cost: [][]float64{
				{4, 1, 3, 2},
				{2, 0, 5, 3},
				{3, 2, 2, 3},
				{2, 3, 3, 2},
			},
			expectedX: []int{3, 1, 2, 0},
			expectedY: []int{3, 1, 2, 0},
		},
		{
			name: "shared column minimum",
			cost: [][]float64{
				{10, 19, 8, 15},
				{10, 18, 7, 17},
				{13, 16, 9, 14},
				{12, 19, 8, 18},
			},
			expectedX: []int{3, 0, 1, 2},
			expectedY: []int{1, 2, 3, 0},
		},
		{
			name:      "single",
			cost:      [][]float64{{5}},
			expectedX: []int{0},
			expectedY: []int{0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runLapjvTest(t, tc.cost, tc.expectedX, tc.expectedY)
		})
	}
}

func TestSolveLapjvEmpty(t *testing.T) {
	x, y, err := solveLapjv(nil)

	if err != nil || len(x) != 0 || len(y) != 0 {
		t.Errorf("expected empty solution, got x=%v y=%v err=%v", x, y, err)
	}
}

// TestSolveLapjvUniformCost checks a matrix where every assignment costs the
// same still produces a full permutation
func TestSolveLapjvUniformCost(t *testing.T) {

	for n := 1; n <= 6; n++ {
		cost := make([][]float64, n)
		for i := range cost {
			cost[i] = make([]float64, n)
		}

		x, y, err := solveLapjv(cost)
		if err != nil {
			t.Fatalf("n=%d: solveLapjv failed: %v", n, err)
		}

		seen := make(map[int]bool)
		for i := 0; i < n; i++ {
			if x[i] < 0 || x[i] >= n || seen[x[i]] {
				t.Fatalf("n=%d: invalid assignment %v", n, x)
			}
			seen[x[i]] = true

			if y[x[i]] != i {
				t.Errorf("n=%d: x and y disagree at row %d: x=%v y=%v", n, i, x, y)
			}
		}
	}
}
