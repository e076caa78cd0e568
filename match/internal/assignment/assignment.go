//
// Copyright 2025 Google LLC. All rights reserved.
//
// screen-qa is licensed under the Apache License Version 2.0.
//

// Package assignment solves the minimum-cost linear assignment problem
// on dense rectangular cost matrices.
package assignment

import "math"

// Unassigned marks a row left without a column in the returned
// assignment.
const Unassigned = -1

// Solve returns the column assigned to each row in a minimum total cost
// one-to-one assignment of rows to columns. Every row is assigned when
// there are at least as many columns as rows; otherwise the leftover
// rows hold Unassigned. The solution is a global optimum, never a greedy
// approximation.
func Solve(cost [][]float64) []int {
	rows := len(cost)
	if rows == 0 {
		return nil
	}
	cols := len(cost[0])
	colOf := make([]int, rows)
	for i := range colOf {
		colOf[i] = Unassigned
	}
	if cols == 0 {
		return colOf
	}
	if rows <= cols {
		return solveWide(cost)
	}
	// More rows than columns: solve the transposed problem and map back.
	transposed := make([][]float64, cols)
	for j := range transposed {
		transposed[j] = make([]float64, rows)
		for i := range cost {
			transposed[j][i] = cost[i][j]
		}
	}
	for j, i := range solveWide(transposed) {
		colOf[i] = j
	}
	return colOf
}

// solveWide solves the assignment for rows <= cols by successive
// shortest augmenting paths over row and column potentials, in
// O(rows^2 * cols). Indices are 1-based internally with column 0 acting
// as the virtual source of each augmenting path.
func solveWide(cost [][]float64) []int {
	rows := len(cost)
	cols := len(cost[0])
	u := make([]float64, rows+1)
	v := make([]float64, cols+1)
	rowOf := make([]int, cols+1) // rowOf[j] is the row matched to column j, 0 when free.
	prev := make([]int, cols+1)  // prev[j] is the preceding column on the augmenting path.
	for i := 1; i <= rows; i++ {
		rowOf[0] = i
		j0 := 0
		minReduced := make([]float64, cols+1)
		used := make([]bool, cols+1)
		for j := range minReduced {
			minReduced[j] = math.Inf(1)
		}
		for {
			used[j0] = true
			i0 := rowOf[j0]
			delta := math.Inf(1)
			j1 := 0
			for j := 1; j <= cols; j++ {
				if used[j] {
					continue
				}
				reduced := cost[i0-1][j-1] - u[i0] - v[j]
				if reduced < minReduced[j] {
					minReduced[j] = reduced
					prev[j] = j0
				}
				if minReduced[j] < delta {
					delta = minReduced[j]
					j1 = j
				}
			}
			for j := 0; j <= cols; j++ {
				if used[j] {
					u[rowOf[j]] += delta
					v[j] -= delta
				} else {
					minReduced[j] -= delta
				}
			}
			j0 = j1
			if rowOf[j0] == 0 {
				break
			}
		}
		// Walk the augmenting path back to the source, shifting matches.
		for j0 != 0 {
			j1 := prev[j0]
			rowOf[j0] = rowOf[j1]
			j0 = j1
		}
	}
	colOf := make([]int, rows)
	for j := 1; j <= cols; j++ {
		if rowOf[j] != 0 {
			colOf[rowOf[j]-1] = j - 1
		}
	}
	return colOf
}
