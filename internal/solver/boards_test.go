package solver

import "svw.info/sudoku-solve/internal/domain"

// A classic, solvable Sudoku (0 = empty) and its unique solution.
var sample = domain.Board{Values: [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}}

var sampleSolved = domain.Board{Values: [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}}

// The well-known 17-given minimal puzzle and its unique solution.
var seventeen = domain.Board{Values: [9][9]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1, 0},
	{4, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 2, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 5, 0, 4, 0, 7},
	{0, 0, 8, 0, 0, 0, 3, 0, 0},
	{0, 0, 1, 0, 9, 0, 0, 0, 0},
	{3, 0, 0, 4, 0, 0, 2, 0, 0},
	{0, 5, 0, 1, 0, 0, 0, 0, 0},
	{0, 0, 0, 8, 0, 6, 0, 0, 0},
}}

var seventeenSolved = domain.Board{Values: [9][9]uint8{
	{6, 9, 3, 7, 8, 4, 5, 1, 2},
	{4, 8, 7, 5, 1, 2, 9, 3, 6},
	{1, 2, 5, 9, 6, 3, 8, 7, 4},
	{9, 3, 2, 6, 5, 1, 4, 8, 7},
	{5, 6, 8, 2, 4, 7, 3, 9, 1},
	{7, 4, 1, 3, 9, 8, 6, 2, 5},
	{3, 1, 9, 4, 7, 5, 2, 6, 8},
	{8, 5, 6, 1, 2, 9, 7, 4, 3},
	{2, 7, 4, 8, 3, 6, 1, 5, 9},
}}

// duplicateRow repeats a 5 within the first row.
var duplicateRow = domain.Board{Values: [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 5, 0},
	{6, 0, 0, 1, 9, 0, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 0},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}}

// noSolution has no repeated digit yet cannot be completed: the first
// row is missing only a 9 and the open cell's column already holds one.
var noSolution = domain.Board{Values: [9][9]uint8{
	{1, 2, 3, 4, 5, 6, 7, 8, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 9},
}}
