package search_test

// 16x16 fixtures shared by the engine tests and benchmarks. complete16
// is a fully filled, conflict-free grid; easy16 clears a subset of its
// cells, leaving a puzzle with a valid completion.

var complete16 = []int{
	3, 7, 6, 8, 5, 14, 10, 9, 13, 2, 1, 15, 11, 12, 16, 4,
	13, 16, 15, 10, 12, 11, 1, 2, 7, 9, 14, 4, 8, 6, 5, 3,
	12, 4, 14, 9, 13, 3, 6, 16, 8, 10, 5, 11, 1, 15, 2, 7,
	11, 5, 1, 2, 8, 15, 7, 4, 6, 3, 16, 12, 13, 10, 14, 9,
	10, 13, 5, 3, 15, 6, 11, 7, 2, 16, 9, 8, 14, 1, 4, 12,
	1, 8, 9, 11, 3, 5, 2, 14, 4, 6, 12, 13, 7, 16, 15, 10,
	14, 12, 16, 7, 4, 8, 9, 10, 3, 1, 15, 5, 2, 11, 13, 6,
	4, 6, 2, 15, 1, 13, 16, 12, 10, 14, 11, 7, 9, 5, 3, 8,
	16, 15, 7, 4, 9, 12, 8, 1, 5, 13, 6, 3, 10, 2, 11, 14,
	9, 1, 8, 6, 16, 10, 5, 3, 11, 12, 2, 14, 4, 13, 7, 15,
	5, 3, 12, 13, 11, 2, 14, 15, 9, 7, 4, 10, 16, 8, 6, 1,
	2, 10, 11, 14, 6, 7, 4, 13, 16, 15, 8, 1, 3, 9, 12, 5,
	6, 14, 13, 12, 2, 1, 3, 8, 15, 11, 7, 9, 5, 4, 10, 16,
	15, 2, 4, 1, 10, 9, 13, 6, 14, 5, 3, 16, 12, 7, 8, 11,
	8, 9, 3, 5, 7, 16, 15, 11, 12, 4, 10, 2, 6, 14, 1, 13,
	7, 11, 10, 16, 14, 4, 12, 5, 1, 8, 13, 6, 15, 3, 9, 2,
}

var easy16 = []int{
	0, 0, 6, 0, 0, 14, 10, 0, 13, 2, 0, 15, 0, 0, 0, 4,
	0, 16, 15, 0, 12, 0, 0, 2, 7, 9, 0, 4, 0, 0, 5, 3,
	12, 0, 14, 0, 13, 3, 6, 0, 0, 0, 5, 0, 1, 0, 0, 0,
	0, 0, 1, 2, 8, 15, 7, 4, 6, 0, 16, 12, 0, 0, 0, 9,
	10, 0, 5, 0, 15, 6, 11, 0, 0, 16, 9, 8, 0, 0, 4, 0,
	0, 8, 0, 11, 3, 0, 0, 0, 0, 0, 0, 13, 7, 16, 15, 0,
	0, 12, 0, 7, 0, 8, 0, 10, 0, 1, 15, 0, 2, 11, 0, 0,
	0, 0, 2, 15, 0, 0, 16, 0, 10, 0, 11, 7, 9, 0, 3, 8,
	0, 15, 0, 4, 0, 12, 0, 0, 5, 13, 6, 0, 10, 2, 0, 0,
	9, 1, 8, 0, 0, 0, 5, 0, 0, 12, 2, 14, 4, 0, 7, 15,
	0, 3, 12, 0, 11, 2, 0, 15, 9, 0, 0, 10, 16, 0, 6, 1,
	0, 0, 11, 14, 0, 0, 0, 13, 0, 15, 0, 1, 3, 0, 12, 5,
	0, 0, 0, 0, 2, 1, 0, 8, 15, 11, 0, 0, 5, 4, 10, 0,
	0, 2, 0, 0, 0, 0, 13, 6, 14, 5, 3, 16, 0, 7, 8, 0,
	0, 9, 3, 0, 0, 0, 0, 11, 0, 0, 10, 0, 0, 14, 0, 13,
	0, 0, 10, 16, 14, 0, 0, 5, 0, 0, 13, 0, 0, 0, 0, 0,
}
