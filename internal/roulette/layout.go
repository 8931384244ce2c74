package roulette

import "sort"

// Table layout: numbers 1-36 on a 3-wide, 12-row grid. Row r (0-based) holds
// 3r+1, 3r+2, 3r+3; the column of n is (n-1)%3+1. Zero sits above row 0 and
// is adjacent only to 1, 2 and 3.

func sorted(numbers []int) []int {
	s := make([]int, len(numbers))
	copy(s, numbers)
	sort.Ints(s)
	return s
}

func inRange(numbers []int) bool {
	for _, n := range numbers {
		if n < 0 || n > 36 {
			return false
		}
	}
	return true
}

// isValidSplit checks for two adjacent numbers: horizontal neighbors in the
// same row, or vertical neighbors three apart. Zero splits only with 1, 2, 3.
func isValidSplit(numbers []int) bool {
	if len(numbers) != 2 || !inRange(numbers) {
		return false
	}
	s := sorted(numbers)
	a, b := s[0], s[1]
	if a == b {
		return false
	}
	if a == 0 {
		return b >= 1 && b <= 3
	}
	// Horizontal: next number in the same row (a must not end the row).
	if b == a+1 && a%3 != 0 {
		return true
	}
	// Vertical: same column, next row down.
	return b == a+3
}

// isValidStreet checks for a full row: three consecutive numbers starting at
// a row boundary.
func isValidStreet(numbers []int) bool {
	if len(numbers) != 3 || !inRange(numbers) {
		return false
	}
	s := sorted(numbers)
	return s[0] >= 1 && s[0]%3 == 1 && s[1] == s[0]+1 && s[2] == s[0]+2
}

// isValidCorner checks for a 2x2 block: n, n+1, n+3, n+4 where n is not in
// the rightmost column.
func isValidCorner(numbers []int) bool {
	if len(numbers) != 4 || !inRange(numbers) {
		return false
	}
	s := sorted(numbers)
	n := s[0]
	if n < 1 || n%3 == 0 || n+4 > 36 {
		return false
	}
	return s[1] == n+1 && s[2] == n+3 && s[3] == n+4
}

// isValidLine checks for a double street: six consecutive numbers spanning
// exactly two adjacent rows.
func isValidLine(numbers []int) bool {
	if len(numbers) != 6 || !inRange(numbers) {
		return false
	}
	s := sorted(numbers)
	n := s[0]
	if n < 1 || n%3 != 1 || n+5 > 36 {
		return false
	}
	for i := 1; i < 6; i++ {
		if s[i] != n+i {
			return false
		}
	}
	return true
}
