package util

import "math/rand/v2"

// GenerateRandomUints generates n random unsigned integers in the range 0..m.
func GenerateRandomUints(n, m uint) []uint {
	items := make([]uint, n)

	for i := uint(0); i < n; i++ {
		items[i] = rand.UintN(m)
	}

	return items
}

// GenerateRandomInts generates n random integers in the range -m..m.
func GenerateRandomInts(n uint, m int64) []int64 {
	items := make([]int64, n)

	for i := uint(0); i < n; i++ {
		items[i] = rand.Int64N(2*m+1) - m
	}

	return items
}

// GenerateRandomWords generates n random lowercase words of a given length.
func GenerateRandomWords(n, length uint) []string {
	items := make([]string, n)
	//
	for i := uint(0); i < n; i++ {
		word := make([]byte, length)
		for j := uint(0); j < length; j++ {
			word[j] = byte('a' + rand.UintN(26))
		}

		items[i] = string(word)
	}
	//
	return items
}
