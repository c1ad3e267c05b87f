// Package sieve enumerates primes with an odd-only sieve of Eratosthenes.
package sieve

import "math"

// Primes returns the primes strictly less than n in ascending order.
//
// Only odd candidates are stored: slot k stands for the number 2k+1, which
// halves memory. Two is added separately. For n <= 2 the result is empty.
func Primes(n int) []int {
	if n <= 2 {
		return []int{}
	}

	half := n / 2
	composite := make([]bool, half)
	for i := 3; i*i < n; i += 2 {
		if composite[i/2] {
			continue
		}
		// Odd multiples of i starting at i*i are i apart in slot space.
		for k := i * i / 2; k < half; k += i {
			composite[k] = true
		}
	}

	primes := make([]int, 0, estimateCount(n))
	primes = append(primes, 2)
	for k := 1; k < half; k++ {
		if !composite[k] {
			primes = append(primes, 2*k+1)
		}
	}
	return primes
}

// Weights returns the indicator vector of length n: 1 at every prime index,
// 0 elsewhere. Primes outside [0, n) are ignored.
func Weights(n int, primes []int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	w := make([]float64, n)
	for _, p := range primes {
		if p >= 0 && p < n {
			w[p] = 1
		}
	}
	return w
}

// estimateCount returns a capacity hint for the number of primes below n.
// n/ln(n) underestimates slightly, so pad by a quarter.
func estimateCount(n int) int {
	if n < 16 {
		return 8
	}
	return int(float64(n) / math.Log(float64(n)) * 1.25)
}
