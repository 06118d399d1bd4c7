package encoders

import (
	"fmt"
	"math"
)

// BalancedFactors returns the divisor pair a*b == n with a <= sqrt(n) <= b closest to each other.
func BalancedFactors(n int) (a, b int) {
	if n <= 0 {
		panic(fmt.Errorf("factorize non-positive integer %d", n))
	}
	a, b = 1, n
	for i, limit := 1, isqrt(n); i <= limit; i++ {
		if n%i == 0 {
			a = i
			b = n / i
		}
	}
	return
}

func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	// correct float rounding for large n
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

type Factors struct {
	Outer  int
	Inner  int
	Adjust int
}

func (f Factors) Imbalance() int {
	return f.Inner - f.Outer
}

// Value returns Outer*Inner + Adjust.
func (f Factors) Value() int {
	return f.Outer*f.Inner + f.Adjust
}

// SearchFactors looks at the candidates n-radius .. n+radius for the most balanced factorization.
// Ties prefer the smaller adjustment, then the lower candidate.
func SearchFactors(n int, radius int) Factors {
	var best Factors
	found := false
	for offset := -radius; offset <= radius; offset++ {
		candidate := n + offset
		if candidate <= 0 {
			continue
		}
		a, b := BalancedFactors(candidate)
		f := Factors{
			Outer:  a,
			Inner:  b,
			Adjust: -offset,
		}
		if !found ||
			f.Imbalance() < best.Imbalance() ||
			f.Imbalance() == best.Imbalance() && abs(f.Adjust) < abs(best.Adjust) {
			best = f
			found = true
		}
	}
	if !found {
		panic(fmt.Errorf("no positive candidate around %d", n))
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
