// Package discrete - fixed block remappings and fitness remaps.
//
// Epistasis and Neutrality rewrite the bit string before the base kernel;
// Ruggedness1/2/3 rewrite the kernel's integer-valued fitness afterwards.
// Block sizes and remap shapes are variant constants of the shipped
// benchmark definitions.
package discrete

import "math"

// Epistasis applies the XOR block remapping with the given block size and
// returns a new string of equal length. Within a block of size v, output
// bit h is the XOR of every input bit except the one at the rotating
// position (h-1 mod v), so each output couples all-but-one inputs and
// flipping any single input flips v-1 outputs. A shorter tail block is
// remapped with the same rule at its own size.
//
// Complexity: O(n·v) time, O(n) space.
func Epistasis(x []int, block int) ([]int, error) {
	if block <= 0 {
		return nil, ErrBadBlock
	}

	n := len(x)
	out := make([]int, n)
	i := 0
	for ; i+block <= n; i += block {
		epistasisBlock(x[i:i+block], out[i:i+block])
	}
	if i < n {
		epistasisBlock(x[i:], out[i:])
	}

	return out, nil
}

// epistasisBlock remaps one block of its own length.
func epistasisBlock(in, out []int) {
	v := len(in)
	for h := 0; h < v; h++ {
		skip := ((h-1)%v + v) % v
		acc := 0
		for j := 0; j < v; j++ {
			if j == skip {
				continue
			}
			acc ^= in[j]
		}
		out[h] = acc
	}
}

// Neutrality folds consecutive blocks of mu bits into single bits by
// majority vote (ties round up) and returns the shortened string of
// length ⌊n/mu⌋. A trailing partial block is dropped, matching the
// shipped definitions.
//
// Complexity: O(n) time, O(n/mu) space.
func Neutrality(x []int, mu int) ([]int, error) {
	if mu <= 0 {
		return nil, ErrBadBlock
	}

	out := make([]int, 0, len(x)/mu)
	sum := 0
	for i, b := range x {
		sum += b
		if (i+1)%mu == 0 {
			if float64(sum) >= float64(mu)/2 {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
			sum = 0
		}
	}

	return out, nil
}

// Ruggedness1 remaps an integer fitness y ∈ [0, n] onto a compressed
// range with two-value plateaus below the optimum; the optimum value n
// maps to the strictly largest image ⌈n/2⌉+1.
func Ruggedness1(y float64, n int) float64 {
	s := float64(n)
	switch {
	case y == s:
		return math.Ceil(y/2) + 1
	case y < s && n%2 == 0:
		return math.Floor(y/2) + 1
	case y < s:
		return math.Ceil(y / 2)
	default:
		return y
	}
}

// Ruggedness2 swaps adjacent fitness values in pairs aligned to the
// optimum: y+1 when n-y is even (and y < n), max(y-1, 0) when n-y is odd,
// and y itself at the optimum. The image of every y < n is strictly below
// n, so the optimum stays unique.
func Ruggedness2(y float64, n int) float64 {
	s := float64(n)
	switch {
	case y >= s:
		return y
	case int(s-y)%2 == 0:
		return y + 1
	case y >= 1:
		return y - 1
	default:
		return 0
	}
}

// Ruggedness3Table builds the deceptive remap table for fitness values
// 0..n: each 5-wide block below the optimum is reversed, the leading
// partial block descends, and table[n] == n remains the unique maximum.
// Kernels index the table with their integer fitness.
//
// Complexity: O(n) time and space.
func Ruggedness3Table(n int) []float64 {
	if n < 0 {
		return nil
	}

	table := make([]float64, n+1)
	for j := 1; j <= n/5; j++ {
		for k := 0; k < 5; k++ {
			table[n-5*j+k] = float64(n - 5*j + (4 - k))
		}
	}
	rem := n - n/5*5
	for k := 0; k < rem; k++ {
		table[k] = float64(rem - 1 - k)
	}
	table[n] = float64(n)

	return table
}
