package shuffle

import "math"

const twoPow32 = 4294967296

// Generator is a small-fast-counter (sfc32) generator. The bit operations must
// stay exactly as they are: recorded games are replayed from their seeds.
type Generator struct {
	a, b, c, d uint32
}

func New(a, b, c, d uint32) *Generator {
	return &Generator{a: a, b: b, c: c, d: d}
}

// Next returns a value in [0, 1).
func (g *Generator) Next() float64 {
	t := g.a + g.b + g.d
	g.d++
	g.a = g.b ^ (g.b >> 9)
	g.b = g.c + (g.c << 3)
	g.c = (g.c << 21) | (g.c >> 11)
	g.c += t
	return float64(t) / twoPow32
}

// Intn returns a value in [0, n).
func (g *Generator) Intn(n int) int {
	return int(math.Floor(g.Next() * float64(n)))
}

// Shuffle returns a permuted copy of items. Each position, left to right,
// is swapped with a uniformly chosen position at or after it.
func Shuffle[S ~[]T, T any](g *Generator, items S) S {
	result := make(S, len(items))
	copy(result, items)
	for i := range result {
		j := i + g.Intn(len(result)-i)
		result[i], result[j] = result[j], result[i]
	}
	return result
}
