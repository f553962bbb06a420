package fish

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/go-fish/internal/core"
)

// Summary describes the distribution of one stat over a sample.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	P10    float64
	P90    float64
}

// SampleStats summarises n rolled instances of one variant.
type SampleStats struct {
	Variant Variant
	N       int
	Weight  Summary
	Size    Summary
	Score   Summary
}

// Sample rolls n fish of the given variant and summarises their stats.
// It returns a zero summary for n <= 0.
func Sample(v Variant, n int, rng core.Random) SampleStats {
	out := SampleStats{Variant: v, N: n}
	if n <= 0 {
		return out
	}

	weights := make([]float64, n)
	sizes := make([]float64, n)
	scores := make([]float64, n)
	for i := range n {
		f := Instantiate(v, rng)
		weights[i] = f.Weight
		sizes[i] = f.Size
		scores[i] = float64(f.Score())
	}

	out.Weight = summarize(weights)
	out.Size = summarize(sizes)
	out.Score = summarize(scores)
	return out
}

// summarize sorts xs in place.
func summarize(xs []float64) Summary {
	slices.Sort(xs)
	mean, std := stat.MeanStdDev(xs, nil)
	if len(xs) < 2 {
		std = 0
	}
	return Summary{
		Mean:   mean,
		StdDev: std,
		Min:    xs[0],
		Max:    xs[len(xs)-1],
		P10:    stat.Quantile(0.1, stat.Empirical, xs, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, xs, nil),
	}
}
