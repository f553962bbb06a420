// Package fish holds the fish catalogue: the fixed table of variants, the
// randomized stat generator and scoring.
package fish

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/go-fish/internal/core"
)

// Variant is an immutable catalogue entry. Variants differ only in data;
// Difficulty drives every derived stat range.
type Variant struct {
	Name             string
	Difficulty       int
	BaseScore        int
	WeightMultiplier float64
	AssetKey         string
}

// catalogue is ordered from easiest to hardest. Asset keys match the sprite
// library, including its historical odd ones.
var catalogue = []Variant{
	{Name: "Carp", Difficulty: 1, BaseScore: 50, WeightMultiplier: 10, AssetKey: "fish_carp_img"},
	{Name: "Sardine", Difficulty: 1, BaseScore: 60, WeightMultiplier: 12, AssetKey: "fish_sardine_img"},
	{Name: "Bream", Difficulty: 2, BaseScore: 80, WeightMultiplier: 15, AssetKey: "fish_bream_img"},
	{Name: "Bass", Difficulty: 3, BaseScore: 120, WeightMultiplier: 20, AssetKey: "fish_bass_img"},
	{Name: "Trout", Difficulty: 3, BaseScore: 130, WeightMultiplier: 22, AssetKey: "fish_trout_img"},
	{Name: "Salmon", Difficulty: 4, BaseScore: 200, WeightMultiplier: 25, AssetKey: "fih"},
	{Name: "Tuna", Difficulty: 5, BaseScore: 300, WeightMultiplier: 30, AssetKey: "fish_tuna_img"},
	{Name: "Pufferfish", Difficulty: 6, BaseScore: 400, WeightMultiplier: 35, AssetKey: "pufferfish"},
	{Name: "Shark", Difficulty: 8, BaseScore: 800, WeightMultiplier: 50, AssetKey: "fish_shark_img"},
	{Name: "Legend", Difficulty: 10, BaseScore: 2000, WeightMultiplier: 100, AssetKey: "fish_legend_img"},
}

// Variants returns the catalogue in order. The slice is a copy.
func Variants() []Variant {
	out := make([]Variant, len(catalogue))
	copy(out, catalogue)
	return out
}

// LookupVariant finds a variant by name, ignoring case.
func LookupVariant(name string) (Variant, bool) {
	for _, v := range catalogue {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return Variant{}, false
}

// ErrUnknownVariant is returned by SelectVariants for a name not in the
// catalogue.
var ErrUnknownVariant = errors.New("unknown fish")

// SelectVariants resolves names to variants in the order given, ignoring
// case and duplicates. No names selects the whole catalogue.
func SelectVariants(names []string) ([]Variant, error) {
	if len(names) == 0 {
		return Variants(), nil
	}
	out := make([]Variant, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		v, ok := LookupVariant(name)
		if !ok {
			return nil, fmt.Errorf("fish: %q: %w", name, ErrUnknownVariant)
		}
		if seen[v.Name] {
			continue
		}
		seen[v.Name] = true
		out = append(out, v)
	}
	return out, nil
}

// DrawRandomVariant picks a variant uniformly; difficulty does not weight the
// draw.
func DrawRandomVariant(rng core.Random) Variant {
	return catalogue[rng.IntRange(0, len(catalogue)-1)]
}

// Instance is one fish on the line, with stats rolled from its variant.
type Instance struct {
	Variant

	Weight               float64 // lbs, 2 decimals
	Size                 float64 // inches, 1 decimal
	SpeedModifier        float64
	ProgressGainModifier float64
	ProgressLossModifier float64
}

// Instantiate rolls a fish of the given variant. Weight is drawn before size.
func Instantiate(v Variant, rng core.Random) Instance {
	d := float64(v.Difficulty)
	baseWeight := 2.0 * d

	return Instance{
		Variant:              v,
		Weight:               roundTo(rng.Uniform(baseWeight*0.8, baseWeight*1.5), 2),
		Size:                 roundTo(rng.Uniform(5.0*d, 8.0*d), 1),
		SpeedModifier:        0.5 + 0.15*d,
		ProgressGainModifier: math.Max(0.5, 1.5-0.1*d),
		ProgressLossModifier: 0.5 + 0.1*d,
	}
}

// Score is the base score plus the weight bonus, rounded down.
func (f Instance) Score() int {
	return int(math.Floor(float64(f.BaseScore) + f.Weight*f.WeightMultiplier))
}

// Tier is the display label used on the win screen and in the journal.
func (f Instance) Tier() string {
	return "Difficulty " + strconv.Itoa(f.Difficulty)
}

// roundTo rounds the exact binary value of v to the given decimal places,
// sending exact ties to the even digit.
func roundTo(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
