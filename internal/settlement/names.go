package settlement

import "grid-game/pkg/core"

var (
	firstSyllables  = []string{"Ka", "Ta", "Ma", "Sa", "La"}
	middleSyllables = []string{"ri", "lo", "me", "na", "si"}
	lastSyllables   = []string{"neth", "lius", "dor", "vin", "ra"}
)

// Name joins one random syllable from each table.
func Name(rng *core.RNG) string {
	pick := func(s []string) string { return s[rng.IntN(len(s))] }
	return pick(firstSyllables) + pick(middleSyllables) + pick(lastSyllables)
}
