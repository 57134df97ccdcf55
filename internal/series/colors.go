package series

import (
	"fmt"
	"hash/fnv"
	"math"
)

// categoryHues pins a base hue to each built-in category so dashboard
// colors stay familiar across releases. User-added categories get a
// hash-derived hue.
var categoryHues = map[string]int{
	"gym":     210,
	"walks":   120,
	"intake":  0,
	"games":   280,
	"reading": 30,
	"social":  330,
}

// activityLightness shades the first activities of a category off the same
// base hue.
var activityLightness = [...]int{45, 60, 75}

// hashHue spreads an arbitrary id over the hue circle. FNV-1a keeps the
// mapping stable across runs and platforms.
func hashHue(id string) int {
	h := fnv.New32a()
	h.Write([]byte(id))
	return int(h.Sum32() % 360)
}

// categoryHue returns the base hue for a category.
func categoryHue(categoryID string) int {
	if hue, ok := categoryHues[categoryID]; ok {
		return hue
	}
	return hashHue(categoryID)
}

// activityColor derives the line color for the index-th activity of a
// category. The first three activities are lightness variants of the
// category's base hue; beyond that the hue itself is spread by hashing the
// composite id, so every activity stays distinguishable and deterministic.
func activityColor(categoryID, activityID string, index int) string {
	if index < len(activityLightness) {
		return hslHex(categoryHue(categoryID), 70, activityLightness[index])
	}
	return hslHex(hashHue(categoryID+":"+activityID), 70, 55)
}

// hslHex converts an HSL triple (h in degrees, s and l in percent) to a
// #rrggbb string.
func hslHex(h, s, l int) string {
	sf := float64(s) / 100
	lf := float64(l) / 100

	c := (1 - math.Abs(2*lf-1)) * sf
	hp := float64(h%360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := lf - c/2
	return fmt.Sprintf("#%02x%02x%02x",
		int((r+m)*255+0.5), int((g+m)*255+0.5), int((b+m)*255+0.5))
}
