package vtrace

import "math/rand"

// keySeed is the fixed RNG seed for deterministic key-color selection
// (spec §4.1, §9 "Floating-point determinism").
const keySeed = 42

// shouldKey scans rows {0, h/4, h/2, 3h/4, h-1} and reports whether the
// image is transparency-dominant: the count of alpha=0 pixels across those
// rows reaches floor(0.4*width).
func shouldKey(pixels []byte, width, height int) bool {
	if height == 0 || width == 0 {
		return false
	}
	rows := sampleRows(height)
	threshold := (4 * width) / 10
	count := 0
	for _, y := range rows {
		rowOff := y * width * 4
		for x := 0; x < width; x++ {
			if pixels[rowOff+x*4+3] == 0 {
				count++
			}
		}
	}
	return count >= threshold
}

// sampleRows returns the deduplicated row indices {0, h/4, h/2, 3h/4, h-1}.
func sampleRows(height int) []int {
	candidates := [5]int{0, height / 4, height / 2, (3 * height) / 4, height - 1}
	seen := make(map[int]bool, 5)
	rows := make([]int, 0, 5)
	for _, y := range candidates {
		if y < 0 || y >= height || seen[y] {
			continue
		}
		seen[y] = true
		rows = append(rows, y)
	}
	return rows
}

// keyPalette lists the six saturated primaries tried before the seeded
// pseudo-random candidates in findUnusedColor.
var keyPalette = [6][3]uint8{
	{255, 0, 0},
	{0, 255, 0},
	{0, 0, 255},
	{255, 255, 0},
	{255, 0, 255},
	{0, 255, 255},
}

// findUnusedColor returns the first RGB triple, from the fixed palette
// followed by six seeded pseudo-random opaque colors, that appears in no
// pixel's RGB regardless of alpha. Falls back to (1,2,3).
func findUnusedColor(pixels []byte, width, height int) [3]uint8 {
	used := make(map[[3]uint8]bool, width*height)
	for i := 0; i+3 < len(pixels); i += 4 {
		used[[3]uint8{pixels[i], pixels[i+1], pixels[i+2]}] = true
	}

	for _, c := range keyPalette {
		if !used[c] {
			return c
		}
	}

	rng := rand.New(rand.NewSource(keySeed))
	for i := 0; i < 6; i++ {
		c := [3]uint8{
			uint8(rng.Intn(256)),
			uint8(rng.Intn(256)),
			uint8(rng.Intn(256)),
		}
		if !used[c] {
			return c
		}
	}

	return [3]uint8{1, 2, 3}
}

// applyKeyColor overwrites every fully-transparent pixel with the opaque
// key color, in place.
func applyKeyColor(pixels []byte, key [3]uint8) {
	for i := 0; i+3 < len(pixels); i += 4 {
		if pixels[i+3] == 0 {
			pixels[i] = key[0]
			pixels[i+1] = key[1]
			pixels[i+2] = key[2]
			pixels[i+3] = 255
		}
	}
}
