package util

import (
	"math/rand"

	"github.com/fogleman/ease"
)

func RandomiseSaturation(rng *rand.Rand, min float64, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// GenerateLut builds a look-up table that eases up from 0 to 1 over the first
// half and back down over the second.
func GenerateLut(length int) []float64 {
	lut := make([]float64, length)
	if length < 2 {
		return lut
	}

	increment := 1.0 / float64(length/2)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	return lut
}

// GenerateRamp builds a look-up table that eases from 0 up to exactly 1.
func GenerateRamp(length int) []float64 {
	lut := make([]float64, length)
	if length == 0 {
		return lut
	}

	for i := 0; i < length-1; i++ {
		lut[i] = ease.InOutQuad(float64(i) / float64(length-1))
	}
	lut[length-1] = 1
	return lut
}

// Memoizer caches generated tables by length.
type Memoizer map[int][]float64

func GenerateLutMemoized(length int, memoizer Memoizer) []float64 {
	if lut, ok := memoizer[length]; ok {
		return lut
	}

	lut := GenerateLut(length)
	memoizer[length] = lut
	return lut
}
