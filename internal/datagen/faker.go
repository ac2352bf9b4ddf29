//-------------------------------------------------------------------------
//
// retailgen - synthetic retail dataset generator
//
// Copyright (c) 2025 - 2026
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides the seeded random stream and sampling
// utilities shared by all generators.
package datagen

import (
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker is a seeded random stream. Every generator in a run consumes a
// Faker sequentially; construct one per run (or one per deterministic
// sub-stream) rather than re-seeding mid-run.
type Faker struct {
	faker *gofakeit.Faker
}

// New creates a Faker with the given seed. Equal seeds produce equal
// draw sequences.
func New(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
	}
}

// Int returns a random integer in [min, max] inclusive.
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Float64 returns a random float64 in [min, max).
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Float returns a random float64 in [0, 1).
func (f *Faker) Float() float64 {
	return f.faker.Float64Range(0, 1)
}

// Gauss returns a normally distributed value with the given mean and
// standard deviation, via a Box-Muller transform over two uniform draws.
func (f *Faker) Gauss(mean, stddev float64) float64 {
	u1 := f.Float()
	for u1 <= 1e-12 {
		u1 = f.Float()
	}
	u2 := f.Float()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stddev*z
}

// SkewedIndex returns an index in [0, n-1] biased toward low values.
// The skew parameter s controls concentration; ~1.0-1.3 is a mild
// popular-items bias. The mapping is floor(r^(1/(1+s)) * n) for uniform
// r in [0,1), clamped to n-1.
func (f *Faker) SkewedIndex(n int, s float64) int {
	r := f.Float()
	idx := int(math.Pow(r, 1.0/(1.0+s)) * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// Perm returns a random permutation of [0, n) drawn from this stream.
func (f *Faker) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := f.faker.IntRange(0, i)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

const upperAlnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// UpperAlnum returns a random string of n uppercase letters and digits.
func (f *Faker) UpperAlnum(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = upperAlnum[f.faker.IntRange(0, len(upperAlnum)-1)]
	}
	return string(b)
}

// Letters returns a random string of n letters.
func (f *Faker) Letters(n int) string {
	return f.faker.LetterN(uint(n))
}

// Digits returns a random string of n digits.
func (f *Faker) Digits(n int) string {
	return f.faker.DigitN(uint(n))
}

// Date returns a random time in [start, end].
func (f *Faker) Date(start, end time.Time) time.Time {
	return f.faker.DateRange(start, end)
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}

// ChooseWeighted returns a random element based on integer weights.
func ChooseWeighted[T any](f *Faker, items []T, weights []int) T {
	if len(items) == 0 || len(weights) == 0 {
		var zero T
		return zero
	}

	totalWeight := 0
	for _, w := range weights {
		totalWeight += w
	}

	r := f.Int(1, totalWeight)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return items[i]
		}
	}

	return items[len(items)-1]
}
