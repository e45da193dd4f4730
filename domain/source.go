package domain

import (
	"math/rand/v2"

	"github.com/bxcodec/faker/v4"
)

// NameSource supplies given and family names for generated employees.
type NameSource interface {
	FirstName() string
	LastName() string
}

// Picker chooses one value uniformly from a non-empty list.
type Picker interface {
	Pick(values []string) string
}

// FakerNames draws names from faker's built-in name lists.
type FakerNames struct{}

func (FakerNames) FirstName() string { return faker.FirstName() }

func (FakerNames) LastName() string { return faker.LastName() }

// RandPicker picks with a per-instance random source.
type RandPicker struct {
	rand *rand.Rand
}

// NewRandPicker wraps r. A nil r gets a PCG source seeded from the global generator,
// so two runs sample differently.
func NewRandPicker(r *rand.Rand) *RandPicker {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandPicker{rand: r}
}

// NewSeededPicker returns a picker whose sequence depends only on seed.
func NewSeededPicker(seed uint64) *RandPicker {
	return NewRandPicker(rand.New(rand.NewPCG(seed, seed)))
}

func (p *RandPicker) Pick(values []string) string {
	return values[p.rand.IntN(len(values))]
}
