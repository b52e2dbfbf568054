// Package simtest provides test-support helpers for comparing two
// circuits (or two sub-circuits sharing inputs) that are expected to
// implement the same truth table.
package simtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/circuitlab/gatesim"
)

func randBool() bool {
	return rand.Int63()&(1<<62) != 0
}

// maxBits is the exhaustive/random testing cutoff: up to and including it
// every combination of the input pins is tried; above it, a fixed number
// of random combinations is sampled instead.
const maxBits = 12

// ComparePins drives inputs on c with every (or, beyond maxBits inputs, a
// random sample of) combination of boolean values, running simulate(-1)
// after each write, and fails the test if the corresponding pins of a and
// b ever disagree. a and b must have equal length.
//
// Compares pin sets on a single prepared circuit rather than two
// independently wired parts.
func ComparePins(t *testing.T, c *gatesim.Circuit, inputs []gatesim.Pin, a, b []gatesim.Pin) {
	t.Helper()

	if len(a) != len(b) {
		t.Fatalf("simtest: output sets differ in length: %d vs %d", len(a), len(b))
	}

	check := func(combo []bool) {
		for i, p := range inputs {
			p.SetValue(combo[i])
		}
		c.Simulate(-1)
		for i := range a {
			av, bv := a[i].GetValue(), b[i].GetValue()
			if av != bv {
				t.Fatalf("mismatch at output %d for inputs %s: a=%v, b=%v", i, comboString(inputs, combo), av, bv)
			}
		}
	}

	n := len(inputs)
	if n <= maxBits {
		total := 1 << uint(n)
		for i := 0; i < total; i++ {
			combo := make([]bool, n)
			for j := range combo {
				combo[j] = i&(1<<uint(j)) != 0
			}
			check(combo)
		}
		return
	}

	const randomSamples = 1 << maxBits
	for i := 0; i < randomSamples; i++ {
		combo := make([]bool, n)
		for j := range combo {
			combo[j] = randBool()
		}
		check(combo)
	}
}

func comboString(inputs []gatesim.Pin, combo []bool) string {
	var b strings.Builder
	for i := range inputs {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%v", combo[i])
	}
	return b.String()
}
