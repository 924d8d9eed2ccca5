// Copyright 2020 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package base

import (
	"math/rand"
	"time"

	"golang.org/x/exp/constraints"
)

// RandomGenerator is the pseudo-random generator shared by a test run.
type RandomGenerator struct {
	*rand.Rand
}

// NewRandomGenerator creates a RandomGenerator.
func NewRandomGenerator(seed int64) RandomGenerator {
	return RandomGenerator{rand.New(rand.NewSource(seed))}
}

// NewTimeSeededGenerator creates a RandomGenerator seeded from the wall clock.
func NewTimeSeededGenerator() RandomGenerator {
	return NewRandomGenerator(time.Now().UnixNano())
}

// UniformInt returns a value in [low, high).
func UniformInt[T constraints.Integer](rng RandomGenerator, low, high T) T {
	return low + T(rng.Int63n(int64(high-low)))
}

// UniformInts makes a slice of n values in [low, high).
func UniformInts[T constraints.Integer](rng RandomGenerator, n int, low, high T) []T {
	ret := make([]T, n)
	for i := range ret {
		ret[i] = UniformInt(rng, low, high)
	}
	return ret
}
