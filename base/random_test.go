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
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestRandomGenerator_UniformInts(t *testing.T) {
	rng := NewRandomGenerator(0)
	values := UniformInts(rng, 5000, 0, 100)
	assert.Len(t, values, 5000)
	assert.GreaterOrEqual(t, lo.Min(values), 0)
	assert.Less(t, lo.Max(values), 100)
	// all buckets should be hit with 5000 draws
	assert.Len(t, lo.Uniq(values), 100)
}

func TestRandomGenerator_UniformIntOffset(t *testing.T) {
	rng := NewTimeSeededGenerator()
	for i := 0; i < 100; i++ {
		v := UniformInt[int8](rng, -5, 5)
		assert.GreaterOrEqual(t, v, int8(-5))
		assert.Less(t, v, int8(5))
	}
}

func TestRandomGenerator_Deterministic(t *testing.T) {
	a := UniformInts(NewRandomGenerator(42), 10, 0, 100)
	b := UniformInts(NewRandomGenerator(42), 10, 0, 100)
	assert.Equal(t, a, b)
}
