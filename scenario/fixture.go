// Copyright 2026 gorse Project Authors
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

package scenario

import (
	"github.com/gorse-io/collection/base"
	"github.com/gorse-io/collection/base/vector"
	"github.com/juju/errors"
)

// Fixture owns the collection a scenario works on.
type Fixture struct {
	rng        base.RandomGenerator
	collection *vector.Vector[int]
}

func NewFixture(rng base.RandomGenerator) *Fixture {
	return &Fixture{rng: rng}
}

// SetUp allocates an empty collection.
func (f *Fixture) SetUp() {
	f.collection = vector.New[int]()
}

// TearDown clears and releases the collection.
func (f *Fixture) TearDown() {
	if f.collection != nil {
		f.collection.Clear()
	}
	f.collection = nil
}

func (f *Fixture) Collection() *vector.Vector[int] {
	return f.collection
}

// AddEntries appends count random values in [0, 100).
func (f *Fixture) AddEntries(count int) error {
	if count <= 0 {
		return errors.NotValidf("entry count %d", count)
	}
	if f.collection == nil {
		return errors.New("fixture is not set up")
	}
	for i := 0; i < count; i++ {
		f.collection.PushBack(base.UniformInt(f.rng, 0, 100))
	}
	return nil
}
