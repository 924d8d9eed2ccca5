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
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gorse-io/collection/base/vector"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

// AlwaysFail is the scenario used to demonstrate failure reporting.
const AlwaysFail = "AlwaysFail"

// Scenario is one documented behavior of the collection.
type Scenario struct {
	Name        string
	Description string
	Run         func(c *Check, f *Fixture)
}

// Catalog returns every scenario in the order they are run.
func Catalog() []Scenario {
	return []Scenario{
		{
			Name:        "CollectionSmartPointerIsNotNull",
			Description: "the fixture creates a collection with backing storage",
			Run: func(c *Check, f *Fixture) {
				c.Requiref(f.Collection() != nil, "collection is nil")
				c.Requiref(f.Collection().Data() != nil, "backing storage is nil")
			},
		},
		{
			Name:        "IsEmptyOnCreate",
			Description: "a new collection is empty",
			Run: func(c *Check, f *Fixture) {
				c.Requiref(f.Collection().Empty(), "collection is not empty")
				c.Requiref(f.Collection().Len() == 0, "size is %d, want 0", f.Collection().Len())
			},
		},
		{
			Name:        AlwaysFail,
			Description: "fails unconditionally to show how failures are reported",
			Run: func(c *Check, f *Fixture) {
				c.Fail("this scenario always fails")
			},
		},
		{
			Name:        "CanAddToEmptyVector",
			Description: "adding one value to an empty collection",
			Run: func(c *Check, f *Fixture) {
				c.Requiref(f.Collection().Empty(), "collection is not empty")
				c.NoError(f.AddEntries(1))
				c.Expectf(!f.Collection().Empty(), "collection is empty")
				c.Expectf(f.Collection().Len() == 1, "size is %d, want 1", f.Collection().Len())
			},
		},
		{
			Name:        "CanAddFiveValuesToVector",
			Description: "adding five values to the collection",
			Run: func(c *Check, f *Fixture) {
				c.NoError(f.AddEntries(5))
				c.Expectf(f.Collection().Len() == 5, "size is %d, want 5", f.Collection().Len())
			},
		},
		{
			Name:        "MaxSizeGreaterThanOrEqualToSize",
			Description: "max size is at least size for 0, 1, 5 and 10 entries",
			Run: func(c *Check, f *Fixture) {
				checkAtSizes(c, f, func(v *vector.Vector[int]) bool { return v.MaxSize() >= v.Len() }, "max size")
			},
		},
		{
			Name:        "CapacityGreaterThanOrEqualToSize",
			Description: "capacity is at least size for 0, 1, 5 and 10 entries",
			Run: func(c *Check, f *Fixture) {
				checkAtSizes(c, f, func(v *vector.Vector[int]) bool { return v.Cap() >= v.Len() }, "capacity")
			},
		},
		{
			Name:        "ResizeIncreasesCollection",
			Description: "resizing up appends elements and keeps the old ones",
			Run: func(c *Check, f *Fixture) {
				c.NoError(f.AddEntries(5))
				original := f.Collection().Clone()
				c.NoError(f.Collection().Resize(original.Len() + 3))
				c.Expectf(f.Collection().Len() == original.Len()+3, "size is %d, want %d", f.Collection().Len(), original.Len()+3)
				c.Expectf(slices.Equal(original.Data(), f.Collection().Data()[:original.Len()]), "prefix changed")
			},
		},
		{
			Name:        "ResizeDecreasesCollection",
			Description: "resizing down truncates from the tail",
			Run: func(c *Check, f *Fixture) {
				c.NoError(f.AddEntries(8))
				original := f.Collection().Clone()
				c.NoError(f.Collection().Resize(original.Len() - 3))
				c.Expectf(f.Collection().Len() == original.Len()-3, "size is %d, want %d", f.Collection().Len(), original.Len()-3)
				c.Expectf(slices.Equal(original.Data()[:5], f.Collection().Data()), "prefix changed")
			},
		},
		{
			Name:        "ResizeDecreasesToZero",
			Description: "resizing to zero empties the collection",
			Run: func(c *Check, f *Fixture) {
				c.NoError(f.AddEntries(5))
				c.NoError(f.Collection().Resize(0))
				c.Expectf(f.Collection().Empty(), "collection is not empty")
				c.Expectf(f.Collection().Len() == 0, "size is %d, want 0", f.Collection().Len())
			},
		},
		{
			Name:        "ClearErasesCollection",
			Description: "clear empties the collection and keeps its capacity",
			Run: func(c *Check, f *Fixture) {
				c.NoError(f.AddEntries(10))
				capacity := f.Collection().Cap()
				f.Collection().Clear()
				c.Expectf(f.Collection().Empty(), "collection is not empty")
				c.Expectf(f.Collection().Len() == 0, "size is %d, want 0", f.Collection().Len())
				c.Expectf(f.Collection().Cap() == capacity, "capacity is %d, want %d", f.Collection().Cap(), capacity)
			},
		},
		{
			Name:        "EraseBeginToEnd",
			Description: "erasing the full range empties the collection",
			Run: func(c *Check, f *Fixture) {
				c.NoError(f.AddEntries(5))
				c.NoError(f.Collection().Erase(0, f.Collection().Len()))
				c.Expectf(f.Collection().Empty(), "collection is not empty")
				c.Expectf(f.Collection().Len() == 0, "size is %d, want 0", f.Collection().Len())
			},
		},
		{
			Name:        "ReserveIncreasesCapacity",
			Description: "reserve grows the capacity but not the size",
			Run: func(c *Check, f *Fixture) {
				c.NoError(f.AddEntries(5))
				capacity, size := f.Collection().Cap(), f.Collection().Len()
				c.NoError(f.Collection().Reserve(capacity + 10))
				c.Expectf(f.Collection().Len() == size, "size is %d, want %d", f.Collection().Len(), size)
				c.Expectf(f.Collection().Cap() > capacity, "capacity is %d, want more than %d", f.Collection().Cap(), capacity)
			},
		},
		{
			Name:        "AccessOutOfRange",
			Description: "bounds-checked access past the end returns a range error",
			Run: func(c *Check, f *Fixture) {
				c.NoError(f.AddEntries(5))
				_, err := f.Collection().At(10)
				c.Requiref(err != nil, "no error for index 10 of %d", f.Collection().Len())
				c.Expectf(vector.IsOutOfRange(err), "unexpected error: %v", err)
			},
		},
		{
			Name:        "SizeEqualsNumberOfAddedElements",
			Description: "size matches the number of added values",
			Run: func(c *Check, f *Fixture) {
				c.NoError(f.AddEntries(7))
				c.Expectf(f.Collection().Len() == 7, "size is %d, want 7", f.Collection().Len())
			},
		},
		{
			Name:        "CannotAddNegativeNumberOfElements",
			Description: "a negative entry count is rejected and leaves the collection empty",
			Run: func(c *Check, f *Fixture) {
				err := f.AddEntries(-5)
				c.Expectf(errors.Is(err, errors.NotValid), "unexpected error: %v", err)
				c.Expectf(f.Collection().Empty(), "collection is not empty")
				c.Expectf(f.Collection().Len() == 0, "size is %d, want 0", f.Collection().Len())
			},
		},
	}
}

func checkAtSizes(c *Check, f *Fixture, holds func(v *vector.Vector[int]) bool, what string) {
	c.Requiref(holds(f.Collection()), "%s is less than size %d", what, f.Collection().Len())
	for _, count := range []int{1, 5, 10} {
		c.NoError(f.AddEntries(count))
		c.Requiref(holds(f.Collection()), "%s is less than size %d", what, f.Collection().Len())
	}
}

// Names returns the names of scenarios.
func Names(scenarios []Scenario) []string {
	return lo.Map(scenarios, func(s Scenario, _ int) string {
		return s.Name
	})
}

// Select filters the catalog. An empty include list selects every scenario
// except AlwaysFail, which is only run when named or when withFailing is set.
func Select(catalog []Scenario, include, exclude []string, withFailing bool) ([]Scenario, error) {
	known := mapset.NewSet(Names(catalog)...)
	includeSet := mapset.NewSet(include...)
	excludeSet := mapset.NewSet(exclude...)
	if unknown := includeSet.Union(excludeSet).Difference(known); unknown.Cardinality() > 0 {
		names := unknown.ToSlice()
		slices.Sort(names)
		return nil, errors.NotFoundf("scenarios %v", names)
	}
	return lo.Filter(catalog, func(s Scenario, _ int) bool {
		if excludeSet.Contains(s.Name) {
			return false
		}
		if includeSet.Cardinality() > 0 {
			return includeSet.Contains(s.Name)
		}
		return withFailing || s.Name != AlwaysFail
	}), nil
}
