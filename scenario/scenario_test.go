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
	"context"
	"testing"

	"github.com/gorse-io/collection/base"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRunner() *Runner {
	return NewRunner(base.NewRandomGenerator(0), zap.NewNop())
}

func TestCatalog(t *testing.T) {
	results, err := newTestRunner().Run(context.Background(), Catalog())
	require.NoError(t, err)
	require.Len(t, results, len(Catalog()))
	for _, result := range results {
		if result.Name == AlwaysFail {
			assert.False(t, result.Passed)
			assert.ErrorContains(t, result.Err, "always fails")
		} else {
			assert.True(t, result.Passed, result.String())
			assert.NoError(t, result.Err)
		}
	}
	passed, failed := Summarize(results)
	assert.Equal(t, len(results)-1, passed)
	assert.Equal(t, 1, failed)
}

func TestCatalogNamesAreUnique(t *testing.T) {
	names := Names(Catalog())
	assert.Equal(t, len(names), len(lo.Uniq(names)))
}

func TestSelect(t *testing.T) {
	catalog := Catalog()

	selected, err := Select(catalog, nil, nil, false)
	assert.NoError(t, err)
	assert.Len(t, selected, len(catalog)-1)
	assert.NotContains(t, Names(selected), AlwaysFail)

	selected, err = Select(catalog, nil, nil, true)
	assert.NoError(t, err)
	assert.Len(t, selected, len(catalog))

	selected, err = Select(catalog, []string{AlwaysFail, "IsEmptyOnCreate"}, nil, false)
	assert.NoError(t, err)
	assert.Equal(t, []string{"IsEmptyOnCreate", AlwaysFail}, Names(selected))

	selected, err = Select(catalog, nil, []string{"IsEmptyOnCreate"}, false)
	assert.NoError(t, err)
	assert.Len(t, selected, len(catalog)-2)

	_, err = Select(catalog, []string{"Unknown"}, []string{"Missing"}, false)
	assert.True(t, errors.Is(err, errors.NotFound))
	assert.ErrorContains(t, err, "[Missing Unknown]")
}

func TestRunnerRecoversPanic(t *testing.T) {
	var fixture *Fixture
	results, err := newTestRunner().Run(context.Background(), []Scenario{{
		Name: "Panics",
		Run: func(c *Check, f *Fixture) {
			fixture = f
			_ = f.Collection().Data()[3]
		},
	}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.ErrorContains(t, results[0].Err, "panic")
	// teardown ran
	assert.Nil(t, fixture.Collection())
}

func TestRunnerContinuesAfterExpect(t *testing.T) {
	var reached bool
	results, err := newTestRunner().Run(context.Background(), []Scenario{{
		Name: "Expects",
		Run: func(c *Check, f *Fixture) {
			c.Expectf(false, "first")
			c.Expectf(false, "second")
			reached = true
		},
	}})
	require.NoError(t, err)
	assert.True(t, reached)
	assert.EqualError(t, results[0].Err, "first; second")
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	runner := newTestRunner()
	var done []string
	runner.OnDone(func(result Result) {
		done = append(done, result.Name)
		cancel()
	})
	results, err := runner.Run(ctx, Catalog())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 1)
	assert.Equal(t, []string{"CollectionSmartPointerIsNotNull"}, done)
}

func TestFixtureAddEntries(t *testing.T) {
	fixture := NewFixture(base.NewRandomGenerator(0))
	assert.Error(t, fixture.AddEntries(1))
	fixture.SetUp()
	assert.True(t, errors.Is(fixture.AddEntries(0), errors.NotValid))
	assert.NoError(t, fixture.AddEntries(20))
	for _, value := range fixture.Collection().All() {
		assert.GreaterOrEqual(t, value, 0)
		assert.Less(t, value, 100)
	}
	fixture.TearDown()
	assert.Nil(t, fixture.Collection())
}
