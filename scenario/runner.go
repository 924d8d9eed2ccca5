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
	"fmt"
	"time"

	"github.com/gorse-io/collection/base"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Result is the outcome of one scenario.
type Result struct {
	Name     string
	Passed   bool
	Err      error
	Duration time.Duration
}

// Runner runs scenarios one after another, each on a fresh fixture.
type Runner struct {
	rng    base.RandomGenerator
	logger *zap.Logger
	onDone func(Result)
}

// NewRunner creates a runner. The generator is shared by every fixture of the run.
func NewRunner(rng base.RandomGenerator, logger *zap.Logger) *Runner {
	return &Runner{rng: rng, logger: logger}
}

// OnDone registers a callback invoked after each scenario.
func (r *Runner) OnDone(fn func(Result)) {
	r.onDone = fn
}

// Run runs scenarios until all are done or ctx is canceled. Results of
// finished scenarios are returned in both cases.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) ([]Result, error) {
	results := make([]Result, 0, len(scenarios))
	for _, s := range scenarios {
		if err := ctx.Err(); err != nil {
			return results, errors.Trace(err)
		}
		result := r.runOne(s)
		if result.Passed {
			r.logger.Debug("scenario passed", zap.String("name", result.Name), zap.Duration("duration", result.Duration))
		} else {
			r.logger.Warn("scenario failed", zap.String("name", result.Name), zap.Error(result.Err))
		}
		results = append(results, result)
		if r.onDone != nil {
			r.onDone(result)
		}
	}
	return results, nil
}

func (r *Runner) runOne(s Scenario) (result Result) {
	fixture := NewFixture(r.rng)
	check := &Check{}
	start := time.Now()
	fixture.SetUp()
	defer func() {
		if p := recover(); p != nil {
			if _, ok := p.(failNow); !ok {
				check.Expectf(false, "panic: %v", p)
			}
		}
		fixture.TearDown()
		result = Result{
			Name:     s.Name,
			Passed:   !check.Failed(),
			Err:      check.Err(),
			Duration: time.Since(start),
		}
	}()
	s.Run(check, fixture)
	return
}

// Summarize counts passed and failed results.
func Summarize(results []Result) (passed, failed int) {
	passed = lo.CountBy(results, func(r Result) bool {
		return r.Passed
	})
	return passed, len(results) - passed
}

func (r Result) Status() string {
	if r.Passed {
		return "PASS"
	}
	return "FAIL"
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s %s (%v): %v", r.Status(), r.Name, r.Duration, r.Err)
	}
	return fmt.Sprintf("%s %s (%v)", r.Status(), r.Name, r.Duration)
}
