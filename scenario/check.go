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
	"fmt"
	"strings"

	"github.com/juju/errors"
)

// failNow unwinds a scenario after a failed requirement.
type failNow struct{}

// Check records the failures of one scenario.
type Check struct {
	failures []string
}

// Expectf records a failure when ok is false and lets the scenario go on.
func (c *Check) Expectf(ok bool, format string, args ...any) bool {
	if !ok {
		c.failures = append(c.failures, fmt.Sprintf(format, args...))
	}
	return ok
}

// Requiref records a failure when ok is false and stops the scenario.
func (c *Check) Requiref(ok bool, format string, args ...any) {
	if !c.Expectf(ok, format, args...) {
		panic(failNow{})
	}
}

// NoError stops the scenario when err is not nil.
func (c *Check) NoError(err error) {
	c.Requiref(err == nil, "unexpected error: %v", err)
}

// Fail stops the scenario unconditionally.
func (c *Check) Fail(msg string) {
	c.Requiref(false, "%s", msg)
}

func (c *Check) Failed() bool {
	return len(c.failures) > 0
}

func (c *Check) Err() error {
	if len(c.failures) == 0 {
		return nil
	}
	return errors.New(strings.Join(c.failures, "; "))
}
