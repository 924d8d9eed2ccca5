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

package main

import (
	"bytes"
	"testing"

	"github.com/gorse-io/collection/base/log"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Cleanup(log.CloseLogger)
	var stdout, stderr bytes.Buffer
	rootCommand := newRootCommand()
	rootCommand.SetArgs(args)
	rootCommand.SetOut(&stdout)
	rootCommand.SetErr(&stderr)
	err := rootCommand.Execute()
	return stdout.String(), err
}

func TestListCommand(t *testing.T) {
	output, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, output, "ReserveIncreasesCapacity")
	assert.Contains(t, output, "AlwaysFail")
}

func TestRunCommand(t *testing.T) {
	output, err := execute(t, "run", "--seed", "1", "--output", "plain")
	require.NoError(t, err)
	assert.Contains(t, output, "PASS IsEmptyOnCreate")
	assert.Contains(t, output, "PASS AccessOutOfRange")
	assert.NotContains(t, output, "AlwaysFail")
	assert.NotContains(t, output, "FAIL")
}

func TestRunCommandWithFailure(t *testing.T) {
	output, err := execute(t, "run", "--include", "AlwaysFail,IsEmptyOnCreate")
	assert.EqualError(t, err, "1 of 2 scenarios failed")
	assert.Contains(t, output, "FAIL")
	assert.Contains(t, output, "this scenario always fails")
}

func TestRunCommandUnknownScenario(t *testing.T) {
	_, err := execute(t, "run", "--exclude", "Unknown")
	assert.True(t, errors.Is(err, errors.NotFound))
}

func TestRunCommandInvalidOutput(t *testing.T) {
	_, err := execute(t, "run", "--output", "html")
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestVersionCommand(t *testing.T) {
	output, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "Version:")
}
