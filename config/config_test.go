// Copyright 2021 gorse Project Authors
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/juju/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.Int64("seed", 0, "")
	flagSet.StringSlice("include", nil, "")
	flagSet.StringSlice("exclude", nil, "")
	flagSet.Bool("with-failing", false, "")
	flagSet.String("output", OutputTable, "")
	return flagSet
}

func TestLoadDefaultConfig(t *testing.T) {
	conf, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), conf)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
seed = 42
include = ["IsEmptyOnCreate", "ClearErasesCollection"]
with_failing = true
output = "plain"
`), 0644))
	conf, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), conf.Seed)
	assert.Equal(t, []string{"IsEmptyOnCreate", "ClearErasesCollection"}, conf.Include)
	assert.Empty(t, conf.Exclude)
	assert.True(t, conf.WithFailing)
	assert.Equal(t, OutputPlain, conf.Output)
}

func TestLoadConfigPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
seed = 42
output = "plain"
`), 0644))
	t.Setenv("COLLECTION_SEED", "7")
	t.Setenv("COLLECTION_EXCLUDE", "AlwaysFail, IsEmptyOnCreate")

	flagSet := newFlagSet()
	require.NoError(t, flagSet.Parse([]string{"--output", "table"}))
	conf, err := LoadConfig(path, flagSet)
	require.NoError(t, err)
	// environment overrides file
	assert.Equal(t, int64(7), conf.Seed)
	assert.Equal(t, []string{"AlwaysFail", "IsEmptyOnCreate"}, conf.Exclude)
	// changed flag overrides file
	assert.Equal(t, OutputTable, conf.Output)
}

func TestLoadInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
output = "html"
include = ["not a name"]
`), 0644))
	_, err := LoadConfig(path, nil)
	assert.True(t, errors.Is(err, errors.NotValid))
	assert.ErrorContains(t, err, "Output must be one of [table plain]")
	assert.ErrorContains(t, err, "alphanumeric")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), nil)
	assert.Error(t, err)
}
