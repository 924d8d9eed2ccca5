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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/gorse-io/collection/base"
	"github.com/gorse-io/collection/base/log"
	"github.com/gorse-io/collection/cmd/version"
	"github.com/gorse-io/collection/config"
	"github.com/gorse-io/collection/scenario"
	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "collection",
		Short:         "Check the documented behaviors of the dynamic array.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug, _ := cmd.Flags().GetBool("debug")
			log.SetLogger(cmd.Flags(), debug)
		},
	}
	log.AddFlags(rootCommand.PersistentFlags())
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	rootCommand.PersistentFlags().StringP("config", "c", "", "configuration file path")
	rootCommand.AddCommand(newRunCommand(), newListCommand(), newVersionCommand())
	return rootCommand
}

func newRunCommand() *cobra.Command {
	runCommand := &cobra.Command{
		Use:   "run",
		Short: "Run scenarios, each on a fresh collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			conf, err := config.LoadConfig(configPath, cmd.Flags())
			if err != nil {
				return errors.Trace(err)
			}
			return runScenarios(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), conf)
		},
	}
	runCommand.Flags().Int64("seed", 0, "seed of the random generator (0 seeds from the clock)")
	runCommand.Flags().StringSlice("include", nil, "run only these scenarios")
	runCommand.Flags().StringSlice("exclude", nil, "skip these scenarios")
	runCommand.Flags().Bool("with-failing", false, "also run the scenario that always fails")
	runCommand.Flags().StringP("output", "o", config.OutputTable, "output format (table, plain)")
	return runCommand
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Scenario", "Description")
			for _, s := range scenario.Catalog() {
				if err := table.Append([]string{s.Name, s.Description}); err != nil {
					return errors.Trace(err)
				}
			}
			return errors.Trace(table.Render())
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.BuildInfo())
		},
	}
}

func runScenarios(ctx context.Context, stdout, stderr io.Writer, conf *config.Config) error {
	scenarios, err := scenario.Select(scenario.Catalog(), conf.Include, conf.Exclude, conf.WithFailing)
	if err != nil {
		return errors.Trace(err)
	}
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := log.Logger().With(zap.String("run_id", uuid.NewString()))
	logger.Info("start scenarios", zap.Int64("seed", seed), zap.Int("count", len(scenarios)))

	runner := scenario.NewRunner(base.NewRandomGenerator(seed), logger)
	bar := progressbar.NewOptions(len(scenarios),
		progressbar.OptionSetWriter(stderr),
		progressbar.OptionSetDescription("Running scenarios"),
		progressbar.OptionClearOnFinish())
	runner.OnDone(func(scenario.Result) {
		_ = bar.Add(1)
	})
	results, runErr := runner.Run(ctx, scenarios)
	_ = bar.Finish()

	if err = printResults(stdout, conf.Output, results); err != nil {
		return errors.Trace(err)
	}
	if runErr != nil {
		return errors.Annotate(runErr, "scenarios interrupted")
	}
	passed, failed := scenario.Summarize(results)
	logger.Info("finish scenarios", zap.Int("passed", passed), zap.Int("failed", failed))
	if failed > 0 {
		return errors.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}

func printResults(w io.Writer, output string, results []scenario.Result) error {
	if output == config.OutputPlain {
		for _, result := range results {
			if _, err := fmt.Fprintln(w, result.String()); err != nil {
				return errors.Trace(err)
			}
		}
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.Header("Scenario", "Result", "Duration", "Error")
	for _, result := range results {
		var message string
		if result.Err != nil {
			message = result.Err.Error()
		}
		if err := table.Append([]string{result.Name, result.Status(), result.Duration.String(), message}); err != nil {
			return errors.Trace(err)
		}
	}
	return errors.Trace(table.Render())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
