// Copyright © 2016 Nicholas Ng <nickng@projectfate.org>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zixu-w/DPP/dining"
	"github.com/zixu-w/DPP/display"
	"github.com/zixu-w/DPP/fairness"
	"github.com/zixu-w/DPP/logwriter"
	"github.com/zixu-w/DPP/model"
)

var (
	cfgFile   string // Path to config file
	logFile   string // Path to log file
	noLogging bool   // Turn off logging
	noColour  bool   // Turn of colour output

	// processStart is the origin of the run duration.
	processStart = time.Now()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dpp N seed duration",
	Short: "Dining philosophers simulation",
	Long: `dpp runs N philosophers around a table of N forks

Philosophers think and eat for random periods and take their forks lower
numbered first, so the table never deadlocks. The table state is printed
every interval, and the run is terminated duration seconds after the
process started.

Use "dpp [command] N" to print static models of a table instead.`,
	Args: func(cmd *cobra.Command, args []string) error {
		_, err := parseRunArgs(args)
		return err
	},
	RunE: runTable,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dpp.yaml)")
	RootCmd.PersistentFlags().StringVar(&logFile, "log", "", "path to log file (default is stdout)")
	RootCmd.PersistentFlags().BoolVar(&noLogging, "no-logging", false, "disable logging")
	RootCmd.PersistentFlags().BoolVar(&noColour, "no-colour", false, "disable colour output")

	RootCmd.Flags().Duration("min-sleep", dining.DefaultMinSleep, "shortest think or eat period")
	RootCmd.Flags().Duration("max-sleep", dining.DefaultMaxSleep, "longest think or eat period")
	RootCmd.Flags().Duration("interval", dining.DefaultInterval, "table print interval")
	RootCmd.Flags().String("metrics-file", "", "write run metrics to this file in Prometheus text format")
	RootCmd.Flags().Bool("fairness", false, "report starved philosophers after the run")
	RootCmd.Flags().String("dot", "", "write the final table as a Graphviz dot file")
	for _, key := range []string{"min-sleep", "max-sleep", "interval", "metrics-file", "fairness", "dot"} {
		if err := viper.BindPFlag(key, RootCmd.Flags().Lookup(key)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" { // enable ability to specify config file via flag
		viper.SetConfigFile(cfgFile)
	}

	viper.SetConfigName(".dpp")  // name of config file (without extension)
	viper.AddConfigPath("$HOME") // adding home directory as first search path
	viper.SetEnvPrefix("dpp")    // DPP_MAX_SLEEP etc.
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runTable(cmd *cobra.Command, args []string) error {
	ra, err := parseRunArgs(args)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	l := logwriter.NewFile(logFile, !noLogging, !noColour)
	if logFile == "" {
		l = logwriter.New(out, !noLogging, !noColour)
	}
	if err := l.Create(); err != nil {
		return err
	}
	defer l.Cleanup()
	logger := l.Logger("dpp: ")

	conf := dining.DefaultConfig()
	conf.MinSleep = viper.GetDuration("min-sleep")
	conf.MaxSleep = viper.GetDuration("max-sleep")
	conf.Interval = viper.GetDuration("interval")
	conf.Reporter = display.New(out)
	conf.Log = l
	metricsFile := viper.GetString("metrics-file")
	if metricsFile != "" {
		conf.Metrics = dining.NewMetrics()
	}

	tbl, err := dining.New(ra.n, ra.seed, conf)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	deadline := processStart.Add(ra.duration)
	logger.Printf("running %d philosophers until %s", ra.n, deadline.Format(time.RFC3339))
	if err := tbl.RunFor(ctx, deadline); err != nil {
		return err
	}
	elapsed := time.Since(processStart)

	snap := tbl.Snapshot()
	if _, err := io.WriteString(out, display.Format(snap)); err != nil {
		return err
	}
	printSummary(out, snap, elapsed)

	if viper.GetBool("fairness") {
		fairness.Check(snap, out)
	}
	if path := viper.GetString("dot"); path != "" {
		dot, err := model.NewSnapshot(snap)
		if err != nil {
			return err
		}
		if err := writeTo(path, out, dot); err != nil {
			return err
		}
		logger.Printf("table graph written to %s", path)
	}
	if metricsFile != "" {
		if err := conf.Metrics.WriteToTextfile(metricsFile); err != nil {
			return err
		}
		logger.Printf("metrics written to %s", metricsFile)
	}
	return nil
}

func printSummary(w io.Writer, snap dining.Snapshot, elapsed time.Duration) {
	total := snap.TotalMeals()
	rate := 0.0
	if secs := elapsed.Seconds(); secs > 0 {
		rate = float64(total) / secs
	}
	fmt.Fprintf(w, "%s meals by %d philosophers in %v (%s meals/s)\n",
		humanize.Comma(int64(total)), len(snap.States),
		elapsed.Round(time.Millisecond), humanize.FormatFloat("#,###.##", rate))
}

// writeTo writes w to path, or to out if path is empty.
func writeTo(path string, out io.Writer, w io.WriterTo) error {
	if path == "" {
		_, err := w.WriteTo(out)
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = w.WriteTo(f)
	return err
}
