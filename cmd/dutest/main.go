// Command dutest prints sample values through debugutils, the way the
// package is meant to be used. Build it with -tags debugutils to see the
// debug output; without the tag only the banner and the plain prints appear.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bjaus/debugutils"
	"github.com/bjaus/debugutils/queue"
)

// Config holds the command-line options.
type Config struct {
	LogPrefix string // redirect debug output to <prefix>_<timestamp>.log; empty keeps stderr
	Values    string // YAML file whose top-level keys are debug-printed
}

func main() {
	var cfg Config
	rootCmd := &cobra.Command{
		Use:   "dutest",
		Short: "Print sample values through debugutils",
		Long: `dutest exercises debugutils with strings, maps, pairs, nested slices,
stacks and tuples. Debug output only appears in binaries built with
-tags debugutils.`,
		Example: `  go run -tags debugutils ./cmd/dutest
  go run -tags debugutils ./cmd/dutest --log ""            # keep output on stderr
  go run -tags debugutils ./cmd/dutest --values data.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), &cfg)
		},
	}
	rootCmd.Flags().StringVar(&cfg.LogPrefix, "log", "Test_Log", "Redirect debug output to <prefix>_<YYYYMMDD_HHMMSS>.log (empty keeps stderr)")
	rootCmd.Flags().StringVar(&cfg.Values, "values", "", "YAML file whose top-level keys are debug-printed")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func mode() string {
	if debugutils.Enabled {
		return "ON"
	}
	return "OFF"
}

func run(w io.Writer, cfg *Config) (err error) {
	fmt.Fprintln(w, "Hello from DUTest!")
	fmt.Fprintf(w, "Go version is %s\n", runtime.Version())
	fmt.Fprintf(w, "DebugUtils is %s\n", mode())

	if cfg.LogPrefix != "" && debugutils.Enabled {
		l := debugutils.LogToFile(cfg.LogPrefix)
		if lerr := l.Err(); lerr != nil {
			slog.Warn("debug output stays on stderr", "err", lerr)
		} else {
			slog.Info("debug output redirected", "file", l.Path())
		}
		defer func() {
			if cerr := l.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close debug log: %w", cerr)
			}
		}()
	}

	ex1 := "Test string"
	ex2 := map[int]string{1: "one", 2: "two", 3: "three", 4: "four"}
	ex3 := debugutils.MakePair(18, 2.71828)
	ex4 := [][]int{
		{11, 12, 13},
		{21, 22, 23},
		{31, 32, 33},
	}

	fmt.Fprintln(w, "ex1:", ex1)
	fmt.Fprintln(w, "ex2[3]:", ex2[3])
	fmt.Fprintln(w, "ex3.Second:", ex3.Second)
	fmt.Fprintln(w, "ex4[1][1]:", ex4[1][1])

	debugutils.V(debugutils.Raw("This is a debug message"))
	debugutils.V(ex1)
	debugutils.V(ex2)
	debugutils.V(ex3)
	debugutils.V(ex4)
	debugutils.V(ex1, ex3)

	var v []int
	for i := 1; i <= 3; i++ {
		v = append(v, i*i)
		debugutils.V(i, v)
	}
	debugutils.V(v)
	debugutils.Arr(v, 2)

	stack := queue.NewStack(v...)
	debugutils.V(stack, debugutils.Tup(ex1, ex3.First, true))

	if cfg.Values != "" {
		entries, lerr := loadValues(cfg.Values)
		if lerr != nil {
			return fmt.Errorf("load values: %w", lerr)
		}
		slog.Info("printing values", "file", cfg.Values, "count", len(entries))
		for _, e := range entries {
			debugutils.Printer(cfg.Values, e.Line, e.Key, e.Value)
		}
	}

	debugutils.M("Test/demo is complete")

	fmt.Fprintln(w, "v[1]:", v[1])
	return nil
}
