package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/npillmayer/schuko/tracing"

	"github.com/zvk/vankampen/pkg/vankampen"
)

// rootCmd is the base command when vankampen is called without a
// subcommand, mirroring the teacher CLI's single persistent-flags-only
// root command.
var rootCmd = &cobra.Command{
	Use:   "vankampen",
	Short: "Compute a Van Kampen presentation of a plane curve complement's fundamental group",
	Long: `vankampen reconstructs a presentation of π₁(ℂ²−C) for a plane
algebraic curve C given as a bivariate polynomial in x and y, following
the Zariski-Van Kampen braid-monodromy method.`,
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.PersistentFlags().Bool("approx", false, "use the adaptive heuristic monodromy follower instead of the certified one")
	rootCmd.PersistentFlags().String("safety", "", "minimum certified root separation, as a decimal string (default 1e-30)")
	rootCmd.PersistentFlags().Int("neighbours", 0, "nearest-neighbour fan-out for the loop constructor (0: default)")
	rootCmd.PersistentFlags().Int("verbosity", 0, "trace verbosity: 0 silent, 1 per-segment progress, 2 per-step diagnostics")

	rootCmd.AddCommand(prepareCmd, segmentsCmd, finishCmd, runCmd)
}

// Execute adds all child commands to the root command and runs it.
// Called exactly once by main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitApp(2)
	}
}

func configFromFlags(cmd *cobra.Command) vankampen.Config {
	approx, _ := cmd.Flags().GetBool("approx")
	neighbours, _ := cmd.Flags().GetInt("neighbours")
	verbosity, _ := cmd.Flags().GetInt("verbosity")
	cfg := vankampen.Config{MonodromyApprox: approx, Neighbours: neighbours, Verbosity: verbosity}
	applyVerbosity(cfg.Verbosity)
	if s, _ := cmd.Flags().GetString("safety"); s != "" {
		if d, err := decimal.NewFromString(s); err == nil {
			cfg.Safety = d
		} else {
			tracing.Errorf("vankampen: invalid --safety value %q: %v", s, err)
		}
	}
	return cfg
}

var prepareCmd = &cobra.Command{
	Use:   "prepare <name> <curve>",
	Short: "Parse a curve, find its critical values, and build the loop plan",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		name, curve := args[0], args[1]
		if err := vankampen.Prepare(context.Background(), curve, name, configFromFlags(cmd)); err != nil {
			tracing.Errorf("vankampen prepare: %v", err)
			exitApp(1)
		}
	},
}

var segmentsCmd = &cobra.Command{
	Use:   "segments <name>",
	Short: "Compute and persist monodromy braids for one or more segments",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		rangeStr, _ := cmd.Flags().GetString("range")
		rng, err := parseRange(rangeStr)
		if err != nil {
			tracing.Errorf("vankampen segments: %v", err)
			exitApp(1)
			return
		}
		if err := vankampen.Segments(context.Background(), name, rng, configFromFlags(cmd)); err != nil {
			tracing.Errorf("vankampen segments: %v", err)
			exitApp(1)
		}
	},
}

func init() {
	segmentsCmd.Flags().String("range", "", "comma-separated segment indices or i-j ranges to compute (default: all)")
}

// parseRange parses a comma-separated list of indices and i-j ranges
// (e.g. "0,2,5-7") into the explicit index slice Segments expects. An
// empty string means "every segment".
func parseRange(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i := strings.IndexByte(part, '-'); i > 0 {
			lo, err := strconv.Atoi(part[:i])
			if err != nil {
				return nil, err
			}
			hi, err := strconv.Atoi(part[i+1:])
			if err != nil {
				return nil, err
			}
			for v := lo; v <= hi; v++ {
				out = append(out, v)
			}
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

var finishCmd = &cobra.Command{
	Use:   "finish <name>",
	Short: "Assemble the Hurwitz quotient and print the resulting presentation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res, err := vankampen.Finish(context.Background(), args[0], configFromFlags(cmd))
		if err != nil {
			tracing.Errorf("vankampen finish: %v", err)
			exitApp(1)
			return
		}
		fmt.Println(res.Presentation().String())
	},
}

var runCmd = &cobra.Command{
	Use:   "run <curve>",
	Short: "Prepare, compute and finish a curve's presentation in one step, in memory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res, err := vankampen.Compute(context.Background(), args[0], configFromFlags(cmd))
		if err != nil {
			tracing.Errorf("vankampen run: %v", err)
			exitApp(1)
			return
		}
		fmt.Println(res.Presentation().String())
	},
}
