package main

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"

	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// koanfConfig wraps the koanf-backed configuration tree, the same
// "hierarchy-delimited keys, nested-text config file" layering the
// teacher CLI uses for pmmp, keyed under VANKAMPEN instead.
type koanfConfig struct {
	*koanfadapter.KConf
}

// loadConfig is cobra's OnInitialize callback: it builds the koanf
// tree, merges command-line flags over it, wires up schuko/tracing,
// and publishes the result as the package-global configuration.
func loadConfig() {
	k := koanf.New(".")
	konf := koanfadapter.New(k, "VANKAMPEN", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		exitApp(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		exitApp(1)
	}
	configuration = &koanfConfig{konf}
}

func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	if err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil); err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	return nil
}

// verbosityTraceLevel maps spec.md §6's Config.Verbosity (0 silent, 1
// per-segment progress, 2 per-step diagnostics) onto a schuko trace
// level name, per SPEC_FULL.md's ambient logging section.
func verbosityTraceLevel(v int) string {
	switch {
	case v <= 0:
		return "Error"
	case v == 1:
		return "Info"
	default:
		return "Debug"
	}
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go")
	if konf.GetString("trace.vk") == "" {
		konf.Set("trace.vk", verbosityTraceLevel(konf.Koanf().Int("verbosity")))
	}
	paths := locateLogFile()
	if dest := konf.GetString("tracing.destination"); dest != "" {
		if !strings.Contains(dest, ":") && paths.ConfigDir() != "" {
			konf.Set("tracing.destination", "file://"+paths.ConfigDir()+"/"+dest)
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// applyVerbosity re-points the "vk" trace group at the level implied
// by a vankampen.Config.Verbosity value, so a Config built per-command
// (configFromFlags) governs trace output even when it diverges from
// the --verbosity default baked in at loadConfig time.
func applyVerbosity(v int) {
	if configuration == nil {
		return
	}
	configuration.Set("trace.vk", verbosityTraceLevel(v))
	if err := trace2go.ConfigureRoot(configuration.KConf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		tracing.Errorf("vankampen: cannot apply verbosity %d: %v", v, err)
		return
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// locateLogFile resolves the platform-specific config/log directories
// (cmd/vankampen/paths*.go) used to anchor a relative --logfile value.
func locateLogFile() AppPaths {
	paths, err := DefaultAppPaths("VANKAMPEN")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}
