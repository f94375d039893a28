// Package main provides the CLI entrypoint for adaptive-mapper.
//
// adaptive-mapper works on XML API documents of hierarchical metadata:
//   - flatten: lists the items of an export as YAML
//   - build: selects items from an export and prints the minimal update payload
//   - reconcile: classifies a write response against the payload that caused it
//   - types: lists the supported item types
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"adaptive-mapper/internal/common"
	"adaptive-mapper/internal/config"
	"adaptive-mapper/internal/logging"
)

const (
	exitOK       = 0
	exitError    = 1
	exitFailures = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("adaptive-mapper", flag.ContinueOnError)
	global.SetOutput(stderr)
	configPath := global.String("config", "", "path to a YAML config file")
	global.Usage = func() { usage(stderr, global) }

	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitError
	}

	cmd, ok := common.First(global.Args())
	if !ok {
		usage(stderr, global)
		return exitError
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "adaptive-mapper:", err)
		return exitError
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(stderr, "adaptive-mapper:", err)
		return exitError
	}
	defer func() { _ = logger.Sync() }()

	a := &app{cfg: cfg, logger: logger, stdout: stdout, stderr: stderr}
	rest := global.Args()[1:]

	var failed bool

	switch cmd {
	case "types":
		err = a.types()
	case "flatten":
		err = a.flatten(rest)
	case "build":
		err = a.build(rest)
	case "reconcile":
		failed, err = a.reconcile(rest)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}

	switch {
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case err != nil:
		fmt.Fprintf(stderr, "adaptive-mapper %s: %v\n", cmd, err)
		return exitError
	case failed:
		return exitFailures
	default:
		return exitOK
	}
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "usage: adaptive-mapper [-config file] <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  flatten   -type T -in export.xml")
	fmt.Fprintln(w, "  build     -type T -in export.xml [-where expr] [-op update|create]")
	fmt.Fprintln(w, "  reconcile -type T -request payload.xml -response response.xml")
	fmt.Fprintln(w, "  types")
	fmt.Fprintln(w)
	fs.PrintDefaults()
}
