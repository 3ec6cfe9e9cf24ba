package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hchen90/lzss/internal/config"
)

const (
	name    = "lzss"
	version = "1.0.0"
)

// Exit statuses.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage : %[1]s [options] [files]
options:
 --encode          encode a file with lzss
 --decode          decode a file with lzss
 --dump            list the tokens of an encoded file
 --compare         compare lzss with other codecs on a file
 --config path     read settings from a YAML file
 -v                verbose logging
 --version         show version information
 --help ,--usage   show this help
files:
 [file1] [file2]   input file1 and output to file2
 [file2]           input file2 and output to stdout
examples:
 %[1]s --encode file1 file2
 %[1]s --decode file2
 %[1]s --version
`, name)
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%[1]s %[2]s\n"+
		"Copyright (C) 2014 Sean Chen\n\n"+
		"%[1]s is free software; you can redistribute it "+
		"under the terms of the GNU General Public License "+
		"as published by the Free Software Foundation; either "+
		"version 3 of the License, or (at your option) any later "+
		"version.\n", name, version)
}

// newLogger returns a console logger on w. verbose forces the debug level.
func newLogger(level string, verbose bool, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)

	return zap.New(core).Named(name), nil
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		encode, decode, dump, compare bool
		showVersion, showUsage        bool
		verbose                       bool
		configPath                    string
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}
	fs.BoolVar(&encode, "encode", false, "encode a file with lzss")
	fs.BoolVar(&decode, "decode", false, "decode a file with lzss")
	fs.BoolVar(&dump, "dump", false, "list the tokens of an encoded file")
	fs.BoolVar(&compare, "compare", false, "compare lzss with other codecs on a file")
	fs.BoolVar(&showVersion, "version", false, "show version information")
	fs.BoolVar(&showUsage, "usage", false, "show this help")
	fs.BoolVar(&verbose, "v", false, "verbose logging")
	fs.StringVar(&configPath, "config", "", "read settings from a YAML file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout)
			return exitOK
		}
		printUsage(stderr)
		return exitUsage
	}

	switch {
	case showVersion:
		printVersion(stdout)
		return exitOK
	case showUsage:
		printUsage(stdout)
		return exitOK
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Read(configPath); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
			return exitError
		}
	}

	logger, err := newLogger(cfg.LogLevel, verbose, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: log level: %v\n", name, err)
		return exitError
	}
	defer logger.Sync() //nolint:errcheck

	modes := 0
	for _, set := range []bool{encode, decode, dump, compare} {
		if set {
			modes++
		}
	}
	files := fs.Args()
	maxFiles := 2
	if dump || compare {
		maxFiles = 1
	}
	if modes != 1 || len(files) == 0 || len(files) > maxFiles {
		printUsage(stderr)
		return exitUsage
	}

	input, output := files[0], ""
	if len(files) == 2 {
		output = files[1]
	}

	cmd := &command{cfg: cfg, log: logger, stdout: stdout}
	switch {
	case encode:
		err = cmd.transform(modeEncode, input, output)
	case decode:
		err = cmd.transform(modeDecode, input, output)
	case dump:
		err = cmd.dump(input)
	case compare:
		err = cmd.compare(input)
	}
	if err != nil {
		logger.Error("command failed", zap.String("input", input), zap.Error(err))
		return exitError
	}

	return exitOK
}
