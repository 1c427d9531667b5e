// Package cli implements the homogebra command line.
package cli

import (
	"fmt"
	"io"
	"os"
)

// Options carries the persistent flags shared by all commands.
type Options struct {
	ConfigPath string
	Addr       string
	LogLevel   string
}

// defaultConfigPaths are searched in order when --config is not given.
var defaultConfigPaths = []string{
	"homogebra.yaml",
	"homogebra.toml",
	"homogebra.json",
	"~/.config/homogebra/config.yaml",
}

// MainWithArgs runs the command line and returns the process exit code:
// 0 on success, 1 when a command fails and 2 when no command was given.
func MainWithArgs(args []string) int {
	return mainWith(args, os.Stdout, os.Stderr)
}

// Main returns an exit code (0 for success, non-zero on error) for use by cmd/homogebra.
func Main() int { return MainWithArgs(os.Args[1:]) }

func mainWith(args []string, stdout, stderr io.Writer) int {
	root := buildRootCmdWith(&Options{}, stdout)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if len(args) == 0 {
		_ = root.Usage()
		return 2
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	return 0
}
