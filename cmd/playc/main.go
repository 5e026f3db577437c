/*
Playc is a command-line wrapper around the Play frontend pipeline (spec §6
"CLI (external collaborator, not part of the core)"). It reads a .play
source file, runs it through parse -> transform -> analyze, and prints
either the resulting AST or a formatted error. Exit codes: 0 success, 1 any
failure — no environment variables are consulted.

Usage:

	playc compile FILE
	playc watch FILE
*/
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "playc",
		Usage: "compile and watch Play source files",
		Commands: []*cli.Command{
			compileCommand,
			watchCommand,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a playc.toml config file",
				Value: "playc.toml",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func logger(prefix string) *log.Logger {
	return log.New(os.Stderr, prefix+" ", log.LstdFlags)
}
