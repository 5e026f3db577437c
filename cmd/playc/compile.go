package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/gaarutyunov/play/pkg/play"
)

var compileCommand = &cli.Command{
	Name:      "compile",
	Usage:     "parse, transform, and semantically analyze a Play source file",
	ArgsUsage: "FILE",
	Action:    runCompile,
}

func runCompile(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("playc compile: missing FILE argument", 1)
	}

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	runID := uuid.New()
	log := logger("playc")
	log.Printf("run=%s compiling %s", runID, path)

	src, err := os.ReadFile(path)
	if err != nil {
		return cli.Exit(err, 1)
	}

	prog, err := play.Compile(string(src))
	if err != nil {
		printCompileError(cfg, err)
		return cli.Exit("", 1)
	}

	p := &astPrinter{w: os.Stdout, color: cfg.Color}
	p.Program(prog)

	log.Printf("run=%s ok", runID)
	return nil
}

func printCompileError(cfg config, err error) {
	if cfg.Color {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, err.Error())
		return
	}
	os.Stderr.WriteString(err.Error() + "\n")
}
