package main

import (
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"

	"github.com/gaarutyunov/play/pkg/play"
)

var watchCommand = &cli.Command{
	Name:      "watch",
	Usage:     "recompile a Play source file every time it changes on disk",
	ArgsUsage: "FILE",
	Action:    runWatch,
}

func runWatch(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("playc watch: missing FILE argument", 1)
	}

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	log := logger("playc watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return cli.Exit(err, 1)
	}

	compileOnce := func() {
		src, err := os.ReadFile(path)
		if err != nil {
			log.Printf("read error: %v", err)
			return
		}
		if _, err := play.Compile(string(src)); err != nil {
			printCompileError(cfg, err)
			return
		}
		log.Printf("%s ok", path)
	}

	compileOnce()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				compileOnce()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}
