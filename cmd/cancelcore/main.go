// cancelcore is a frame-by-frame simulator for fighting-game move cancels,
// driven by Lua movesets.
// Usage: cancelcore [--version] [--config <file>] [--plain] [--script <file>] [--trace] [--check] [<moveset_directory>]
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/nathoo/cancelcore/cli"
	"github.com/nathoo/cancelcore/config"
	"github.com/nathoo/cancelcore/engine"
	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/fighters"
	"github.com/nathoo/cancelcore/loader"
	"github.com/nathoo/cancelcore/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: cancelcore [--version] [--config <file>] [--plain] [--script <file>] [--trace] [--check] [<moveset_directory>]"

func main() {
	plain := false
	trace := false
	check := false
	var movesetDir, scriptFile, configFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("cancelcore %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--check":
			check = true
		case "--script", "--config":
			if i+1 >= len(args) {
				config.Exitf("%s requires a file path", args[i])
			}
			if args[i] == "--script" {
				scriptFile = args[i+1]
			} else {
				configFile = args[i+1]
			}
			i++
		case "--help", "-h":
			fmt.Println(usage)
			return
		default:
			if strings.HasPrefix(args[i], "-") {
				config.Exitf("unknown flag %s\n%s", args[i], usage)
			}
			if movesetDir == "" {
				movesetDir = args[i]
			}
		}
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		config.Exitf("loading config: %v", err)
	}
	cfg.Display.Trace = cfg.Display.Trace || trace
	cfg.Display.Plain = cfg.Display.Plain || plain

	// Startup diagnostics only when tracing.
	logger := log.New(io.Discard, "cancelcore: ", 0)
	if cfg.Display.Trace {
		logger.SetOutput(os.Stderr)
	}
	if configFile != "" {
		logger.Printf("config %s: seed %d, block chance %d%%", configFile, cfg.Sim.Seed, cfg.Sim.BlockChance)
	}

	// Load and compile the Lua moveset.
	// Without a directory, the bundled Brawler.
	var defs *fighter.Defs
	source := movesetDir
	if movesetDir == "" {
		source = "bundled brawler"
		defs, err = loader.LoadFS(fighters.Brawler())
	} else {
		defs, err = loader.Load(movesetDir)
	}
	if err != nil {
		config.Exitf("loading moveset: %v", err)
	}
	logger.Printf("loaded %s from %s: %d moves, %d rules", defs.Fighter.Name, source, len(defs.Moves), len(defs.Rules))
	if check {
		fmt.Printf("%s: %d moves, %d rules, %d handlers\n",
			cli.Banner(defs), len(defs.Moves), len(defs.Rules), len(defs.Handlers))
		return
	}

	eng := engine.New(defs, cfg.EngineOptions())

	// Script mode: open file, force plain, echo input.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			config.Exitf("opening script: %v", err)
		}
		defer f.Close()
		c := cli.New(eng, defs)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if asked to or stdout is not a terminal.
	if cfg.Display.Plain || !isTerminal() {
		cli.New(eng, defs).Run()
		return
	}

	if err := tui.Run(eng, defs); err != nil {
		config.Exitf("%v", err)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
