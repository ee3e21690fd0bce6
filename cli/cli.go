// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the frame simulator.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/cancelcore/engine"
	"github.com/nathoo/cancelcore/engine/fighter"
)

// CLI drives the engine from line-oriented input.
type CLI struct {
	Engine    *engine.Engine
	Defs      *fighter.Defs
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, defs *fighter.Defs) *CLI {
	return &CLI{
		Engine:  eng,
		Defs:    defs,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: DefaultSaveDir(),
		Trace:   eng.Opts.Trace,
	}
}

// Run prints the banner and starting summary, then runs each input line
// until EOF or /quit.
func (c *CLI) Run() {
	c.emit(Banner(c.Defs), c.Engine.Summary())

	scanner := bufio.NewScanner(c.In)
	for {
		fmt.Fprint(c.Out, "> ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		// Blank lines and script comments.
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.emit(input)
		}
		lines, quit := c.dispatch(input)
		c.emit(lines...)
		if quit {
			return
		}
	}
}

// dispatch runs one input line and returns what to print.
func (c *CLI) dispatch(input string) ([]string, bool) {
	if strings.HasPrefix(input, "/") {
		return Meta(c.Engine, c.SaveDir, input, &c.Trace)
	}

	switch strings.ToLower(input) {
	case "again", "g":
		if c.lastCmd == "" {
			return []string{"Nothing to repeat."}, false
		}
		input = c.lastCmd
	default:
		c.lastCmd = input
	}

	result := c.Engine.Step(input)
	out := result.Output
	if c.Trace {
		out = append(out, TraceLines(result)...)
	}
	return out, false
}

func (c *CLI) emit(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(c.Out, line)
	}
}
