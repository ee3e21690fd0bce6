package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nathoo/cancelcore/engine"
	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/engine/save"
	"github.com/nathoo/cancelcore/engine/snapshot"
	"github.com/nathoo/cancelcore/types"
)

// DisplayName turns a status into a readable label.
// ATTACK_AIR -> "Attack Air", SPECIAL_HI -> "Special Hi".
func DisplayName(status types.StatusKind) string {
	name := strings.ReplaceAll(strings.ToLower(fighter.StatusName(status)), "_", " ")
	return cases.Title(language.English).String(name)
}

// DefaultSaveDir is where /save and /load keep sessions.
func DefaultSaveDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cancelcore", "saves")
}

// Meta runs a slash command against the engine. It returns the lines to
// show and whether the session should end. trace is toggled by /trace.
func Meta(eng *engine.Engine, saveDir, input string, trace *bool) ([]string, bool) {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/save":
		return cmdSave(eng, saveDir, arg), false

	case "/load":
		return cmdLoad(eng, saveDir, arg), false

	case "/help":
		return HelpLines(), false

	case "/state":
		return stateLines(eng), false

	case "/get":
		return getLines(eng, arg), false

	case "/reset":
		eng.Reset()
		return []string{"Fighter reset to WAIT on frame 0.", eng.Summary()}, false

	case "/trace":
		*trace = !*trace
		eng.Opts.Trace = *trace
		if *trace {
			return []string{"Trace output enabled."}, false
		}
		return []string{"Trace output disabled."}, false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

// HelpLines lists the meta-commands and the input vocabulary.
func HelpLines() []string {
	return []string{
		"System:",
		"  /save [name]   Save the session (default: quicksave)",
		"  /load [name]   Replay a saved session (default: quicksave)",
		"  /quit          Exit",
		"  /help          Show this help",
		"  /state         Dump the fighter as JSON",
		"  /get <path>    Query one value, e.g. /get ints.used_ground_normals",
		"  /reset         Start over from WAIT",
		"  /trace         Toggle cancel and event tracing",
		"",
		"Frame input (one line runs one frame unless repeated):",
		"  1-9                 Stick direction, numpad notation",
		"  stick=x,y x= y=     Analog stick, each axis in [-1, 1]",
		"  jab ftilt utilt dtilt fsmash usmash dsmash",
		"  nair fair bair uair dair (or air, picked from the stick)",
		"  b side_b up_b down_b",
		"  jump dash turn_dash",
		"  wall=l wall=r       Touching a wall on that side",
		"  wjl wjr             Wall jump pushing off left / right",
		"  hit block contact   Resolve the current attack",
		"  x<n>                Repeat the line n frames",
		"  wait [n]            Run n frames with no input",
		"  again (g)           Repeat the last line",
	}
}

func cmdSave(eng *engine.Engine, dir, name string) []string {
	if name == "" {
		name = "quicksave"
	}

	data, err := save.Save(eng)
	if err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}
	path := filepath.Join(dir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}
	return []string{fmt.Sprintf("Session saved to %s (%d inputs).", name, len(eng.Inputs))}
}

func cmdLoad(eng *engine.Engine, dir, name string) []string {
	if name == "" {
		name = "quicksave"
	}

	data, err := os.ReadFile(filepath.Join(dir, name+".json"))
	if err != nil {
		return []string{fmt.Sprintf("Load failed: %v", err)}
	}
	sd, err := save.Load(data)
	if err != nil {
		return []string{fmt.Sprintf("Load failed: %v", err)}
	}
	if err := save.ApplySave(eng, sd); err != nil {
		return []string{fmt.Sprintf("Load failed: %v", err)}
	}
	return []string{fmt.Sprintf("Session loaded from %s (frame %d).", name, sd.Frame), eng.Summary()}
}

func stateLines(eng *engine.Engine) []string {
	doc, err := snapshot.Snapshot(eng.Fighter, eng.Frame)
	if err != nil {
		return []string{fmt.Sprintf("State failed: %v", err)}
	}
	return strings.Split(strings.TrimRight(snapshot.Pretty(doc), "\n"), "\n")
}

func getLines(eng *engine.Engine, path string) []string {
	if path == "" {
		return []string{"Usage: /get <path>"}
	}
	doc, err := snapshot.Snapshot(eng.Fighter, eng.Frame)
	if err != nil {
		return []string{fmt.Sprintf("Get failed: %v", err)}
	}
	v, ok := snapshot.Query(doc, path)
	if !ok {
		return []string{fmt.Sprintf("No value at %s.", path)}
	}
	return []string{fmt.Sprintf("%s = %s", path, v)}
}

// TraceLines describes the effects and events a step produced.
func TraceLines(result types.Result) []string {
	var lines []string
	if len(result.Effects) > 0 {
		lines = append(lines, fmt.Sprintf("[trace] Effects: %d", len(result.Effects)))
		for _, e := range result.Effects {
			lines = append(lines, fmt.Sprintf("[trace]   %s %v", e.Type, e.Params))
		}
	}
	if len(result.Events) > 0 {
		lines = append(lines, fmt.Sprintf("[trace] Events: %d", len(result.Events)))
		for _, e := range result.Events {
			lines = append(lines, fmt.Sprintf("[trace]   %s", e.Type))
		}
	}
	return lines
}

// Banner names the loaded fighter, e.g. "Brawler v1.0 by nathoo".
func Banner(defs *fighter.Defs) string {
	b := defs.Fighter.Name
	if defs.Fighter.Version != "" {
		b += " v" + defs.Fighter.Version
	}
	if defs.Fighter.Author != "" {
		b += " by " + defs.Fighter.Author
	}
	return b
}
