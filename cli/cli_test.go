package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nathoo/cancelcore/engine"
	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/types"
)

// testDefs returns a fighter with one cancelable forward tilt.
func testDefs() *fighter.Defs {
	return &fighter.Defs{
		Fighter: types.FighterDef{Name: "Test", JumpCountMax: 2, AirTime: 40, MeterMax: 100},
		Moves: map[types.StatusKind]types.MoveDef{
			types.StatusAttackS3: {
				Status:       types.StatusAttackS3,
				Length:       30,
				CancelWindow: 10,
				Cancel: types.CancelSystem{
					Normals: []types.TransitionTerm{types.TermContAttackHi3},
				},
				HasCancel: true,
			},
		},
	}
}

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	defs := testDefs()
	eng := engine.New(defs, engine.Options{})
	var out bytes.Buffer
	c := &CLI{
		Engine:  eng,
		Defs:    defs,
		In:      strings.NewReader(input),
		Out:     &out,
		SaveDir: t.TempDir(),
	}
	return c, &out
}

func TestCLI_StartingSummary(t *testing.T) {
	c, out := newTestCLI(t, "/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "[f0] WAIT (ground)") {
		t.Errorf("expected starting summary, got:\n%s", output)
	}
	if !strings.Contains(output, "Goodbye.") {
		t.Error("expected goodbye on /quit")
	}
}

func TestCLI_FrameInput(t *testing.T) {
	c, out := newTestCLI(t, "ftilt\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "f1: WAIT -> ATTACK_S3") {
		t.Errorf("expected transition into ATTACK_S3, got:\n%s", output)
	}
	if !strings.Contains(output, "[f1] ATTACK_S3") {
		t.Errorf("expected summary after the frame, got:\n%s", output)
	}
}

func TestCLI_Again(t *testing.T) {
	c, out := newTestCLI(t, "wait 3\ng\nagain\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "[f6]") || !strings.Contains(output, "[f9]") {
		t.Errorf("expected repeated waits to reach frame 9, got:\n%s", output)
	}
}

func TestCLI_AgainWithoutHistory(t *testing.T) {
	c, out := newTestCLI(t, "g\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Nothing to repeat.") {
		t.Error("expected 'Nothing to repeat.'")
	}
}

func TestCLI_CommentsSkipped(t *testing.T) {
	c, out := newTestCLI(t, "# wait 5\n/quit\n")
	c.EchoInput = true
	c.Run()

	output := out.String()
	if strings.Contains(output, "wait 5") || strings.Contains(output, "[f5]") {
		t.Errorf("comment line should be ignored, got:\n%s", output)
	}
}

func TestCLI_EchoInput(t *testing.T) {
	c, out := newTestCLI(t, "wait 2\n/quit\n")
	c.EchoInput = true
	c.Run()

	if !strings.Contains(out.String(), "> wait 2\n") {
		t.Errorf("expected echoed input, got:\n%s", out.String())
	}
}

func TestCLI_UnknownInput(t *testing.T) {
	c, out := newTestCLI(t, "ftilt sideways\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, `Unknown input "sideways".`) {
		t.Errorf("expected unknown input message, got:\n%s", output)
	}
	if strings.Contains(output, "ATTACK_S3") {
		t.Error("a line with an unknown token should not run")
	}
}

func TestCLI_State(t *testing.T) {
	c, out := newTestCLI(t, "ftilt\n/state\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, `"status": "ATTACK_S3"`) {
		t.Errorf("expected JSON state dump, got:\n%s", output)
	}
	if !strings.Contains(output, `"prev_status": "WAIT"`) {
		t.Errorf("expected previous status in dump, got:\n%s", output)
	}
}

func TestCLI_Get(t *testing.T) {
	c, out := newTestCLI(t, "ftilt\n/get status\n/get nothing.here\n/get\n/quit\n")
	c.Run()

	output := out.String()
	for _, want := range []string{"status = ATTACK_S3", "No value at nothing.here.", "Usage: /get <path>"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestCLI_SaveAndLoad(t *testing.T) {
	c, out := newTestCLI(t, "ftilt\nwait 4\n/save combo\n/reset\n/load combo\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Session saved to combo (2 inputs).") {
		t.Errorf("expected save confirmation, got:\n%s", output)
	}
	if !strings.Contains(output, "Session loaded from combo (frame 5).") {
		t.Errorf("expected load confirmation, got:\n%s", output)
	}
	if c.Engine.Frame != 5 || c.Engine.Fighter.Status != types.StatusAttackS3 {
		t.Errorf("after load: frame %d status %v", c.Engine.Frame, c.Engine.Fighter.Status)
	}
}

func TestCLI_LoadMissing(t *testing.T) {
	c, out := newTestCLI(t, "/load nothing\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Load failed") {
		t.Error("expected load failure")
	}
}

func TestCLI_Reset(t *testing.T) {
	c, out := newTestCLI(t, "ftilt\n/reset\n/quit\n")
	c.Run()

	if c.Engine.Frame != 0 || c.Engine.Fighter.Status != types.StatusWait {
		t.Errorf("after reset: frame %d status %v", c.Engine.Frame, c.Engine.Fighter.Status)
	}
	if !strings.Contains(out.String(), "Fighter reset") {
		t.Error("expected reset message")
	}
}

func TestCLI_TraceToggle(t *testing.T) {
	c, out := newTestCLI(t, "/trace\nftilt\n/trace\nwait\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Trace output enabled.") || !strings.Contains(output, "Trace output disabled.") {
		t.Error("expected both trace toggle messages")
	}
	if !strings.Contains(output, "[trace]   status_enter") {
		t.Errorf("expected traced status_enter event, got:\n%s", output)
	}
	if c.Trace || c.Engine.Opts.Trace {
		t.Error("trace should be off after the second toggle")
	}
}

func TestCLI_UnknownMeta(t *testing.T) {
	c, out := newTestCLI(t, "/dance\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Unknown command: /dance") {
		t.Error("expected unknown command message")
	}
}

func TestCLI_Help(t *testing.T) {
	c, out := newTestCLI(t, "/help\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "/get <path>") || !strings.Contains(output, "numpad") {
		t.Errorf("help output incomplete:\n%s", output)
	}
}

func TestCLI_EOFExits(t *testing.T) {
	c, _ := newTestCLI(t, "wait\n")
	c.Run()

	if c.Engine.Frame != 1 {
		t.Errorf("frame = %d, want 1", c.Engine.Frame)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		status types.StatusKind
		want   string
	}{
		{types.StatusWait, "Wait"},
		{types.StatusAttackAir, "Attack Air"},
		{types.StatusAttackS3, "Attack S3"},
		{types.StatusSpecialHi, "Special Hi"},
		{types.StatusJumpSquat, "Jump Squat"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.status); got != tt.want {
			t.Errorf("DisplayName(%v) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
