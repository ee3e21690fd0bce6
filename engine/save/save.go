// Package save writes a simulation session to JSON and replays it. The
// engine is deterministic for a given seed, so a session is stored as its
// seed and input lines rather than as fighter registers.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/nathoo/cancelcore/engine"
)

// SaveData is the JSON-serializable save format.
type SaveData struct {
	Version string   `json:"version"`
	Fighter string   `json:"fighter"`
	Frame   int      `json:"frame"`
	RNGSeed int64    `json:"rng_seed"`
	Inputs  []string `json:"inputs"`
}

// Save serializes the engine's session to JSON bytes.
func Save(eng *engine.Engine) ([]byte, error) {
	data := SaveData{
		Version: eng.Defs.Fighter.Version,
		Fighter: eng.Defs.Fighter.Name,
		Frame:   eng.Frame,
		RNGSeed: eng.Opts.Seed,
		Inputs:  eng.Inputs,
	}
	if data.Inputs == nil {
		data.Inputs = []string{}
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into SaveData.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, err
	}
	if sd.Inputs == nil {
		sd.Inputs = []string{}
	}
	return &sd, nil
}

// ApplySave resets the engine with the saved seed and replays every input.
// It fails when the save belongs to another fighter or the replay does not
// land on the saved frame, which happens when the moveset has changed.
func ApplySave(eng *engine.Engine, sd *SaveData) error {
	if sd.Fighter != eng.Defs.Fighter.Name {
		return fmt.Errorf("save is for fighter %q, loaded fighter is %q", sd.Fighter, eng.Defs.Fighter.Name)
	}
	eng.Opts.Seed = sd.RNGSeed
	eng.Reset()
	for _, input := range sd.Inputs {
		eng.Step(input)
	}
	if eng.Frame != sd.Frame {
		return fmt.Errorf("replay ended on frame %d, save was taken on frame %d", eng.Frame, sd.Frame)
	}
	return nil
}
