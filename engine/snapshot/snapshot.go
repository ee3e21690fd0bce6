// Package snapshot renders a fighter's registers as a JSON document for
// inspection at the prompt. Snapshots are a debug view and are never loaded
// back into a fighter.
package snapshot

import (
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/types"
)

// Snapshot serializes the fighter at the given frame.
func Snapshot(f *fighter.State, frame int) (string, error) {
	doc := "{}"
	set := func(path string, value any) error {
		var err error
		doc, err = sjson.Set(doc, path, value)
		if err != nil {
			return fmt.Errorf("snapshot %s: %w", path, err)
		}
		return nil
	}

	fields := []struct {
		path  string
		value any
	}{
		{"fighter", f.Def.Name},
		{"frame", frame},
		{"status", fighter.StatusName(f.Status)},
		{"prev_status", fighter.StatusName(f.PrevStatus)},
		{"situation", fighter.SituationName(f.Sit)},
		{"lr", f.Dir},
		{"stick.x", f.Input.StickX},
		{"stick.y", f.Input.StickY},
		{"motion_end", f.MotionEnd},
		{"cancel_enabled", f.CancelEnabled},
		{"contact.hit", f.Contact.Hit},
		{"contact.shield", f.Contact.Shield},
	}
	for _, fd := range fields {
		if err := set(fd.path, fd.value); err != nil {
			return "", err
		}
	}

	for _, id := range sortedKeys(f.Ints) {
		if err := set("ints."+escape(id), f.Ints[id]); err != nil {
			return "", err
		}
	}
	for _, id := range sortedKeys(f.Floats) {
		if err := set("floats."+escape(id), f.Floats[id]); err != nil {
			return "", err
		}
	}
	for _, id := range sortedKeys(f.Int64s) {
		if err := set("int64s."+escape(id), f.Int64s[id]); err != nil {
			return "", err
		}
	}
	for _, id := range sortedKeys(f.Flags) {
		if err := set("flags."+escape(id), f.Flags[id]); err != nil {
			return "", err
		}
	}
	return doc, nil
}

// Query answers a gjson path against a snapshot, e.g. "ints.used_ground_normals".
// The bool is false when the path does not exist.
func Query(doc, path string) (string, bool) {
	r := gjson.Get(doc, path)
	if !r.Exists() {
		return "", false
	}
	return r.String(), true
}

// Pretty indents a snapshot for display.
func Pretty(doc string) string {
	return gjson.Get(doc, "@pretty").String()
}

func sortedKeys[V any](m map[types.RegisterID]V) []types.RegisterID {
	keys := make([]types.RegisterID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// escape protects path metacharacters in a register ID.
func escape(id types.RegisterID) string {
	var out []rune
	for _, r := range string(id) {
		switch r {
		case '.', '*', '?', '|', '#', '@':
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
