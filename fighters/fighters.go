// Package fighters embeds the bundled movesets.
package fighters

import (
	"embed"
	"io/fs"
)

//go:embed brawler/*.lua
var bundled embed.FS

// Brawler returns the bundled Brawler moveset, rooted at its directory.
func Brawler() fs.FS {
	sub, err := fs.Sub(bundled, "brawler")
	if err != nil {
		panic(err)
	}
	return sub
}
