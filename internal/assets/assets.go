// Package assets loads the sprite, landmark and name files a world is built
// from. A default set is embedded in the binary; any directory with the same
// layout can replace it:
//
//	sprites/islands/*.txt                 island shapes
//	sprites/ship/{north,south,west,east}.txt
//	landmarks/*.txt                       color name, then symbol
//	names.txt                             one island name per line
//
// Every file is required. A missing or malformed file fails the whole load.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/sprite"
	"github.com/vovakirdan/ohoy/internal/world"
)

//go:embed data
var embedded embed.FS

// FS returns the embedded asset tree.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return sub
}

// Default loads the embedded assets.
func Default() (world.Catalog, error) {
	return Load(FS())
}

// Dir loads assets from a directory on disk.
func Dir(dir string) (world.Catalog, error) {
	return Load(os.DirFS(dir))
}

var shipFiles = map[world.Direction]string{
	world.North: "north.txt",
	world.South: "south.txt",
	world.West:  "west.txt",
	world.East:  "east.txt",
}

// Load reads a complete catalog from fsys.
func Load(fsys fs.FS) (world.Catalog, error) {
	var cat world.Catalog

	shapes, err := globSorted(fsys, "sprites/islands/*.txt")
	if err != nil {
		return cat, err
	}
	for _, p := range shapes {
		spr, err := LoadSprite(fsys, p)
		if err != nil {
			return cat, err
		}
		cat.Shapes = append(cat.Shapes, spr)
	}

	cat.Ship = make(map[world.Direction]*sprite.Sprite, len(shipFiles))
	for dir, name := range shipFiles {
		spr, err := LoadSprite(fsys, path.Join("sprites/ship", name))
		if err != nil {
			return cat, err
		}
		cat.Ship[dir] = spr
	}

	landmarks, err := globSorted(fsys, "landmarks/*.txt")
	if err != nil {
		return cat, err
	}
	for _, p := range landmarks {
		lm, err := loadLandmark(fsys, p)
		if err != nil {
			return cat, err
		}
		cat.Landmarks = append(cat.Landmarks, lm)
	}

	cat.Names, err = loadNames(fsys, "names.txt")
	if err != nil {
		return cat, err
	}

	return cat, cat.Validate()
}

// LoadSprite parses one sprite file.
func LoadSprite(fsys fs.FS, name string) (*sprite.Sprite, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	spr, err := sprite.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", name, err)
	}
	return spr, nil
}

// SpriteFiles lists every sprite file in fsys, sorted.
func SpriteFiles(fsys fs.FS) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, "sprites", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".txt" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

func loadLandmark(fsys fs.FS, name string) (world.Landmark, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return world.Landmark{}, fmt.Errorf("assets: %w", err)
	}
	lines := splitLines(string(data))
	if len(lines) < 2 {
		return world.Landmark{}, fmt.Errorf("assets: %s: want a color line and a symbol line", name)
	}
	color, ok := core.ParseColor(lines[0])
	if !ok || color == core.ColorDefault {
		return world.Landmark{}, fmt.Errorf("assets: %s: unknown color %q", name, lines[0])
	}
	if lines[1] == "" {
		return world.Landmark{}, fmt.Errorf("assets: %s: empty symbol", name)
	}

	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	return world.Landmark{
		Name:   strings.ReplaceAll(strings.ToLower(base), "_", " "),
		Color:  color,
		Symbol: lines[1],
	}, nil
}

func loadNames(fsys fs.FS, name string) ([]string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	var names []string
	for _, line := range splitLines(string(data)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("assets: %s: no names", name)
	}
	return names, nil
}

func globSorted(fsys fs.FS, pattern string) ([]string, error) {
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("assets: no files match %s", pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
