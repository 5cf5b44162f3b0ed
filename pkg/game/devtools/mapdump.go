// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"alphapoint/pkg/engine/world"
	"alphapoint/pkg/game/level"
)

// cellSymbol returns the single-character symbol for a cell (no player overlay).
func cellSymbol(lvl *level.Level, c world.Coord) rune {
	if !lvl.Map.IsPath(c) {
		for _, i := range lvl.System.Interfaces() {
			if i.Position == c {
				return 'I'
			}
		}
		return '#'
	}
	for _, d := range lvl.System.DevicesAt(c) {
		if d.Type == "door" {
			if d.Active {
				return 'd'
			}
			return 'D'
		}
	}
	switch c {
	case lvl.Map.Exit:
		return 'E'
	case lvl.Map.Enter:
		return 'S'
	}
	if cell, ok := lvl.Map.Cell(c); ok && cell.HasStory() {
		return '*'
	}
	return '.'
}

// WriteMap writes the level grid, marking the player at pos when pos is on the map.
func WriteMap(w io.Writer, lvl *level.Level, pos world.Coord) {
	b := lvl.Map.Bounds
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := world.At(x, y)
			if c == pos {
				fmt.Fprint(w, "@")
				continue
			}
			fmt.Fprintf(w, "%c", cellSymbol(lvl, c))
		}
		fmt.Fprintln(w)
	}
}

// DescribeLevel writes a full debug dump of a level: metadata, legend, map and
// the dependency graph.
func DescribeLevel(w io.Writer, lvl *level.Level, pos world.Coord) {
	fmt.Fprintf(w, "=== LEVEL %d: %s ===\n", lvl.Number, lvl.Name)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "width: %d\n", lvl.Map.Bounds.Width)
	fmt.Fprintf(w, "height: %d\n", lvl.Map.Bounds.Height)
	fmt.Fprintf(w, "enter: %v facing %v\n", lvl.Map.Enter, lvl.Map.EnterOrientation)
	fmt.Fprintf(w, "exit: %v\n", lvl.Map.Exit)
	fmt.Fprintf(w, "path_cells: %d\n", len(lvl.Map.PathCells()))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, ". = path  # = wall  I = interface  D = closed door  d = open door  S = entry  E = exit  * = story  @ = player")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	WriteMap(w, lvl, pos)
	fmt.Fprintln(w, "")

	DescribeSystem(w, lvl)

	fmt.Fprintln(w, "Items:")
	for _, it := range lvl.Map.Items() {
		fmt.Fprintf(w, "  %s %q at %v\n", it.Type, it.Name, it.Position)
	}
	fmt.Fprintln(w, "")
}

// DumpLevelToFile writes DescribeLevel output to level-<n>.txt in dir and
// returns the absolute path.
func DumpLevelToFile(dir string, lvl *level.Level, pos world.Coord) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, fmt.Sprintf("level-%d.txt", lvl.Number)))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	DescribeLevel(f, lvl, pos)
	return absPath, nil
}
