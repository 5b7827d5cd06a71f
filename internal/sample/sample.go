// Package sample carries the nine-tile reference puzzle used across the
// mosaic test suites, together with two of its known stitched images.
package sample

import (
	_ "embed"
	"strings"
)

const (
	// CornerProduct is the product of the four corner tile ids.
	CornerProduct int64 = 20899048083289
	// Roughness is the filled-pixel count left after removing sea monsters.
	Roughness = 273
	// Monsters is the number of sea monsters in the correctly oriented image.
	Monsters = 2
	// TileSize is the side length of every tile.
	TileSize = 10
)

var (
	//go:embed tiles.txt
	tiles string
	//go:embed stitched.txt
	stitched string
	//go:embed oriented.txt
	oriented string
)

// Text returns the raw puzzle input.
func Text() string { return tiles }

// Blocks returns the puzzle split into one string per tile.
func Blocks() []string {
	return strings.Split(strings.TrimSpace(tiles), "\n\n")
}

// Stitched returns the assembled 24×24 image before it is oriented
// towards the monsters.
func Stitched() []string {
	return strings.Split(strings.TrimSpace(stitched), "\n")
}

// Oriented returns the assembled image in the orientation where the
// monsters can be read without rotation.
func Oriented() []string {
	return strings.Split(strings.TrimSpace(oriented), "\n")
}
