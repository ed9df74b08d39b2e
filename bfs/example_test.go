// Package bfs_test provides runnable examples for grid breadth-first search.
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridmap"
)

// ExampleSteps prints the uniform-step distance from S to E.
func ExampleSteps() {
	m, _ := gridmap.ParseString("#####\n#S..#\n#.#.#\n#..E#\n#####\n")
	n, err := bfs.Steps(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("steps:", n)
	// Output:
	// steps: 4
}

// ExampleDistances labels every open cell with its distance from E.
func ExampleDistances() {
	m, _ := gridmap.ParseString("#####\n#S..#\n#.#.#\n#..E#\n#####\n")
	f, _ := bfs.Distances(m, m.End())

	overlay := make(map[gridmap.Position]rune)
	for _, p := range f.Order() {
		d, _ := f.At(p)
		overlay[p] = rune('0' + d)
	}
	fmt.Print(m.Render(overlay))
	// Output:
	// #####
	// #S32#
	// #3#1#
	// #21E#
	// #####
}
