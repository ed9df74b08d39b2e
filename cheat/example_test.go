package cheat_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/cheat"
	"github.com/katalvlaran/gridpath/gridmap"
)

// ExampleFind shows the single shortcut through a thin wall.
func ExampleFind() {
	m, _ := gridmap.ParseString("#######\n#S#E..#\n#.###.#\n#.....#\n#######\n")
	baseline, _ := bfs.Steps(m)
	found, _ := cheat.Find(m, baseline, 5)

	fmt.Println("baseline:", baseline)
	for _, f := range found {
		fmt.Printf("%s via %s saves %d\n", f.Cheat, f.Wall(), f.Saving)
	}
	// Output:
	// baseline: 10
	// 1,1->3,1 via 2,1 saves 8
}
