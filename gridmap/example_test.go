package gridmap_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridmap"
)

// ExampleParseString loads a small maze and inspects its geometry.
func ExampleParseString() {
	m, err := gridmap.ParseString("#####\n#S..#\n#..E#\n#####\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("size=%dx%d start=%s end=%s open=%d\n", m.Width(), m.Height(), m.Start(), m.End(), m.Open())
	for _, s := range m.Neighbors4(m.Start()) {
		fmt.Printf("%s -> %s wall=%v\n", s.Dir, s.Pos, m.IsWall(s.Pos))
	}
	// Output:
	// size=5x4 start=1,1 end=3,2 open=6
	// N -> 1,0 wall=true
	// E -> 2,1 wall=false
	// S -> 1,2 wall=false
	// W -> 0,1 wall=true
}
