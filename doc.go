// Package gridpath finds the cheapest route through a walled grid when every
// change of heading is expensive, and counts the one-wall shortcuts that would
// make the plain step-counted route shorter.
//
// 🚀 What is gridpath?
//
//	A small, deterministic search toolkit that brings together:
//		• Grid model & text loader: walls, start, end, overlays (gridmap)
//		• Priority frontier with FIFO tie-break (frontier)
//		• Oriented Dijkstra with turn penalties and optimal-tile collection (dijkstra)
//		• Uniform-step breadth-first distance fields (bfs)
//		• One-wall relaxation ("cheat") search on a layered graph (cheat)
//
// ✨ Why choose gridpath?
//
//   - Exact – the closed set is keyed by (cell, facing), never by cell alone
//   - Lean – parent links and a predecessor DAG instead of per-entry path copies
//   - Bounded – every search takes a context and an optional step budget
//   - Safe – a GridMap is immutable; each call owns its own search state
//
// Under the hood:
//
//	gridmap/      — Position, Direction, GridMap, Parse, Render
//	frontier/     — generic min-heap Queue[T]
//	dijkstra/     — Solve, EdgeCost, options, tile mode
//	bfs/          — Distances, Steps, Field
//	cheat/        — Count, Find, Histogram
//	cmd/gridpath/ — `solve`, `cheats`, `serve`, `version`
//
// Quick example:
//
//	m, _ := gridmap.ParseString("#####\n#S..#\n#..E#\n#####\n")
//	res, _ := dijkstra.Solve(m, dijkstra.WithTiles())
//	fmt.Println(res.Cost, len(res.Tiles)) // 1003 4
//
//	baseline, _ := bfs.Steps(m)
//	n, _ := cheat.Count(m, baseline, 2)
package gridpath
