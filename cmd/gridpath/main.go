// Command gridpath solves turn-penalized grid mazes and counts wall shortcuts.
package main

func main() {
	Execute()
}
