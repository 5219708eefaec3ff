package main

import "svw.info/sudoku-solve/internal/cli"

func main() {
	cli.Execute()
}
