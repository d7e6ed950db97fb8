package main

import "github.com/Amorelli-Matthew/Final-Schedule-Generator/cmd"

func main() {
	cmd.Execute()
}
