package main

import "github.com/itsmostafa/svgflat/cmd"

func main() {
	cmd.Execute()
}
