package main

import "slicer-runner/cmd"

func main() {
	cmd.Execute()
}
