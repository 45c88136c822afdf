package main

import "github.com/Jetraw/bioformats/cmd/jetraw-tool/cmd"

func main() {
	cmd.Execute()
}
