package main

import "github.com/pixbench/pixbench/cmd"

func main() {
	cmd.Execute()
}
