package main

import "github.com/agentic-research/wayfind/cmd"

func main() {
	cmd.Execute()
}
