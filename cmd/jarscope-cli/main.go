package main

import "jarscope/cmd/jarscope-cli/cmd"

func main() {
	cmd.Execute()
}
