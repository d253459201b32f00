package main

import "github.com/agentary/vshell/cmd"

func main() {
	cmd.Execute()
}
