package main

import "tasktagger/cmd"

func main() {
	cmd.Execute()
}
