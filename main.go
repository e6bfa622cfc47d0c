package main

import "ghseed/internal/cmd"

func main() {
	cmd.Execute()
}
