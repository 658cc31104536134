package main

import (
	"os"

	"termsnake/cmd"
)

func main() {
	root := cmd.NewRootCmd(cmd.DefaultDeps())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
