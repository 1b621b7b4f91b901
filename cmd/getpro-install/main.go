package main

import "github.com/2getpro/installer/pkg/cli/cmd"

func main() {
	cmd.Execute()
}
