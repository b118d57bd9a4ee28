package main

import "github.com/isaacphi/adminshell/internal/ui/cli"

func main() {
	cli.Execute()
}
