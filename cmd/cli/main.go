package main

import (
	"mb/cmd/cli/app/cmd"
)

func main() {
	cmd.Execute()
}
