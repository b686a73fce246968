package commands

import "fmt"

// version is overridden at build time via -ldflags.
var version = "dev"

type VersionCommand struct{}

func (command *VersionCommand) Execute(args []string) error {
	fmt.Printf("wordforge %s\n", version)
	return nil
}
