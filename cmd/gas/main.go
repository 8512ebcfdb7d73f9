// Command gas is the Git AI Sidekick: it explains diffs, writes commit
// messages, and opens pull requests using an AI model.
package main

import (
	"os"

	"github.com/randalmurphal/gas/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
