// Package cmd implements the CLI application to manage client chart datasets.
package cmd

import (
	"flag"
	"os"

	"chartdata"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&ingestCmd{}, "datasets")
	c.Register(&showCmd{}, "datasets")
	c.Register(&listCmd{}, "datasets")
	c.Register(&thresholdCmd{}, "datasets")
	c.Register(&validateCmd{}, "datasets")
	c.Register(&exportCmd{}, "datasets")

	c.Register(&addClientCmd{}, "clients")
	c.Register(&rmClientCmd{}, "clients")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", envOr("CDT_DATA_DIR", "data"), "Directory holding the per-client dataset files")
var currency = flag.String("currency", envOr("CDT_CURRENCY", "USD"), "ISO 4217 code used to format monetary values")

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// openStore loads the store from the app data directory.
func openStore() (*chartdata.Store, error) {
	return chartdata.LoadStore(*dataDir)
}
