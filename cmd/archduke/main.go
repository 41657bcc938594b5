package main

import (
	"fmt"
	"os"

	"github.com/archduke/archduke/internal/app"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("archduke %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()
	defer app.CloseLogger()

	app.MustOpenStore()
	defer app.CloseStore()

	repo := app.MustLoadProjects()
	app.MustRunConsole(repo)
}
