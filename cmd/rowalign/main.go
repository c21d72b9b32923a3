// Command rowalign aligns the rows of two tabular files and prints which
// rows matched, which were added and which were removed.
package main

import (
	"context"
	"os"

	"github.com/katalvlaran/rowalign/cmd/rowalign/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	a := app.New(version)

	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := a.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
