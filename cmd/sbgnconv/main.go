// Command sbgnconv converts SBGN-ML maps between schema generations.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgnconv/internal/cli"
	"github.com/matzehuels/sbgnconv/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		report(err)
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// --verbose must take effect before the config is loaded.
	next := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if next == nil {
			return nil
		}
		return next(cmd, args)
	}

	return root.ExecuteContext(ctx)
}

func report(err error) {
	if ctxErr(err) {
		fmt.Fprintln(os.Stderr, "interrupted")
		return
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	if id := errors.ElementOf(err); id != "" {
		fmt.Fprintln(os.Stderr, "element:", id)
	}
}

// exitCode is 130 after Ctrl+C, 2 for documents or arguments the converter
// rejects, and 1 otherwise.
func exitCode(err error) int {
	if ctxErr(err) {
		return 130
	}
	switch errors.HTTPStatus(err) {
	case 400, 404, 422:
		return 2
	}
	return 1
}

func ctxErr(err error) bool {
	return stderrors.Is(err, context.Canceled)
}
