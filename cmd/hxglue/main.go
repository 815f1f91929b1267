package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleetcore/hxglue/internal/errors"
)

// verbose is shared by every subcommand through a persistent flag.
var verbose bool

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬ ┬─┐ ┬┌─┐┬  ┬ ┬┌─┐
  ├─┤┌┴┬┘│ ┬│  │ │├┤
  ┴ ┴┴ └─└─┘┴─┘└─┘└─┘
`

func main() {
	if err := rootCmd().Execute(); err != nil {
		report(os.Stderr, err, verbose)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hxglue",
		Short: "Toasts and live partial updates for server-rendered pages",
		Long: `hxglue hosts the client half of a server-rendered page in Go.

It performs htmx-style exchanges against an upstream application,
swaps the returned fragments into the page, shows the toasts the
upstream requests through HX-Trigger, and re-initialises bindings
in swapped content.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logs and full error reports")

	root.AddCommand(
		serveCmd(),
		decodeCmd(),
		versionCmd(),
	)
	return root
}

// report writes err to w. Structured errors are printed in full only
// when verbose; otherwise as a single line.
func report(w io.Writer, err error, verbose bool) {
	var e *errors.Error
	if verbose || !stderrors.As(err, &e) {
		errors.Print(w, err)
		return
	}
	fmt.Fprintln(w, e.FormatCompact())
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
