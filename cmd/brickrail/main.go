// Command brickrail writes printable curved track segments and ballast
// plates as binary STL files.
//
//	brickrail segment --radius 56 --angle 22.5
//	brickrail ballast --radius 56 --angle 22.5 --full
//	brickrail catalog
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand once the persistent
// flags are parsed.
type app struct {
	tuningPath string
	verbose    bool
	log        zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "brickrail",
		Short: "Generate curved brick compatible train track for 3D printing",
		Long: `brickrail builds curved track segments and the ballast plates they sit
in. Radii are in studs, angles in degrees. Printer calibration values can be
loaded from a TOML file with --tuning.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
	}
	root.PersistentFlags().StringVar(&a.tuningPath, "tuning", "", "TOML file with printer calibration values")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log meshing details")
	root.AddCommand(newSegmentCmd(a), newBallastCmd(a), newCatalogCmd())
	return root
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor}).
		Level(level).With().Timestamp().Logger()
}
