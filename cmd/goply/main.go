package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goply/version"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "goply",
		Short: "A CLI tool for inspecting binary PLY point clouds",
		Long: `goply reads binary little-endian PLY point clouds as produced by 3D scanning apps.
It reports the declared vertex count and the bounding box and center of a
sampled subset of the vertices, without loading the whole cloud into memory.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newInfoCmd(), newCompletionCmd())
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
