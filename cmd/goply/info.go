package main

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goply/pkg/analysis"
	"github.com/philipparndt/goply/pkg/config"
	"github.com/philipparndt/goply/pkg/ply"
	"github.com/philipparndt/goply/pkg/watcher"
)

const watchDebounce = 500 * time.Millisecond

type infoOptions struct {
	configPath string
	stride     int
	format     string
	watch      bool
	verbose    bool
}

func newInfoCmd() *cobra.Command {
	opts := &infoOptions{}

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Display the vertex count and bounding box of a PLY file",
		Long: `Show the declared vertex count, the bounding box of every Nth vertex
(N is the sample stride, 1000 by default) and the center of that box.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completePLYFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "analyzer config file (INI, [analyze] section)")
	flags.IntVarP(&opts.stride, "stride", "s", analysis.DefaultSampleStride, "sample every Nth vertex for the bounding box (1 = all)")
	flags.StringVarP(&opts.format, "format", "f", analysis.FormatText, "output format: text or yaml")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "re-run the analysis whenever the file is written")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print diagnostics to stderr")

	return cmd
}

// resolveConfig layers the config file and explicitly set flags over the defaults
func resolveConfig(cmd *cobra.Command, opts *infoOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("stride") {
		cfg.Analyze.SampleStride = opts.stride
	}
	if cmd.Flags().Changed("format") {
		cfg.Analyze.Format = opts.format
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runInfo(cmd *cobra.Command, opts *infoOptions, filename string) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	if opts.verbose {
		fmt.Fprintf(stderr, "File: %s\n", filename)
		fmt.Fprintf(stderr, "Sample stride: %d, format: %s\n", cfg.Analyze.SampleStride, cfg.Analyze.Format)
	}

	if err := analyzeFile(cmd.OutOrStdout(), stderr, filename, cfg, opts.verbose); err != nil {
		return err
	}

	if !opts.watch {
		return nil
	}
	return watchFile(cmd, filename, cfg, opts.verbose)
}

func analyzeFile(out, stderr io.Writer, filename string, cfg *config.Config, verbose bool) error {
	rep, err := analysis.NewReporter(cfg.Analyze.Format, out)
	if err != nil {
		return err
	}

	result, err := analysis.AnalyzeFile(filename, cfg.Options(), rep)
	if errors.Is(err, ply.ErrNotPLY) {
		fmt.Fprintln(out, "Not a PLY file")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", filename, err)
	}

	if verbose {
		fmt.Fprintf(stderr, "Header: %d bytes, sampled %d of %d vertices, diagonal %s\n",
			result.Header.Length, result.Sampled, result.VertexCount(), analysis.FormatFixed(result.Bounds.Diagonal()))
		if !result.Header.HasVertexElement {
			fmt.Fprintln(stderr, "Warning: header has no 'element vertex' line")
		}
	}
	return nil
}

func watchFile(cmd *cobra.Command, filename string, cfg *config.Config, verbose bool) error {
	fw, err := watcher.NewFileWatcher(watchDebounce)
	if err != nil {
		return err
	}
	defer fw.Close()

	out, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	var mu sync.Mutex
	callback := func(changed string) {
		mu.Lock()
		defer mu.Unlock()

		fmt.Fprintf(out, "\nFile changed: %s\n", changed)
		if err := analyzeFile(out, stderr, filename, cfg, verbose); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
	}

	if err := fw.Watch([]string{filename}, callback); err != nil {
		return err
	}

	fmt.Fprintf(stderr, "Watching file for changes: %s\n", filename)
	return fw.Run(cmd.Context())
}
