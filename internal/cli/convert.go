package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgnconv/pkg/errors"
	sbgnio "github.com/matzehuels/sbgnconv/pkg/io"
	"github.com/matzehuels/sbgnconv/pkg/pipeline"
)

// convertOpts holds the command-line flags of the convert command. Flags
// that were not set fall back to the [read] and [write] config sections.
type convertOpts struct {
	output        string
	from          string
	to            string
	noRender      bool
	noAnnotations bool
	noNotes       bool
	noCache       bool
	refresh       bool
}

// pipelineOptions merges the flags that were set into the config defaults.
func (o *convertOpts) pipelineOptions(cmd *cobra.Command, cfg *Config) pipeline.Options {
	opts := cfg.pipelineOptions()
	flags := cmd.Flags()
	if flags.Changed("from") {
		opts.From = o.from
	}
	if flags.Changed("to") {
		opts.To = o.to
	}
	if flags.Changed("no-render") {
		opts.NoRenderInformation = o.noRender
	}
	if flags.Changed("no-annotations") {
		opts.NoAnnotations = o.noAnnotations
	}
	if flags.Changed("no-notes") {
		opts.NoNotes = o.noNotes
	}
	opts.Refresh = o.refresh
	return opts
}

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert an SBGN-ML document to another schema generation",
		Long: `Convert an SBGN-ML document to another schema generation.

The document is read into a model and a layout and written again, by default
as SBGN-ML 0.3. Styles, annotations and notes are carried over unless one of
the --no-* flags is given. Without --output the result goes to stdout.

Results are cached locally for faster subsequent runs.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: sbgnFileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			po := opts.pipelineOptions(cmd, c.config)
			if err := po.ValidateForConvert(); err != nil {
				return err
			}
			return c.runConvert(cmd.Context(), args[0], po, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.from, "from", "", "expected input format (any generation if empty)")
	cmd.Flags().StringVarP(&opts.to, "to", "t", pipeline.DefaultTo, "output format: "+formatList())
	cmd.Flags().BoolVar(&opts.noRender, "no-render", false, "drop render information (styles and colors)")
	cmd.Flags().BoolVar(&opts.noAnnotations, "no-annotations", false, "drop annotations")
	cmd.Flags().BoolVar(&opts.noNotes, "no-notes", false, "drop notes")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached results")
	_ = cmd.RegisterFlagCompletionFunc("to", completeValues(sbgnio.Formats()))
	_ = cmd.RegisterFlagCompletionFunc("from", completeValues(sbgnio.Formats()))

	return cmd
}

func (c *CLI) runConvert(ctx context.Context, input string, po pipeline.Options, opts convertOpts) error {
	logger := inputLogger(c.Logger, input)

	doc, err := readInput(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache, nil)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	po.Source = filepath.Base(input)
	po.Logger = logger

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Converting %s...", po.Source))
	spinner.Start()
	res, err := runner.Convert(ctx, doc, po)
	spinner.Stop()
	if err != nil {
		return fmt.Errorf("convert %s: %w", input, err)
	}

	if err := writeOutput(opts.output, res.Document); err != nil {
		return err
	}
	if opts.output == "" {
		prog.done(fmt.Sprintf("Converted %s from %s to %s", po.Source, res.From, res.To), "cached", res.CacheHit)
		return nil
	}

	printSuccess("Converted %s %s %s", StyleValue.Render(res.From), iconArrow, StyleValue.Render(res.To))
	printStats(res.Write.Glyphs, res.Write.Arcs, res.CacheHit)
	printFile(opts.output)
	printNextStep("Preview it", "sbgnconv preview "+opts.output)
	for _, sk := range res.Read.Skipped {
		printWarning("skipped %s (%s)", sk.ID, sk.Class)
	}
	return nil
}

// =============================================================================
// Input & Output Helpers
// =============================================================================

// readInput reads a document from path, or from stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}

// formatList joins the registered document formats for help texts.
func formatList() string {
	return strings.Join(sbgnio.Formats(), ", ")
}

// defaultOutput derives an output path from input by replacing its extension.
func defaultOutput(input, ext string) string {
	if input == "-" {
		return ""
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + ext
}
