package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgnconv/pkg/pipeline"
)

// previewOpts holds the command-line flags of the preview command.
type previewOpts struct {
	output   string
	format   string
	detailed bool
	scale    float64
	noCache  bool
	refresh  bool
}

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	opts := previewOpts{
		format: pipeline.DefaultPreviewFormat,
		scale:  pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Draw an SBGN-ML map with Graphviz",
		Long: `Draw an SBGN-ML map with Graphviz.

Glyphs keep the positions and sizes of the document layout; arcs are drawn
as edges between them. The dot format prints the Graphviz source, svg is
rendered in-process, and pdf and png are converted from the SVG with
rsvg-convert.

Text formats go to stdout without --output; pdf and png are written next to
the input file.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: sbgnFileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			po := pipeline.Options{
				PreviewFormat: opts.format,
				Detailed:      opts.detailed,
				Scale:         opts.scale,
				Refresh:       opts.refresh,
			}
			if err := po.ValidateForPreview(); err != nil {
				return err
			}
			return c.runPreview(cmd.Context(), args[0], po, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, pdf, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label glyphs with id and kind")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "png scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached results")
	_ = cmd.RegisterFlagCompletionFunc("format", completeValues(pipeline.PreviewFormats()))

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input string, po pipeline.Options, opts previewOpts) error {
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
	po.Logger = inputLogger(c.Logger, input)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Drawing %s...", po.Source))
	spinner.Start()
	res, err := runner.Preview(ctx, doc, po)
	if err != nil {
		spinner.StopWithError("Preview failed")
		return fmt.Errorf("preview %s: %w", input, err)
	}
	spinner.Stop()

	output := previewOutput(opts.output, input, res.Format)
	if err := writeOutput(output, res.Data); err != nil {
		return err
	}
	if output != "" {
		printSuccess("Preview %s", StyleHighlight.Render(res.Format))
		printStats(0, 0, res.CacheHit)
		printFile(output)
	}
	return nil
}

// previewOutput picks the output path: the --output flag, else a sibling of
// input for binary formats, else stdout ("").
func previewOutput(output, input, format string) string {
	if output != "" {
		return output
	}
	switch format {
	case pipeline.FormatPDF, pipeline.FormatPNG:
		return defaultOutput(input, format)
	}
	return ""
}
