package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgnconv/pkg/dump"
	"github.com/matzehuels/sbgnconv/pkg/pipeline"
)

const formatText = "text"

// inspectOpts holds the command-line flags of the inspect command.
type inspectOpts struct {
	format      string
	output      string
	interactive bool
	noCache     bool
}

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarize the elements of an SBGN-ML map",
		Long: `Summarize the elements of an SBGN-ML map.

The text format prints the map bounds and element counts per kind. The json,
yaml and msgpack formats encode the full element list, including parents,
references, bounding boxes and annotations. With --interactive the elements
can be browsed in the terminal.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: sbgnFileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = c.config.Inspect.Format
			}
			if err := validateInspectFormat(opts.format); err != nil {
				return err
			}
			return c.runInspect(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, json, yaml, msgpack")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse elements interactively")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	_ = cmd.RegisterFlagCompletionFunc("format", completeValues(inspectFormats()))

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input string, opts inspectOpts) error {
	doc, err := readInput(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache, nil)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	dumpFormat := opts.format
	if dumpFormat == formatText {
		dumpFormat = pipeline.DefaultDumpFormat
	}
	res, err := runner.Inspect(ctx, doc, pipeline.Options{
		DumpFormat: dumpFormat,
		Source:     filepath.Base(input),
		Logger:     c.Logger,
	})
	if err != nil {
		return fmt.Errorf("inspect %s: %w", input, err)
	}

	if opts.interactive {
		m := NewElementListModel(res.Summary)
		if _, err := tea.NewProgram(m).Run(); err != nil {
			return err
		}
		return nil
	}

	if opts.format != formatText {
		return writeOutput(opts.output, res.Data)
	}
	out, err := openOutput(opts.output)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.output, err)
	}
	defer out.Close()
	writeSummary(out, res.Summary)
	return nil
}

// writeSummary prints the header and the kind counts of s.
func writeSummary(w io.Writer, s dump.Summary) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	line := func(k, v string) {
		fmt.Fprintln(w, keyStyle.Render(k)+" "+StyleValue.Render(v))
	}

	fmt.Fprintln(w, StyleTitle.Render(mapTitle(s)))
	line("Language", s.Language)
	if s.Version != "" {
		line("Version", s.Version)
	}
	line("Bounds", fmt.Sprintf("%g,%g %gx%g", s.Bounds.X, s.Bounds.Y, s.Bounds.W, s.Bounds.H))
	line("Elements", strconv.Itoa(len(s.Elements)))
	if len(s.Annotations) > 0 {
		line("Annotations", strconv.Itoa(len(s.Annotations)))
	}
	fmt.Fprintln(w)

	rows := make([][]string, 0, len(s.Counts))
	for _, k := range s.Kinds() {
		rows = append(rows, []string{k, strconv.Itoa(s.Counts[k])})
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "Count").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return StyleNumber.Align(lipgloss.Right)
			}
			return lipgloss.NewStyle()
		})
	fmt.Fprintln(w, t.Render())

	for _, sk := range s.Skipped {
		fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf("skipped %s (%s)", sk.ID, sk.Class)))
	}
}

func mapTitle(s dump.Summary) string {
	if s.ID != "" {
		return "Map " + s.ID
	}
	return "Map"
}
