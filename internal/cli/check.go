package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sbgnio "github.com/matzehuels/sbgnconv/pkg/io"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
)

// checkCommand creates the check command, which reports the schema
// generation each file declares without parsing it.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "check [file...]",
		Short:             "Detect the SBGN-ML generation of documents",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: sbgnFileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				v, err := sbgnml.DetectFile(path)
				if err != nil {
					failed++
					c.Logger.Debug("detect failed", "path", path, "error", err)
					printError("%s %s", path, StyleDim.Render(err.Error()))
					continue
				}
				printSuccess("%s %s", path, StyleHighlight.Render(sbgnio.FormatOf(v)))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files are not SBGN-ML", failed, len(args))
			}
			return nil
		},
	}
}
