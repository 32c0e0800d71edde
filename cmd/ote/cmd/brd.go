package cmd

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/brd"
	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/script"
	"github.com/spf13/cobra"
)

var brdCmd = &cobra.Command{
	Use:   "brd",
	Short: "Eagle board file operations",
	Long:  `Commands for generating Eagle board files (.brd) from board scripts`,
}

var brdGenCmd = &cobra.Command{
	Use:   "gen <script_file>",
	Short: "Generate a board file from a board script",
	Long: `Parses a board description script, splices in the collaborator-supplied
layer/connector/attribute fragments, and writes the complete .brd document.

The fragments directory must contain layers.xml, connector_library.xml and
brd_attributes.xml; without --fragments the document is emitted with the
fragment slots empty.`,
	Args: cobra.ExactArgs(1),
	RunE: runBrdGen,
}

var brdBomCmd = &cobra.Command{
	Use:   "bom <script_file>",
	Short: "Generate a bill of materials from a board script",
	Long: `Builds the board model from a board description script and writes the
semicolon-delimited bill of materials. The output name must end in .csv.`,
	Args: cobra.ExactArgs(1),
	RunE: runBrdBom,
}

var (
	brdFragmentsDir string
	brdOutput       string
	bomOutput       string
	bomHeading      string
)

func init() {
	rootCmd.AddCommand(brdCmd)
	brdCmd.AddCommand(brdGenCmd)
	brdCmd.AddCommand(brdBomCmd)

	brdGenCmd.Flags().StringVar(&brdFragmentsDir, "fragments", "", "directory containing the fragment XML files")
	brdGenCmd.Flags().StringVarP(&brdOutput, "output", "o", "board.brd", "output board file")

	brdBomCmd.Flags().StringVarP(&bomOutput, "output", "o", "bom.csv", "output BOM file (.csv)")
	brdBomCmd.Flags().StringVar(&bomHeading, "heading", "", "free-text heading row for the BOM")
}

// buildBoard parses the script file and assembles the board model.
func buildBoard(path string) (*brd.Board, error) {
	parser, err := script.NewParser()
	if err != nil {
		return nil, err
	}
	f, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return script.Build(f)
}

func runBrdGen(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	board, err := buildBoard(args[0])
	if err != nil {
		return err
	}
	sugar.Infow("board model built",
		"title", board.Title,
		"elements", len(board.Elements()))

	var frags brd.Fragments
	if brdFragmentsDir != "" {
		frags, err = brd.LoadFragments(brdFragmentsDir)
		if err != nil {
			return err
		}
		sugar.Infow("fragments loaded", "dir", brdFragmentsDir)
	}

	if err := board.WriteBRDFile(brdOutput, frags); err != nil {
		return err
	}
	sugar.Infow("board file written", "path", brdOutput)

	fmt.Printf("Board written to %s\n", brdOutput)
	return nil
}

func runBrdBom(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	board, err := buildBoard(args[0])
	if err != nil {
		return err
	}

	if err := board.WriteBOMFile(bomOutput, bomHeading); err != nil {
		return err
	}
	logger.Sugar().Infow("BOM written", "path", bomOutput)

	msg := "BOM written to " + bomOutput
	rule := strings.Repeat("=", len(msg))
	fmt.Printf("%s\n%s\n%s\n", rule, msg, rule)
	return nil
}
