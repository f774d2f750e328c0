package cmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/MeKo-Tech/colorpicker/internal/colormodel"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var convertCmd = &cobra.Command{
	Use:   "convert <hex>",
	Short: "Convert a hex color to RGB and HSL",
	Long: heredoc.Doc(`
		Convert a hex color to its RGB and HSL forms.

		Accepts 6-digit (#ff8800) and 3-digit shorthand (#f80) colors, with or
		without the leading '#'.`),
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().Bool("preview", true, "Show a color swatch after the conversion")

	bindFlags(convertCmd.Flags().Lookup, []flagBinding{
		{"convert.preview", "preview"},
	})
}

func runConvert(cmd *cobra.Command, args []string) error {
	preview := viper.GetBool("convert.preview")

	if logger == nil {
		initLogging()
	}

	color, err := colormodel.ParseColor(args[0])
	if err != nil {
		return err
	}

	logger.Debug("Converted color",
		"input", args[0],
		"hex", color.Hex,
		"rgb", color.RGB.String(),
		"hsl", color.HSL.String(),
	)

	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	return printer.Conversion(color, preview)
}
