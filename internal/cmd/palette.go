package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/MeKo-Tech/colorpicker/internal/colormodel"
	"github.com/MeKo-Tech/colorpicker/internal/generator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var paletteCmd = &cobra.Command{
	Use:   "palette <hex>",
	Short: "Generate a lightness palette from a base color",
	Long: heredoc.Doc(`
		Generate a palette of colors sharing the hue and saturation of the
		base color, stepping lightness by 10 points per entry around the
		base lightness.`),
	Args: cobra.ExactArgs(1),
	RunE: runPalette,
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().IntP("count", "n", generator.DefaultPaletteCount, "Number of colors to generate")
	paletteCmd.Flags().Bool("preview", false, "Show a color swatch for each entry")

	bindFlags(paletteCmd.Flags().Lookup, []flagBinding{
		{"palette.count", "count"},
		{"palette.preview", "preview"},
	})
}

func runPalette(cmd *cobra.Command, args []string) error {
	count := viper.GetInt("palette.count")
	preview := viper.GetBool("palette.preview")

	if logger == nil {
		initLogging()
	}

	base, err := colormodel.ParseColor(args[0])
	if err != nil {
		return err
	}

	palette, err := generator.Palette(base.RGB, generator.Options{Count: count})
	if err != nil {
		return fmt.Errorf("failed to generate palette: %w", err)
	}

	logger.Debug("Palette generated",
		"base", base.Hex,
		"base_hsl", base.HSL.String(),
		"count", len(palette),
	)

	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	return printer.Palette(base, palette, preview)
}
