package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/colorpicker/internal/generator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate random colors",
	Long:  "Generate colors with each RGB channel drawn uniformly from 0-255.",
	Args:  cobra.NoArgs,
	RunE:  runRandom,
}

func init() {
	rootCmd.AddCommand(randomCmd)

	randomCmd.Flags().IntP("count", "n", generator.DefaultRandomCount, "Number of colors to generate")
	randomCmd.Flags().Bool("preview", false, "Show a color swatch for each color")
	randomCmd.Flags().Int64("seed", 0, "Seed for reproducible output (0 picks a random seed)")

	bindFlags(randomCmd.Flags().Lookup, []flagBinding{
		{"random.count", "count"},
		{"random.preview", "preview"},
		{"random.seed", "seed"},
	})
}

func runRandom(cmd *cobra.Command, args []string) error {
	count := viper.GetInt("random.count")
	preview := viper.GetBool("random.preview")
	seed := viper.GetInt64("random.seed")

	if logger == nil {
		initLogging()
	}

	gen := generator.New(nil)
	if seed != 0 {
		gen = generator.NewSeeded(uint64(seed))
	}

	colors, err := gen.RandomN(generator.Options{Count: count})
	if err != nil {
		return fmt.Errorf("failed to generate random colors: %w", err)
	}

	logger.Debug("Random colors generated", "count", len(colors), "seed", seed)

	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	return printer.Random(colors, preview)
}
