package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/MeKo-Tech/colorpicker/internal/display"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is set at build time via -ldflags.
var Version = "1.0.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "colorpicker",
	Short: "Generate and convert color codes",
	Long: heredoc.Doc(`
		colorpicker converts colors between HEX, RGB and HSL and derives new
		colors from them.

		It can convert a hex color, build a lightness palette around a base
		color, and draw uniformly random colors.`),
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("output", string(display.FormatText), "Output format (text, json)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose logging")

	bindFlags(rootCmd.PersistentFlags().Lookup, []flagBinding{
		{"output", "output"},
		{"no_color", "no-color"},
		{"verbose", "verbose"},
	})
}

type flagBinding struct {
	key  string
	flag string
}

func bindFlags(lookup func(string) *pflag.Flag, bindings []flagBinding) {
	for _, bf := range bindings {
		if err := viper.BindPFlag(bf.key, lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("COLORPICKER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// newPrinter builds a display.Printer for cmd from the output settings.
func newPrinter(cmd *cobra.Command) (*display.Printer, error) {
	format, err := display.ParseFormat(viper.GetString("output"))
	if err != nil {
		return nil, err
	}
	return display.NewPrinter(cmd.OutOrStdout(), display.Options{
		Format:  format,
		NoColor: viper.GetBool("no_color"),
	}), nil
}
