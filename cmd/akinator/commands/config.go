package commands

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/config"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/errors"
)

// ConfigCmd groups configuration commands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration",
	Long: `Show the fully resolved configuration: defaults merged with config
files and AKINATOR_* environment variables.

Examples:
  akinator config show
  akinator config show --format toml`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	RunE:  runConfigShow,
}

var configFormatFlag string

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	configShowCmd.Flags().StringVar(&configFormatFlag, "format", "yaml", "Output format: yaml or toml")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if _, err := config.Load(); err != nil {
		return err
	}
	settings := config.GetViper().AllSettings()

	var out []byte
	var err error
	switch configFormatFlag {
	case "yaml":
		out, err = yaml.Marshal(settings)
	case "toml":
		out, err = toml.Marshal(settings)
	default:
		return errors.Newf("unknown format %q (want yaml or toml)", configFormatFlag)
	}
	if err != nil {
		return errors.Wrap(err, "failed to render configuration")
	}

	fmt.Print(string(out))
	return nil
}
