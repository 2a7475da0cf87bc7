package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Stilmant/ChronoClean-sub001/internal/config"
	"github.com/Stilmant/ChronoClean-sub001/internal/fsops"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize configuration",
	Long:  `Inspect the effective configuration or write a starter config file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after merging the config file over the defaults.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if jsonOutput {
			out, err := formatJSON(cfg)
			if err != nil {
				return err
			}
			PrintInfo(out)
			return nil
		}

		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a config file with the default settings",
	Long: `Write the built-in defaults to a config file (chronoclean.yaml by default)
as a starting point for customization.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "chronoclean.yaml"
		if len(args) > 0 {
			path = args[0]
		}

		fs := fsops.NewRealFS()
		if !configInitForce {
			exists, err := fs.Exists(path)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}

		data, err := config.Default().Marshal()
		if err != nil {
			return err
		}
		if err := fs.AtomicWrite(path, data, 0644); err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Wrote %s", path))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
