package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/utemplates/internal/config"
	"github.com/vango-dev/utemplates/pkg/convert"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create configuration files",
	}
	cmd.AddCommand(configCheckCmd(), configInitCmd(), configConversionsCmd())
	return cmd
}

func configCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a configuration file and resolve its conversions",
		Long: `Validate a configuration file and resolve its conversions.

Without an argument the file is located the same way render does:
` + config.EnvConfigPath + `, then ` + config.ConfigFileName + `.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg *config.Config
				err error
			)
			if len(args) == 1 {
				cfg, err = config.LoadFile(args[0])
			} else {
				cfg, err = config.LoadFromEnv()
			}
			if err != nil {
				return err
			}

			p, err := cfg.Pipeline(convert.Default)
			if err != nil {
				return err
			}

			if cfg.Path() == "" {
				success(cmd, "No configuration file found, no conversions")
				return nil
			}
			success(cmd, "%s: %d conversion(s)", cfg.Path(), p.Len())
			for i, name := range p.Names() {
				info(cmd, "%d. %s", i+1, name)
			}
			return nil
		},
	}
}

func configInitCmd() *cobra.Command {
	var (
		builtins bool
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ConfigFileName
			if len(args) == 1 {
				path = args[0]
			}
			if config.Exists(path) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			cfg := config.New()
			if builtins {
				cfg.Conversions = []string{
					convert.NilEmpty,
					convert.TimeRFC3339,
					convert.BytesUTF8,
					convert.FloatCompact,
					convert.Stringer,
				}
			}
			if err := cfg.SaveTo(path); err != nil {
				return err
			}
			success(cmd, "Created %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&builtins, "builtins", false, "List the built-in conversions")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

func configConversionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conversions",
		Short: "List registered conversion names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range convert.Default.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
