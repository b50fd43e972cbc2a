package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Space-Cadet-Stuff/Custom-Text-as-Images/internal/config"
	"github.com/Space-Cadet-Stuff/Custom-Text-as-Images/text"
)

func newFontsCmd(loadCfg func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List the fonts found in the configured font directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadCfg()
			if err != nil {
				return err
			}
			registry := text.NewRegistry(cfg.FontDirs...)
			names := registry.Names()
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no fonts found, renders use the bundled fallback")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
