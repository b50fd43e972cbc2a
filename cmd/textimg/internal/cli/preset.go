package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	textimg "github.com/Space-Cadet-Stuff/Custom-Text-as-Images"
	"github.com/Space-Cadet-Stuff/Custom-Text-as-Images/internal/config"
	"github.com/Space-Cadet-Stuff/Custom-Text-as-Images/preset"
)

func newPresetCmd(loadCfg func() (config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved style presets",
	}
	cmd.AddCommand(newPresetListCmd(loadCfg))
	cmd.AddCommand(newPresetSaveCmd(loadCfg))
	cmd.AddCommand(newPresetShowCmd(loadCfg))
	cmd.AddCommand(newPresetDeleteCmd(loadCfg))
	return cmd
}

func openStore(loadCfg func() (config.Config, error)) (*preset.Store, error) {
	cfg, err := loadCfg()
	if err != nil {
		return nil, err
	}
	return preset.NewStore(cfg.PresetDir)
}

func newPresetListCmd(loadCfg func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(loadCfg)
			if err != nil {
				return err
			}
			names, err := store.List()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no presets saved")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newPresetSaveCmd(loadCfg func() (config.Config, error)) *cobra.Command {
	var opts styleOpts

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save the style described by the flags as a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(loadCfg)
			if err != nil {
				return err
			}
			style := textimg.DefaultStyle()
			if err := opts.apply(cmd, &style); err != nil {
				return err
			}
			if err := store.Save(args[0], style); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved preset %q\n", args[0])
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

func newPresetShowCmd(loadCfg func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a preset's style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(loadCfg)
			if err != nil {
				return err
			}
			style, err := store.Load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "text: %q\n", style.Text)
			fmt.Fprintf(out, "font: %s  size: %dpt\n", fontLabel(style.Font), style.SizePt)
			fmt.Fprintf(out, "fill: %s\n", fillLabel(style.TextFill))
			if style.Outline.Enabled() {
				fmt.Fprintf(out, "outline: %s %dpx\n", style.Outline.Color.Hex(), style.Outline.ThicknessPx)
			}
			if style.Glow.Enabled() {
				fmt.Fprintf(out, "glow: %s intensity %d%% radius %dpx\n",
					style.Glow.Color.Hex(), style.Glow.IntensityPct, style.Glow.RadiusPx)
			}
			fmt.Fprintf(out, "background: %s opacity %d%%\n",
				fillLabel(style.Background.Fill), style.Background.OpacityPct)
			fmt.Fprintf(out, "canvas: %dx%d  align: %s\n",
				style.Canvas.WidthPx, style.Canvas.HeightPx, style.Align)
			return nil
		},
	}
}

func newPresetDeleteCmd(loadCfg func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(loadCfg)
			if err != nil {
				return err
			}
			if err := store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted preset %q\n", args[0])
			return nil
		},
	}
}

func fontLabel(name string) string {
	if name == "" {
		return "(default)"
	}
	return name
}

func fillLabel(f textimg.FillSpec) string {
	if f.Mode == textimg.FillSolid || f.ColorB == nil {
		return f.ColorA.Hex()
	}
	return fmt.Sprintf("%s %s->%s angle %.0f spread %d%%",
		f.Mode, f.ColorA.Hex(), f.ColorB.Hex(), f.AngleDeg, f.SpreadPct)
}
