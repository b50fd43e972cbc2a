package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	textimg "github.com/Space-Cadet-Stuff/Custom-Text-as-Images"
	"github.com/Space-Cadet-Stuff/Custom-Text-as-Images/export"
	"github.com/Space-Cadet-Stuff/Custom-Text-as-Images/internal/config"
	"github.com/Space-Cadet-Stuff/Custom-Text-as-Images/preset"
	"github.com/Space-Cadet-Stuff/Custom-Text-as-Images/text"
)

func newRenderCmd(loadCfg func() (config.Config, error)) *cobra.Command {
	var (
		opts       styleOpts
		presetName string
		output     string
		asDIB      bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render styled text to an image file",
		Long: `Render styled text to an image file.

The output format is chosen by the file extension: .png, .jpg, .jpeg,
.bmp or .tif/.tiff. With --preset the named preset supplies the base
style and any flags set on the command line override it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadCfg()
			if err != nil {
				return err
			}

			style := textimg.DefaultStyle()
			if presetName != "" {
				store, err := preset.NewStore(cfg.PresetDir)
				if err != nil {
					return err
				}
				style, err = store.Load(presetName)
				if err != nil {
					return fmt.Errorf("load preset %q: %w", presetName, err)
				}
			}
			if err := opts.apply(cmd, &style); err != nil {
				return err
			}

			var format export.Format
			if !asDIB {
				format, err = export.FormatForPath(output)
				if err != nil {
					return err
				}
			}

			registry := text.NewRegistry(cfg.FontDirs...)
			renderer := textimg.NewRenderer(registry)

			result, err := renderer.Render(cmd.Context(), style)
			if err != nil {
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			if asDIB {
				err = export.EncodeDIB(f, result.Pixmap.ToImage())
			} else {
				err = export.Encode(f, result.Pixmap.ToImage(), format)
			}
			if err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			slog.Info("rendered",
				"output", output,
				"width", style.Canvas.WidthPx,
				"height", style.Canvas.HeightPx)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&presetName, "preset", "p", "", "preset to use as the base style")
	cmd.Flags().StringVarP(&output, "output", "o", "out.png", "output file path")
	cmd.Flags().BoolVar(&asDIB, "dib", false, "write a clipboard DIB payload instead of an image file")
	return cmd
}
