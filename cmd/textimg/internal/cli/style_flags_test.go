package cli

import (
	"testing"

	"github.com/spf13/cobra"

	textimg "github.com/Space-Cadet-Stuff/Custom-Text-as-Images"
)

func newTestCmd(opts *styleOpts) *cobra.Command {
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	opts.register(cmd)
	return cmd
}

func TestApplyDefaultsLeaveStyleUntouched(t *testing.T) {
	var opts styleOpts
	cmd := newTestCmd(&opts)
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatal(err)
	}

	style := textimg.DefaultStyle()
	style.SizePt = 72
	style.Text = []string{"kept"}
	if err := opts.apply(cmd, &style); err != nil {
		t.Fatal(err)
	}

	if style.SizePt != 72 {
		t.Errorf("SizePt = %d, want 72 (flag not set, preset value should survive)", style.SizePt)
	}
	if len(style.Text) != 1 || style.Text[0] != "kept" {
		t.Errorf("Text = %q, want [kept]", style.Text)
	}
}

func TestApplyOverridesChangedFlags(t *testing.T) {
	var opts styleOpts
	cmd := newTestCmd(&opts)
	err := cmd.ParseFlags([]string{
		"--text", `one\ntwo`,
		"--size", "96",
		"--color", "#ff0000",
		"--margin", "15",
		"--align", "nw",
	})
	if err != nil {
		t.Fatal(err)
	}

	style := textimg.DefaultStyle()
	if err := opts.apply(cmd, &style); err != nil {
		t.Fatal(err)
	}

	if len(style.Text) != 2 || style.Text[0] != "one" || style.Text[1] != "two" {
		t.Errorf("Text = %q, want [one two]", style.Text)
	}
	if style.SizePt != 96 {
		t.Errorf("SizePt = %d, want 96", style.SizePt)
	}
	if style.TextFill.ColorA != (textimg.RGB{R: 255}) {
		t.Errorf("ColorA = %+v, want red", style.TextFill.ColorA)
	}
	want := textimg.Margins{Left: 15, Right: 15, Top: 15, Bottom: 15}
	if style.Margins != want {
		t.Errorf("Margins = %+v, want %+v", style.Margins, want)
	}
	if style.Align != textimg.AlignTopLeft {
		t.Errorf("Align = %q, want %q", style.Align, textimg.AlignTopLeft)
	}
}

func TestApplyGradientGetsSecondColor(t *testing.T) {
	var opts styleOpts
	cmd := newTestCmd(&opts)
	if err := cmd.ParseFlags([]string{"--gradient", "Linear"}); err != nil {
		t.Fatal(err)
	}

	style := textimg.DefaultStyle()
	if err := opts.apply(cmd, &style); err != nil {
		t.Fatal(err)
	}

	if style.TextFill.Mode != textimg.FillLinear {
		t.Fatalf("Mode = %q, want Linear", style.TextFill.Mode)
	}
	if style.TextFill.ColorB == nil {
		t.Fatal("ColorB not filled in for gradient mode")
	}
}

func TestApplyRejectsInvalidStyle(t *testing.T) {
	var opts styleOpts
	cmd := newTestCmd(&opts)
	if err := cmd.ParseFlags([]string{"--size", "5000"}); err != nil {
		t.Fatal(err)
	}

	style := textimg.DefaultStyle()
	if err := opts.apply(cmd, &style); err == nil {
		t.Fatal("expected validation error for size 5000")
	}
}
