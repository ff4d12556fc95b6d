package sink

import (
	"bytes"
	"image/png"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/waffle/pkg/render/layout"
	"github.com/matzehuels/waffle/pkg/render/styles"
	"github.com/matzehuels/waffle/pkg/waffle"
)

func testLayout(t *testing.T) layout.Layout {
	t.Helper()
	res, err := waffle.Plan([]float64{4, 2}, waffle.Grid{Columns: 3, Style: waffle.NewLine, Vertical: true})
	if err != nil {
		t.Fatal(err)
	}
	l := layout.Build(res, 120, 90, layout.WithColors([]string{"#66c2a5", "#fc8d62"}), layout.WithTitle("Pets & Co"))
	l.Background = "#ffffff"
	return l
}

func TestRenderSVG(t *testing.T) {
	l := testLayout(t)
	svg := string(RenderSVG(l))

	for _, s := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 120.0 90.0" width="120" height="90">`,
		`<title>Pets &amp; Co</title>`,
		`class="background"`,
		`fill="#66c2a5"`,
		`fill="#fc8d62"`,
		"</svg>",
	} {
		if !strings.Contains(svg, s) {
			t.Errorf("SVG missing %q", s)
		}
	}
	if got := strings.Count(svg, "<rect id="); got != 9 {
		t.Errorf("blocks = %d, want 9", got)
	}
	if got := strings.Count(svg, `fill-opacity="0.00"`); got != 3 {
		t.Errorf("transparent blocks = %d, want 3", got)
	}
}

func TestRenderSVGOptions(t *testing.T) {
	l := testLayout(t)
	l.Blocks[0].Glyph = "x"

	svg := string(RenderSVG(l, WithStyle(styles.Rounded{}), WithBackground("#000000")))
	if !strings.Contains(svg, `rx="`) {
		t.Error("rounded style should round corners")
	}
	if !strings.Contains(svg, `fill="#000000"/>`) {
		t.Error("background option should override the layout background")
	}
	if !strings.Contains(svg, `>x</text>`) {
		t.Error("glyph block should be drawn as text")
	}
}

func TestRenderPNG(t *testing.T) {
	l := testLayout(t)
	l.Blocks[1].Glyph = "A"

	data, err := RenderPNG(l, WithScale(1), WithPNGStyle(styles.Rounded{}))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 90 {
		t.Errorf("size = %dx%d, want 120x90", b.Dx(), b.Dy())
	}

	data, err = RenderPNG(l)
	if err != nil {
		t.Fatal(err)
	}
	img, _ = png.Decode(bytes.NewReader(data))
	if b := img.Bounds(); b.Dx() != 240 {
		t.Errorf("default scale width = %d, want 240", b.Dx())
	}
}

func TestRenderPNGNonASCIIGlyphFallsBackToBlock(t *testing.T) {
	l := testLayout(t)
	i := slices.IndexFunc(l.Blocks, func(b layout.Block) bool { return b.Colored })
	if i < 0 {
		t.Fatal("no colored block")
	}
	b := l.Blocks[i]
	l.Blocks[i].Glyph = "★"

	data, err := RenderPNG(l, WithScale(1))
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	want, _ := parseHex(b.Color)
	wr, wg, wb, _ := want.RGBA()
	gr, gg, gb, _ := img.At(int(b.CenterX()), int(b.CenterY())).RGBA()
	if wr>>8 != gr>>8 || wg>>8 != gg>>8 || wb>>8 != gb>>8 {
		t.Errorf("block center = %v, want the block color %s", img.At(int(b.CenterX()), int(b.CenterY())), b.Color)
	}
}

func TestRenderPNGErrors(t *testing.T) {
	l := testLayout(t)
	if _, err := RenderPNG(l, WithScale(0)); err == nil {
		t.Error("zero scale should fail")
	}

	l.Blocks[0].Color = "teal"
	if _, err := RenderPNG(l); err == nil {
		t.Error("non-hex color should fail")
	}
}

func TestRenderJSON(t *testing.T) {
	l := testLayout(t)
	data, err := RenderJSON(l)
	if err != nil {
		t.Fatal(err)
	}
	back, err := layout.UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout() error = %v", err)
	}
	if len(back.Blocks) != len(l.Blocks) || back.Title != l.Title {
		t.Errorf("round trip lost data: %+v", back)
	}
}

func TestRenderTerminal(t *testing.T) {
	l := testLayout(t)
	out := RenderTerminal(l)

	if got := strings.Count(out, terminalBlock); got != 6 {
		t.Errorf("colored cells = %d, want 6:\n%s", got, out)
	}
	lines := strings.Split(out, "\n")
	// Title, blank line, then three grid rows.
	if len(lines) != 5 {
		t.Errorf("lines = %d, want 5:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Pets & Co") {
		t.Errorf("first line = %q, want the title", lines[0])
	}
}

func TestRenderTerminalPanels(t *testing.T) {
	res, err := waffle.Plan([]float64{1}, waffle.Grid{Rows: 1, Columns: 1})
	if err != nil {
		t.Fatal(err)
	}
	cell := layout.Build(res, 10, 10)
	l := layout.Compose(20, 20, 2, 2, []layout.Cell{
		{Row: 0, Col: 0, Layout: cell},
		{Row: 0, Col: 1, Layout: cell},
		{Row: 1, Col: 0, Layout: cell},
	})

	out := RenderTerminal(l)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2:\n%s", len(lines), out)
	}
	if strings.Count(lines[0], terminalBlock) != 2 || strings.Count(lines[1], terminalBlock) != 1 {
		t.Errorf("unexpected arrangement:\n%s", out)
	}
}
