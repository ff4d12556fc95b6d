package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/waffle/pkg/errors"
)

func TestRenderBlock(t *testing.T) {
	block := Block{ID: "p0-b3", Category: 2, X: 10, Y: 20, W: 30, H: 40, Fill: "#66c2a5", Opacity: 1}

	tests := []struct {
		name     string
		style    Style
		contains []string
		absent   []string
	}{
		{
			name:  "simple",
			style: Simple{},
			contains: []string{
				`<rect id="p0-b3"`,
				`class="block cat-2"`,
				`x="10.00"`,
				`y="20.00"`,
				`width="30.00"`,
				`height="40.00"`,
				`fill="#66c2a5"`,
			},
			absent: []string{"rx=", "fill-opacity"},
		},
		{
			name:     "rounded",
			style:    Rounded{},
			contains: []string{`rx="6.00"`, `ry="6.00"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.style.RenderBlock(&buf, block)
			out := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(out, s) {
					t.Errorf("output should not contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestRenderTransparentBlock(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderBlock(&buf, Block{ID: "pad", W: 1, H: 1, Fill: "#000000"})
	if !strings.Contains(buf.String(), `fill-opacity="0.00"`) {
		t.Errorf("padding block should be transparent: %s", buf.String())
	}
}

func TestRenderGlyph(t *testing.T) {
	var buf bytes.Buffer
	Rounded{}.RenderGlyph(&buf, Block{ID: "g", CX: 5, CY: 6, W: 10, H: 20, Fill: "#ff0000", Opacity: 1, Glyph: "<"})
	out := buf.String()
	for _, s := range []string{`<text id="g"`, `x="5.00"`, `y="6.00"`, `font-size="9.00"`, `&lt;</text>`} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestSimpleRenderDefs(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderDefs(&buf)
	if buf.Len() != 0 {
		t.Errorf("RenderDefs() wrote %d bytes, want 0", buf.Len())
	}
}

func TestByName(t *testing.T) {
	if s, err := ByName(""); err != nil || s != (Simple{}) {
		t.Errorf("ByName(\"\") = %v, %v", s, err)
	}
	if s, err := ByName("Rounded"); err != nil || s != (Rounded{}) {
		t.Errorf("ByName(Rounded) = %v, %v", s, err)
	}
	if _, err := ByName("handdrawn"); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("ByName(handdrawn) error = %v", err)
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`a<b>&"c"`); got != "a&lt;b&gt;&amp;&#34;c&#34;" {
		t.Errorf("EscapeXML() = %q", got)
	}
}
