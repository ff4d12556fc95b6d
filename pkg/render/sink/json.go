package sink

import "github.com/matzehuels/waffle/pkg/render/layout"

// RenderJSON writes the layout itself, the same document `waffle layout`
// produces.
func RenderJSON(l layout.Layout) ([]byte, error) {
	return layout.MarshalLayout(l)
}
