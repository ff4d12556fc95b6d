package api

import (
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/matzehuels/waffle/pkg/chart"
	"github.com/matzehuels/waffle/pkg/errors"
	"github.com/matzehuels/waffle/pkg/pipeline"
	"github.com/matzehuels/waffle/pkg/waffle"
)

// contentTypes maps output formats to response media types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// inputFormats maps request media types to chart file formats.
var inputFormats = map[string]string{
	"application/json":   chart.FormatJSON,
	"application/toml":   chart.FormatTOML,
	"text/toml":          chart.FormatTOML,
	"application/yaml":   chart.FormatYAML,
	"application/x-yaml": chart.FormatYAML,
	"text/yaml":          chart.FormatYAML,
}

// planPanel is one panel of a /v1/plan response.
type planPanel struct {
	Key     string         `json:"key"`
	Labels  []string       `json:"labels,omitempty"`
	Dropped int            `json:"dropped"`
	Unused  int            `json:"unused"`
	Plan    *waffle.Result `json:"plan"`
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	fig, err := readFigure(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	plans, err := s.runner.Plan(r.Context(), fig)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]planPanel, len(plans))
	for i, p := range plans {
		out[i] = planPanel{
			Key:     fig.Panels[i].Key,
			Labels:  fig.Panels[i].Config.CategoryLabels(),
			Dropped: p.Dropped(),
			Unused:  p.Unused(),
			Plan:    p,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"panels": out})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	fig, err := readFigure(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, _, err := renderOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	l, err := s.runner.Layout(r.Context(), fig, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	fig, err := readFigure(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, fig)
}

// render runs the full pipeline for fig and writes the single artifact.
func (s *Server) render(w http.ResponseWriter, r *http.Request, fig *chart.Figure) {
	opts, format, err := renderOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.Execute(r.Context(), fig, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Figure-Hash", res.FigureHash)
	w.Header().Set("X-Cache", cacheHeader(res.CacheInfo))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func cacheHeader(ci pipeline.CacheInfo) string {
	if ci.LayoutHit && ci.RenderHit {
		return "HIT"
	}
	return "MISS"
}

// readFigure decodes the chart file in the request body.
func readFigure(w http.ResponseWriter, r *http.Request) (*chart.Figure, error) {
	format, err := inputFormat(r)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	return chart.Load(data, format)
}

func inputFormat(r *http.Request) (string, error) {
	if f := r.URL.Query().Get("input"); f != "" {
		return f, nil
	}
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return chart.FormatJSON, nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid Content-Type")
	}
	if f, ok := inputFormats[mt]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported Content-Type %q", mt)
}

// renderOptions reads pipeline options from the query string. Only one output
// format is rendered per request.
func renderOptions(r *http.Request) (pipeline.Options, string, error) {
	q := r.URL.Query()
	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = pipeline.FormatSVG
	}

	opts := pipeline.Options{
		Style:      q.Get("style"),
		Background: q.Get("background"),
		Formats:    []string{format},
	}
	for name, dst := range map[string]*float64{
		"width":  &opts.Width,
		"height": &opts.Height,
		"scale":  &opts.Scale,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, "", errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, v)
		}
		*dst = f
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, "", err
	}
	return opts, format, nil
}
