package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/waffle/pkg/errors"
	"github.com/matzehuels/waffle/pkg/store"
)

// createChartRequest is the body of POST /v1/charts.
type createChartRequest struct {
	Name   string `json:"name"`
	Format string `json:"format"`
	Source string `json:"source"`
}

func (s *Server) handleCreateChart(w http.ResponseWriter, r *http.Request) {
	var req createChartRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	c, err := store.NewChart(req.Name, req.Format, []byte(req.Source))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Save(r.Context(), c); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("saved chart", "id", c.ID, "name", c.Name)
	w.Header().Set("Location", "/v1/charts/"+c.ID)
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	charts, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"charts": charts})
}

func (s *Server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	c, err := s.chart(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := store.ValidateID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRenderChart(w http.ResponseWriter, r *http.Request) {
	c, err := s.chart(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	fig, err := c.Figure()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, fig)
}

// chart loads the chart named by the {id} URL parameter.
func (s *Server) chart(r *http.Request) (*store.Chart, error) {
	id := chi.URLParam(r, "id")
	if err := store.ValidateID(id); err != nil {
		return nil, err
	}
	return s.store.Get(r.Context(), id)
}
