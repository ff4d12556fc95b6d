// Package store persists named chart definitions for the HTTP API.
//
// A stored [Chart] keeps the chart file exactly as submitted together with
// its format, so every option survives a round trip and the chart can be
// re-rendered later:
//
//	c, err := store.NewChart("pets", chart.FormatTOML, src)
//	if err != nil {
//	    return err
//	}
//	if err := s.Save(ctx, c); err != nil {
//	    return err
//	}
//	fig, err := c.Figure()
//
// Backends:
//   - [MemoryStore]: process-local storage for development and tests
//   - [MongoStore]: MongoDB collection for deployments
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/waffle/pkg/cache"
	"github.com/matzehuels/waffle/pkg/chart"
	"github.com/matzehuels/waffle/pkg/errors"
)

// Chart is a saved chart definition.
type Chart struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Format    string    `json:"format" bson:"format"`
	Source    string    `json:"source" bson:"source"`
	Hash      string    `json:"hash" bson:"hash"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NewChart validates a chart file and wraps it for storage under a new ID.
func NewChart(name, format string, source []byte) (*Chart, error) {
	if err := errors.ValidateChartName(name); err != nil {
		return nil, err
	}
	if _, err := chart.Load(source, format); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Chart{
		ID:        uuid.NewString(),
		Name:      name,
		Format:    format,
		Source:    string(source),
		Hash:      cache.Hash(source),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Figure decodes the stored chart file.
func (c *Chart) Figure() (*chart.Figure, error) {
	return chart.Load([]byte(c.Source), c.Format)
}

// Store is the interface for chart storage backends.
type Store interface {
	// Save inserts or replaces a chart by ID.
	Save(ctx context.Context, c *Chart) error

	// Get retrieves a chart by ID.
	// Returns an error with code NOT_FOUND if it doesn't exist.
	Get(ctx context.Context, id string) (*Chart, error)

	// List returns all charts, oldest first.
	List(ctx context.Context) ([]*Chart, error)

	// Delete removes a chart.
	// Returns an error with code NOT_FOUND if it doesn't exist.
	Delete(ctx context.Context, id string) error

	// Close releases the backend.
	Close(ctx context.Context) error
}

// ValidateID checks that id is a UUID, as NewChart generates.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "invalid chart id: %q", id)
	}
	return nil
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "chart %s not found", id)
}
