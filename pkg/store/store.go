// Package store persists layout documents for the HTTP server.
//
// A Document bundles a normalized graph with the layout computed from it,
// under a generated id, so viewers can re-fetch a layout without recomputing
// it. Two backends are provided:
//   - memory: in-process storage for development and tests
//   - mongo: MongoDB-backed storage for multi-instance deployments
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemoryStore()
//
//	// Production
//	st, err := store.NewMongoStore(ctx, "mongodb://localhost:27017", "lynxviz")
//
// Save and retrieve documents:
//
//	doc := store.NewDocument("billing-service", g, lay)
//	if err := st.Save(ctx, doc); err != nil {
//	    return err
//	}
//
//	doc, err := st.Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if doc == nil {
//	    // Not found
//	}
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lynxviz/lynxviz/pkg/codegraph"
	"github.com/lynxviz/lynxviz/pkg/layout"
)

// Sentinel errors for store operations.
var (
	// ErrNoID is returned when saving a document without an id.
	ErrNoID = errors.New("document has no id")
)

// Document is a stored layout with the graph it was computed from.
// Direction and the counts are denormalized so listings can project them
// without loading the payloads.
type Document struct {
	ID             string           `json:"id" bson:"_id"`
	Name           string           `json:"name" bson:"name"`
	Direction      string           `json:"direction" bson:"direction"`
	NodeCount      int              `json:"node_count" bson:"node_count"`
	ContainerCount int              `json:"container_count" bson:"container_count"`
	CreatedAt      time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" bson:"updated_at"`
	Graph          *codegraph.Graph `json:"graph" bson:"graph"`
	Layout         *layout.Layout   `json:"layout" bson:"layout"`
}

// Summary is the listing view of a document, without the payloads.
type Summary struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Direction      string    `json:"direction"`
	NodeCount      int       `json:"node_count"`
	ContainerCount int       `json:"container_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Summary returns the listing view of the document.
func (d *Document) Summary() Summary {
	return Summary{
		ID:             d.ID,
		Name:           d.Name,
		Direction:      d.Direction,
		NodeCount:      d.NodeCount,
		ContainerCount: d.ContainerCount,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// NewDocument creates a document with a generated id.
func NewDocument(name string, g *codegraph.Graph, lay *layout.Layout) *Document {
	now := time.Now().UTC()
	doc := &Document{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		Graph:     g,
		Layout:    lay,
	}
	if lay != nil {
		doc.Direction = lay.Direction
		doc.NodeCount = len(lay.Nodes)
		doc.ContainerCount = len(lay.Containers)
	}
	return doc
}

// Store is the interface for document storage backends.
// A stored document belongs to the store; callers must not mutate it after
// Save or after Get returns it.
type Store interface {
	// Save stores a document, replacing any existing document with the
	// same id. UpdatedAt is refreshed on every save.
	Save(ctx context.Context, doc *Document) error

	// Get retrieves a document by id.
	// Returns nil, nil if the document doesn't exist.
	Get(ctx context.Context, id string) (*Document, error)

	// List returns summaries of all documents, newest first.
	List(ctx context.Context) ([]Summary, error)

	// Delete removes a document. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases resources held by the backend.
	Close() error
}
