package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lynxviz/lynxviz/pkg/buildinfo"
	"github.com/lynxviz/lynxviz/pkg/cache"
	"github.com/lynxviz/lynxviz/pkg/codegraph"
	"github.com/lynxviz/lynxviz/pkg/errors"
	"github.com/lynxviz/lynxviz/pkg/layout"
	"github.com/lynxviz/lynxviz/pkg/pipeline"
	"github.com/lynxviz/lynxviz/pkg/store"
)

// Request bodies are raw graph artifacts plus options; 16 MiB covers the
// largest graphs the parsers emit by a wide margin.
const maxBodyBytes = 16 << 20

// =============================================================================
// Wire Types
// =============================================================================

// layoutRequest is the body of the layout computation endpoints.
type layoutRequest struct {
	// Name labels the saved document; ignored by the stateless endpoint.
	Name string `json:"name,omitempty"`
	// Graph is the raw artifact payload, passed to the pipeline unparsed.
	Graph json.RawMessage `json:"graph"`
	// Options tune the pipeline run.
	Options requestOptions `json:"options"`
}

// requestOptions is the client-settable subset of pipeline options.
type requestOptions struct {
	Variant              string `json:"variant,omitempty"`
	Direction            string `json:"direction,omitempty"`
	HierarchicalMinNodes int    `json:"hierarchical_min_nodes,omitempty"`
	HierarchicalMinEdges int    `json:"hierarchical_min_edges,omitempty"`
	Refresh              bool   `json:"refresh,omitempty"`
}

func (ro requestOptions) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Variant:              ro.Variant,
		Direction:            ro.Direction,
		HierarchicalMinNodes: ro.HierarchicalMinNodes,
		HierarchicalMinEdges: ro.HierarchicalMinEdges,
		Refresh:              ro.Refresh,
	}
}

// layoutResponse is the result of a stateless layout computation.
type layoutResponse struct {
	GraphHash      string            `json:"graph_hash"`
	NodeCount      int               `json:"node_count"`
	EdgeCount      int               `json:"edge_count"`
	ContainerCount int               `json:"container_count"`
	Cached         cachedStages      `json:"cached"`
	Report         *codegraph.Report `json:"report,omitempty"`
	Layout         *layout.Layout    `json:"layout"`
}

type cachedStages struct {
	Ingest bool `json:"ingest"`
	Layout bool `json:"layout"`
}

type listResponse struct {
	Layouts []store.Summary `json:"layouts"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

// handleComputeLayout runs ingest and layout on the posted graph and returns
// the geometry without persisting anything.
func (s *Server) handleComputeLayout(w http.ResponseWriter, r *http.Request) {
	req, err := decodeLayoutRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	_, lay, resp, err := s.computeLayout(r, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp.Layout = lay
	s.writeJSON(w, http.StatusOK, resp)
}

// handleCreateLayout runs the pipeline and saves the result as a document.
func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	req, err := decodeLayoutRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	g, lay, _, err := s.computeLayout(r, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	doc := store.NewDocument(req.Name, g, lay)
	if err := s.store.Save(r.Context(), doc); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeStoreFailure, err, "save layout"))
		return
	}

	s.writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleListLayouts(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeStoreFailure, err, "list layouts"))
		return
	}
	if summaries == nil {
		summaries = []store.Summary{}
	}
	s.writeJSON(w, http.StatusOK, listResponse{Layouts: summaries})
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	doc, err := s.loadDocument(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteLayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeStoreFailure, err, "delete layout %s", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// formatContentTypes maps output formats to response content types.
var formatContentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatDOT:  "text/vnd.graphviz",
	pipeline.FormatJSON: "application/json",
}

// handleRenderLayout renders a saved layout in the requested format.
func (s *Server) handleRenderLayout(w http.ResponseWriter, r *http.Request) {
	doc, err := s.loadDocument(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	artifacts, err := s.runner.Render(r.Context(), doc.Layout, doc.Graph, pipeline.Options{Formats: []string{format}})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", formatContentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

// =============================================================================
// Helpers
// =============================================================================

func decodeLayoutRequest(w http.ResponseWriter, r *http.Request) (*layoutRequest, error) {
	var req layoutRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return nil, errors.New(errors.ErrCodeMalformedInput, "decode request body: %v", err)
	}
	if len(req.Graph) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "request is missing the graph payload")
	}
	return &req, nil
}

// computeLayout runs ingest and layout for a request and assembles the
// response skeleton. The caller decides whether to attach or persist the
// layout.
func (s *Server) computeLayout(r *http.Request, req *layoutRequest) (*codegraph.Graph, *layout.Layout, *layoutResponse, error) {
	opts := req.Options.pipelineOptions()
	opts.Logger = s.logger

	g, report, ingestHit, err := s.runner.IngestWithCacheInfo(r.Context(), req.Graph, opts)
	if err != nil {
		return nil, nil, nil, err
	}

	lay, layoutHit, err := s.runner.GenerateLayoutWithCacheInfo(r.Context(), g, opts)
	if err != nil {
		return nil, nil, nil, err
	}
	if lay.Report == nil && report != nil {
		lay.Report = report
	}

	resp := &layoutResponse{
		NodeCount:      len(g.Nodes),
		EdgeCount:      len(g.Edges),
		ContainerCount: len(lay.Containers),
		Cached:         cachedStages{Ingest: ingestHit, Layout: layoutHit},
		Report:         report,
	}
	if data, err := codegraph.MarshalGraph(*g); err == nil {
		resp.GraphHash = cache.Hash(data)
	}

	return g, lay, resp, nil
}

// loadDocument fetches the document named by the {id} route parameter.
func (s *Server) loadDocument(r *http.Request) (*store.Document, error) {
	id := chi.URLParam(r, "id")
	doc, err := s.store.Get(r.Context(), id)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailure, err, "load layout %s", id)
	}
	if doc == nil {
		return nil, errors.New(errors.ErrCodeLayoutNotFound, "layout %s not found", id)
	}
	return doc, nil
}
