package server

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/matzehuels/sbgnconv/pkg/buildinfo"
	"github.com/matzehuels/sbgnconv/pkg/dump"
	"github.com/matzehuels/sbgnconv/pkg/errors"
	sbgnio "github.com/matzehuels/sbgnconv/pkg/io"
	"github.com/matzehuels/sbgnconv/pkg/observability"
	"github.com/matzehuels/sbgnconv/pkg/pipeline"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// CheckResponse is the body of POST /check.
type CheckResponse struct {
	Version string `json:"version"`
	Format  string `json:"format"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: buildinfo.Version})
}

// readDocument returns the request body, rejecting empty ones.
func readDocument(r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty request body")
	}
	return data, nil
}

func boolParam(r *http.Request, name string) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "query parameter %s: %q is not a boolean", name, v)
	}
	return b, nil
}

// options builds pipeline options from the query string.
func (s *Server) options(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	source := "request"
	if name := q.Get("source"); name != "" {
		if err := errors.ValidateFilename(name); err != nil {
			return pipeline.Options{}, err
		}
		source = name
	}
	opts := pipeline.Options{
		From:   q.Get("from"),
		To:     q.Get("to"),
		Source: source,
		Logger: s.log.With("source", source),
	}
	flags := []struct {
		name string
		dst  *bool
	}{
		{"no_render", &opts.NoRenderInformation},
		{"no_annotations", &opts.NoAnnotations},
		{"no_notes", &opts.NoNotes},
		{"refresh", &opts.Refresh},
		{"detailed", &opts.Detailed},
	}
	for _, f := range flags {
		b, err := boolParam(r, f.name)
		if err != nil {
			return opts, err
		}
		*f.dst = b
	}
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "query parameter scale: %q is not a positive number", v)
		}
		opts.Scale = scale
	}
	return opts, nil
}

func cacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
}

// fail logs and answers an error.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	s.log.Warn("request failed", "path", r.URL.Path, "err", err)
	writeError(w, err)
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts, err := s.options(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := s.runner.Convert(r.Context(), doc, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	cacheHeader(w, res.CacheHit)
	w.Header().Set("X-Source-Format", res.From)
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Document)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	v, err := sbgnml.Sniff(bytes.NewReader(doc))
	if err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "detect SBGN-ML version"))
		return
	}
	writeJSON(w, http.StatusOK, CheckResponse{Version: v.String(), Format: sbgnio.FormatOf(v)})
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts, err := s.options(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts.DumpFormat = r.URL.Query().Get("format")

	res, err := s.runner.Inspect(r.Context(), doc, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	cacheHeader(w, res.CacheHit)
	w.Header().Set("Content-Type", dump.ContentType(res.Format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Data)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts, err := s.options(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts.PreviewFormat = r.URL.Query().Get("format")

	res, err := s.runner.Preview(r.Context(), doc, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	cacheHeader(w, res.CacheHit)
	w.Header().Set("Content-Type", pipeline.ContentType(res.Format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Data)
}
