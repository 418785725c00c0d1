package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/buildinfo"
	"github.com/jmclachlan11/boxbuilder/pkg/errors"
	"github.com/jmclachlan11/boxbuilder/pkg/fraction"
	"github.com/jmclachlan11/boxbuilder/pkg/machine"
	"github.com/jmclachlan11/boxbuilder/pkg/pipeline"
	"github.com/jmclachlan11/boxbuilder/pkg/render/sink"
)

// CutListResponse is the body of GET /api/v1/box.
type CutListResponse struct {
	ID        string       `json:"id"`
	Summary   string       `json:"summary"`
	Machine   string       `json:"machine,omitempty"`
	Config    box.Config   `json:"config"`
	Roll      box.Roll     `json:"roll"`
	PageCount int          `json:"page_count"`
	Pieces    []PieceJSON  `json:"pieces"`
	Estimate  box.Estimate `json:"estimate"`
}

// PieceJSON is one cut-list line with both decimal and fractional inches.
type PieceJSON struct {
	Page     int     `json:"page"`
	Kind     string  `json:"kind"`
	Title    string  `json:"title"`
	Quantity int     `json:"quantity"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Display  string  `json:"display"` // 4 1/4" x 10 7/16" x 1/2"
}

type errorBody struct {
	Error struct {
		Code    errors.Code `json:"code"`
		Message string      `json:"message"`
	} `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "build": buildinfo.Get()})
}

func (s *Server) cutList(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	set, err := s.runner.Compute(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, NewCutListResponse(set))
}

// NewCutListResponse describes set with a fresh id.
func NewCutListResponse(set box.Set) CutListResponse {
	resp := CutListResponse{
		ID:        uuid.NewString(),
		Summary:   set.Config.Summary(),
		Machine:   set.Roll.Name,
		Config:    set.Config,
		Roll:      set.Roll,
		PageCount: set.PageCount(),
		Estimate:  set.Estimate(),
	}
	for i, p := range set.CutList() {
		resp.Pieces = append(resp.Pieces, PieceJSON{
			Page:     i + 1,
			Kind:     p.Kind.Slug(),
			Title:    p.Title(),
			Quantity: p.Quantity,
			Length:   p.Length,
			Width:    p.Width,
			Height:   p.Height,
			Display:  fraction.Inches(p.Length) + " x " + fraction.Inches(p.Width) + " x " + fraction.Inches(p.Height),
		})
	}
	return resp
}

func (s *Server) schematic(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	opts, err := s.options(r)
	if err == nil {
		err = opts.ValidateFormat(format)
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	set, err := s.runner.Compute(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	a, err := s.runner.Schematic(r.Context(), set, format, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeArtifact(w, a)
}

func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	n, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil {
		s.fail(w, r, errors.New(errors.ErrCodeInvalidPage, "page %q is not a number", chi.URLParam(r, "page")))
		return
	}
	opts, err := s.options(r)
	if err == nil {
		err = opts.ValidateFormat(format)
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	set, err := s.runner.Compute(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	a, err := s.runner.Page(r.Context(), set, n-1, format, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeArtifact(w, a)
}

func (s *Server) assembly(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	set, err := s.runner.Compute(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var a pipeline.Artifact
	switch format := chi.URLParam(r, "format"); format {
	case pipeline.KindSTL:
		a, err = s.runner.STL(r.Context(), set, 0)
	default:
		a, err = s.runner.Diagram(r.Context(), set, format)
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeArtifact(w, a)
}

// options reads the box query and the render query (print, width,
// height, scale) over the server defaults.
func (s *Server) options(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	form := machine.Form{
		RollCount: box.SixRolls,
		Machine:   q.Get("machine"),
		Length:    q.Get("length"),
		Diameter:  q.Get("diameter"),
		Thickness: q.Get("thickness"),
	}
	for _, p := range []struct {
		key string
		dst *int
	}{{"count", &form.RollCount}, {"rows", &form.Rows}} {
		if v := q.Get(p.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return pipeline.Options{}, errors.New(errors.ErrCodeInvalidFormat, "%s: %q is not a whole number", p.key, v)
			}
			*p.dst = n
		}
	}
	in, err := form.Resolve()
	if err != nil {
		return pipeline.Options{}, err
	}

	opts := s.opts.Render
	opts.Inputs = in
	opts.Printing = q.Get("print") == "1" || q.Get("print") == "true"
	for _, p := range []struct {
		key string
		dst *float64
	}{{"width", &opts.Width}, {"height", &opts.Height}, {"scale", &opts.Scale}} {
		if v := q.Get(p.key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return pipeline.Options{}, errors.New(errors.ErrCodeInvalidFormat, "%s: %q is not a number", p.key, v)
			}
			*p.dst = f
		}
	}
	return opts, opts.Validate()
}

// status maps an error code to an HTTP status.
func status(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidPage, errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeEmptyField, errors.ErrCodeInvalidFormat,
		errors.ErrCodeDivideByZero, errors.ErrCodeOutOfRange, errors.ErrCodeInvalidConfig,
		errors.ErrCodeInvalidName, errors.ErrCodeMachineNotFound, errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	st := status(code)
	var body errorBody
	body.Error.Code = code
	body.Error.Message = errors.UserMessage(err)
	if st == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
		if code == "" {
			body.Error.Code = errors.ErrCodeInternal
		}
		body.Error.Message = "internal error"
	}
	writeJSON(w, st, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeArtifact(w http.ResponseWriter, a pipeline.Artifact) {
	ct := sink.ContentType(a.Format)
	switch a.Format {
	case pipeline.KindSTL:
		ct = "model/stl"
	case pipeline.FormatDOT:
		ct = "text/vnd.graphviz"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Disposition", `inline; filename="`+a.Name+`"`)
	if a.Cached {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	_, _ = w.Write(a.Data)
}
