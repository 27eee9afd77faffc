package namerhttp

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/namer/pkg/logger"
	"github.com/dmitrymomot/namer/pkg/namer"
)

// maxUploadMemory bounds the multipart form kept in memory.
const maxUploadMemory = 10 << 20

// Request is the JSON body accepted by POST /filenames.
// Absent or null fields fall back to the namer configuration.
type Request struct {
	Name      *string       `json:"name"`
	Extension *string       `json:"extension"`
	Strategy  *string       `json:"strategy"`
	Options   namer.Options `json:"options"`
}

// Response is returned for successful generation.
type Response struct {
	Filename string `json:"filename"`
}

// ErrorResponse is returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	namer *namer.Namer
	log   *slog.Logger
}

// Router exposes a Namer over HTTP:
//
//	GET  /healthz            liveness probe
//	GET  /strategies         registered strategies and hash algorithms
//	POST /filenames          JSON Request -> Response
//	POST /filenames/upload   multipart "file" field, optional "strategy" field
func Router(n *namer.Namer, log *slog.Logger) chi.Router {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := &handler{namer: n, log: log.With(logger.Component("namerhttp"))}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	})
	r.Get("/strategies", h.strategies)
	r.Route("/filenames", func(r chi.Router) {
		r.Post("/", h.generate)
		r.Post("/upload", h.upload)
	})

	return r
}

func (h *handler) strategies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"strategies": namer.Strategies(),
		"algorithms": namer.Algorithms(),
	})
}

func (h *handler) generate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}

	opts := make([]namer.MakeOption, 0, 4)
	if req.Name != nil {
		opts = append(opts, namer.WithName(*req.Name))
	}
	if req.Extension != nil {
		opts = append(opts, namer.WithExtension(*req.Extension))
	}
	if req.Strategy != nil {
		s, _ := namer.ParseStrategy(*req.Strategy)
		opts = append(opts, namer.WithStrategy(s))
	}
	if req.Options != nil {
		opts = append(opts, namer.WithOptions(req.Options))
	}

	name, err := h.namer.Make(opts...)
	h.respond(w, r, name, err)
}

func (h *handler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	fh := firstFile(r, "file")
	var opts []namer.MakeOption
	if v := r.FormValue("strategy"); v != "" {
		s, _ := namer.ParseStrategy(v)
		opts = append(opts, namer.WithStrategy(s))
	}

	name, err := h.namer.MakeFromHeader(fh, opts...)
	if errors.Is(err, namer.ErrNilFileHeader) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: `missing "file" field`})
		return
	}
	h.respond(w, r, name, err)
}

func (h *handler) respond(w http.ResponseWriter, r *http.Request, name string, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, Response{Filename: name})
	case errors.Is(err, namer.ErrInvalidOption):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		h.log.ErrorContext(r.Context(), "filename generation failed",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			logger.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func firstFile(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	if files := r.MultipartForm.File[field]; len(files) > 0 {
		return files[0]
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
