package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fleetcore/hxglue"
	"github.com/fleetcore/hxglue/internal/errors"
	"github.com/fleetcore/hxglue/internal/live"
	"github.com/fleetcore/hxglue/pkg/htmx"
	"github.com/fleetcore/hxglue/pkg/render"
	"github.com/fleetcore/hxglue/pkg/toast"
)

const maxRequestBody = 1 << 20

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page := render.PageData{Title: s.opts.Title}
	if s.opts.Hub != nil {
		page.Scripts = append(page.Scripts, live.ClientScript)
	}

	var b strings.Builder
	if err := s.opts.Host.Render(r.Context(), &b, page); err != nil {
		s.logger.Error("render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, b.String())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListToasts(w http.ResponseWriter, r *http.Request) {
	toasts, err := s.opts.Host.ActiveToasts(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, errors.FromError(err, errors.CodeUnavailable))
		return
	}
	if toasts == nil {
		toasts = []hxglue.ToastInfo{}
	}
	writeJSON(w, http.StatusOK, toasts)
}

type showResponse struct {
	ID   string     `json:"id"`
	Type toast.Type `json:"type"`
}

func (s *Server) handleShowToast(w http.ResponseWriter, r *http.Request) {
	var req toast.Request
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, errors.New(errors.CodeBadRequest).
			WithDetail("message is required."))
		return
	}

	t := s.opts.Host.Toasts().Show(req.Message, req.Type)
	if t == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New(errors.CodeTargetMissing).
			WithDetail("The page has no toast container."))
		return
	}
	writeJSON(w, http.StatusAccepted, showResponse{ID: t.ID(), Type: t.Type()})
}

func (s *Server) handleDismissToast(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ok, err := s.opts.Host.Dismiss(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, errors.FromError(err, errors.CodeUnavailable))
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, errors.New(errors.CodeToastNotFound).
			WithDetail("No visible toast with id "+id+"."))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type exchangeRequest struct {
	Method string `json:"method"`
	URL    string `json:"url"`
	Target string `json:"target"`
	Style  string `json:"style"`
	Body   string `json:"body"`
}

type exchangeResponse struct {
	Status  int            `json:"status"`
	Target  string         `json:"target"`
	Style   htmx.SwapStyle `json:"style"`
	Swapped bool           `json:"swapped"`
}

func (s *Server) handleExchange(w http.ResponseWriter, r *http.Request) {
	var req exchangeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, errors.New(errors.CodeBadRequest).
			WithDetail("url is required."))
		return
	}
	if req.Method == "" {
		req.Method = http.MethodGet
	}

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}
	var style htmx.SwapStyle
	if req.Style != "" {
		style = htmx.ParseSwapStyle(req.Style)
	}

	ex, err := s.opts.Host.Request(r.Context(), strings.ToUpper(req.Method), req.URL, body, req.Target, style)
	if err != nil {
		var e *errors.Error
		if !stderrors.As(err, &e) {
			e = errors.FromError(err, errors.CodeExchange)
		}
		status := http.StatusBadGateway
		if e.Code == errors.CodeTargetMissing {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, e)
		return
	}

	writeJSON(w, http.StatusOK, exchangeResponse{
		Status:  ex.Status,
		Target:  ex.Target,
		Style:   ex.Style,
		Swapped: ex.Swapped,
	})
}

func decodeJSON(r *http.Request, v any) *errors.Error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	if err := dec.Decode(v); err != nil {
		return errors.New(errors.CodeBadRequest).Wrap(err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err *errors.Error) {
	writeJSON(w, status, err)
}
