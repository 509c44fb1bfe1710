package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"radar/internal/leads/service"
	apperrors "radar/pkg/errors"
	httputil "radar/pkg/http"
	"radar/pkg/logger"
	"radar/pkg/model"
)

type LeadHandler struct {
	service service.LeadService
	log     *logger.Logger
}

func NewLeadHandler(service service.LeadService, log *logger.Logger) *LeadHandler {
	return &LeadHandler{
		service: service,
		log:     log,
	}
}

func (h *LeadHandler) Options(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts, err := h.service.Options(r.Context(), httputil.QueryParam(r, "city"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteSuccess(w, opts)
}

// StartSession accepts an optional criteria body; without one the default
// criteria apply.
func (h *LeadHandler) StartSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var criteria model.FilterCriteria
	decoded, err := httputil.DecodeJSON(r, &criteria)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var requested *model.FilterCriteria
	if decoded {
		requested = &criteria
	}

	result, err := h.service.StartSession(r.Context(), requested)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/sessions/"+result.SessionID)
	httputil.WriteCreated(w, result)
}

func (h *LeadHandler) Current(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	result, err := h.service.Current(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteSuccess(w, result)
}

func (h *LeadHandler) ApplyFilter(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var criteria model.FilterCriteria
	decoded, err := httputil.DecodeJSON(r, &criteria)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !decoded {
		h.writeError(w, r, errMissingCriteria)
		return
	}

	result, err := h.service.ApplyFilter(r.Context(), ps.ByName("id"), criteria)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteSuccess(w, result)
}

func (h *LeadHandler) Next(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	result, err := h.service.Next(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteSuccess(w, result)
}

func (h *LeadHandler) Previous(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	result, err := h.service.Previous(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteSuccess(w, result)
}

func (h *LeadHandler) EndSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.EndSession(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *LeadHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/leads/options", h.Options)
	router.POST("/api/v1/sessions", h.StartSession)
	router.GET("/api/v1/sessions/:id", h.Current)
	router.PUT("/api/v1/sessions/:id/filter", h.ApplyFilter)
	router.POST("/api/v1/sessions/:id/next", h.Next)
	router.POST("/api/v1/sessions/:id/previous", h.Previous)
	router.DELETE("/api/v1/sessions/:id", h.EndSession)
}

// writeError logs errors that escaped the AppError mapping before they are
// answered with a generic 500.
func (h *LeadHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if !apperrors.IsAppError(err) {
		h.log.Error("Unhandled error",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
