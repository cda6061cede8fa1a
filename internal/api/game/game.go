package game

import (
	dto "bowling_backend/internal/api/dto/game"
	"bowling_backend/internal/bowling"
	"bowling_backend/internal/converter"
	"bowling_backend/internal/service"
	"bowling_backend/pkg/req"
	"bowling_backend/pkg/resp"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

type HandlerDeps struct {
	Serv   service.GameService
	Logger *slog.Logger
}

type Handler struct {
	serv   service.GameService
	logger *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{serv: deps.Serv, logger: logger}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Start(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToGameResponse(*result))
}

// Throw accepts an empty body or {"knocked_pins": [...]}.
func (h *Handler) Throw(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ThrowRequest](r.Body)
	if err != nil && !errors.Is(err, io.EOF) {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Throw(r.Context(), converter.ToThrowRequest(payload))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResponse(*result))
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Status(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResponse(*result))
}

func (h *Handler) Rules(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRulesResponse(h.serv.Rules(r.Context())))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats(r.Context())))
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "Request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case bowling.IsTerminal(err), errors.Is(err, bowling.ErrGameNotStarted):
		return http.StatusConflict
	case errors.Is(err, bowling.ErrInvalidKnockdown), errors.Is(err, bowling.ErrUnknownPin):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
