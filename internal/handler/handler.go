// Package handler содержит HTTP обработчики API конвертера.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/InQaaaaGit/metric_converter/internal/middleware"
	"github.com/InQaaaaGit/metric_converter/internal/models"
	"github.com/InQaaaaGit/metric_converter/internal/service"
	"github.com/InQaaaaGit/metric_converter/internal/validator"
	"go.uber.org/zap"
)

const (
	contentTypeJSON = "application/json"

	inputParam = "input"

	notFoundMessage         = "not found"
	methodNotAllowedMessage = "method not allowed"
	internalErrorMessage    = "internal server error"
)

type Handler struct {
	service service.ConversionService
	logger  *zap.Logger
}

func NewHandler(service service.ConversionService, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleConvert обрабатывает GET /api/convert?input=<строка>
func (h *Handler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get(inputParam)

	result, err := h.service.Convert(r.Context(), input)
	if err != nil {
		var vErr *validator.Error
		if errors.As(err, &vErr) {
			h.logger.Error("Validation failed",
				zap.String("request_id", middleware.GetRequestID(r.Context())),
				zap.String("input", input),
				zap.Strings("codes", vErr.Codes),
				zap.Int("status", http.StatusUnprocessableEntity))
			h.writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{String: vErr.Error()})
			return
		}

		h.logger.Error("Error converting input", zap.String("input", input), zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{String: internalErrorMessage})
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// HandleUnits возвращает список поддерживаемых единиц
func (h *Handler) HandleUnits(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Units())
}

// NotFound отвечает на запросы к несуществующим маршрутам
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusNotFound, models.ErrorResponse{String: notFoundMessage})
}

// MethodNotAllowed отвечает на запросы с неподдерживаемым методом
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse{String: methodNotAllowedMessage})
}

// writeJSON кодирует тело до отправки статуса, чтобы ошибку кодирования
// можно было отдать клиенту как 500.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		h.logger.Error("Error encoding JSON response", zap.Int("status", status), zap.Error(err))
		status = http.StatusInternalServerError
		data, _ = json.Marshal(models.ErrorResponse{String: internalErrorMessage})
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(append(data, '\n')); err != nil {
		h.logger.Error("Error writing JSON response", zap.Error(err))
	}
}
