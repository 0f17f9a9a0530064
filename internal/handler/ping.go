package handler

import (
	"net/http"
)

// HandlePing отвечает 200 OK, пока сервис запущен
func (h *Handler) HandlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		h.logger.Debug("Error writing ping response")
	}
}
