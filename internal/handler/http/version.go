package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, _ *http.Request) {
	version := h.version
	if version == "" {
		version = "N/A"
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}
