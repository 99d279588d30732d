package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

const maxGuideQueryLength = 2000

type GuideHTTPRequest struct {
	Query string `json:"query"`
}

func (h *SiteHTTPHandler) HandleGuideAsk(w http.ResponseWriter, r *http.Request) {
	log.Printf("🔮 Sanctuary Guide request received from %s", r.RemoteAddr)

	var req GuideHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "Query cannot be empty.")
		return
	}
	if len(req.Query) > maxGuideQueryLength {
		h.writeErrorResponse(w, http.StatusBadRequest, "Query is too long.")
		return
	}

	answer, err := h.guideService.Ask(r.Context(), req.Query)
	if err != nil {
		log.Printf("❌ Sanctuary Guide failed to answer: %v", err)
		h.writeErrorResponse(
			w,
			http.StatusServiceUnavailable,
			"The sanctuary is silent... The AI assistant is currently unavailable.",
		)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, answer)
}
