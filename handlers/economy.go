package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"sanctyr/appctx"
	"sanctyr/core"
)

type EconomyActionHTTPRequest struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// HandleEconomyAction proxies an economy command for the logged-in visitor.
// The user id always comes from the session, never from the request body, so
// a visitor can only act as themselves.
func (h *SiteHTTPHandler) HandleEconomyAction(w http.ResponseWriter, r *http.Request) {
	log.Printf("💰 Economy action request received from %s", r.RemoteAddr)

	user, ok := appctx.GetUser(r.Context())
	if !ok {
		h.writeErrorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req EconomyActionHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Command == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "command is required")
		return
	}

	result, err := h.economyService.ExecuteAction(r.Context(), req.Command, user.ID, req.Args)
	if err != nil {
		if errors.Is(err, core.ErrNotConfigured) {
			h.writeErrorResponse(w, http.StatusServiceUnavailable, "economy integration is not configured")
			return
		}
		log.Printf("❌ Failed to execute economy action %q for %s: %v", req.Command, user.ID, err)
		h.writeErrorResponse(w, http.StatusBadGateway, "failed to execute economy action")
		return
	}

	log.Printf("✅ Economy action %q executed for %s", req.Command, user.ID)
	h.writeJSONResponse(w, http.StatusOK, result)
}
