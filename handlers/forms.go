package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/mail"
	"net/url"
	"strings"

	"sanctyr/core"
)

type NewsletterHTTPRequest struct {
	Email string `json:"email"`
}

type PartnershipHTTPRequest struct {
	ServerName      string `json:"server_name"`
	DiscordUsername string `json:"discord_username"`
	ServerLink      string `json:"server_link"`
}

type FormHTTPResponse struct {
	Message string `json:"message"`
}

func (h *SiteHTTPHandler) HandleNewsletterSignup(w http.ResponseWriter, r *http.Request) {
	log.Printf("📨 Newsletter signup request received from %s", r.RemoteAddr)

	var req NewsletterHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Please enter a valid email address.")
		return
	}

	signup, err := h.newsletterRepo.CreateSignup(r.Context(), core.NewID("nls"), email)
	if err != nil {
		log.Printf("❌ Failed to store newsletter signup: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
		return
	}

	log.Printf("✅ Newsletter signup stored: %s", signup.ID)
	h.writeJSONResponse(w, http.StatusOK, FormHTTPResponse{
		Message: "Thank you for joining the realm! You will be notified of updates.",
	})
}

func (h *SiteHTTPHandler) HandlePartnershipRequest(w http.ResponseWriter, r *http.Request) {
	log.Printf("🤝 Partnership request received from %s", r.RemoteAddr)

	var req PartnershipHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(strings.TrimSpace(req.ServerName)) < 2 {
		h.writeErrorResponse(w, http.StatusBadRequest, "Server name must be at least 2 characters.")
		return
	}
	if len(strings.TrimSpace(req.DiscordUsername)) < 2 {
		h.writeErrorResponse(w, http.StatusBadRequest, "Username must be at least 2 characters.")
		return
	}
	link, err := url.Parse(req.ServerLink)
	if err != nil || (link.Scheme != "http" && link.Scheme != "https") || link.Host == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "Please enter a valid Discord invite link.")
		return
	}

	channelID := h.cfg.DiscordConfig.PartnershipRequestsChannelID
	if channelID == "" {
		log.Printf("❌ Partnership requests channel is not configured")
		h.writeErrorResponse(w, http.StatusServiceUnavailable, "Server configuration error. Could not submit request.")
		return
	}

	message := fmt.Sprintf(
		"**New Partnership Request**\n\n**Server Name:** %s\n**Requester's Username:** %s\n**Invite Link:** %s",
		strings.TrimSpace(req.ServerName),
		strings.TrimSpace(req.DiscordUsername),
		req.ServerLink,
	)
	if err := h.guildService.SendChannelMessage(r.Context(), channelID, message); err != nil {
		log.Printf("❌ Failed to send partnership request to Discord: %v", err)
		h.writeErrorResponse(w, http.StatusBadGateway, "Could not send request to the council. Please try again later.")
		return
	}

	log.Printf("✅ Partnership request forwarded for server %q", req.ServerName)
	h.writeJSONResponse(w, http.StatusOK, FormHTTPResponse{
		Message: "Your partnership request has been sent to the High Council for review!",
	})
}
