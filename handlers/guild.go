package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"sanctyr/core"
	"sanctyr/sitedata"
)

const (
	defaultMessagesLimit = 5
	maxMessagesLimit     = 50
)

func (h *SiteHTTPHandler) HandleGuildDetails(w http.ResponseWriter, r *http.Request) {
	log.Printf("🏰 Guild details request received from %s", r.RemoteAddr)

	details, err := h.guildService.GetGuildDetails(r.Context())
	if err != nil {
		if errors.Is(err, core.ErrNotConfigured) {
			h.writeErrorResponse(w, http.StatusServiceUnavailable, "discord integration is not configured")
			return
		}
		log.Printf("❌ Failed to get guild details: %v", err)
		h.writeErrorResponse(w, http.StatusBadGateway, "failed to fetch guild details")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, details)
}

func (h *SiteHTTPHandler) HandleGuildWidget(w http.ResponseWriter, r *http.Request) {
	log.Printf("📡 Guild widget request received from %s", r.RemoteAddr)

	widget, err := h.guildService.GetGuildWidget(r.Context())
	if err != nil {
		if errors.Is(err, core.ErrWidgetDisabled) {
			h.writeErrorResponse(w, http.StatusNotFound, "guild widget is disabled")
			return
		}
		log.Printf("❌ Failed to get guild widget: %v", err)
		h.writeErrorResponse(w, http.StatusBadGateway, "failed to fetch guild widget")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, widget)
}

func (h *SiteHTTPHandler) HandleGuildRoles(w http.ResponseWriter, r *http.Request) {
	log.Printf("🎭 Guild roles request received from %s", r.RemoteAddr)

	roles, err := h.guildService.ListRoles(r.Context())
	if err != nil {
		if errors.Is(err, core.ErrNotConfigured) {
			h.writeErrorResponse(w, http.StatusServiceUnavailable, "discord integration is not configured")
			return
		}
		log.Printf("❌ Failed to list guild roles: %v", err)
		h.writeErrorResponse(w, http.StatusBadGateway, "failed to fetch guild roles")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, roles)
}

func (h *SiteHTTPHandler) HandleGuildMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userID"]
	log.Printf("👤 Guild member request received for %s from %s", userID, r.RemoteAddr)

	member, err := h.guildService.GetMember(r.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			h.writeErrorResponse(w, http.StatusNotFound, "member not found")
			return
		}
		log.Printf("❌ Failed to get guild member %s: %v", userID, err)
		h.writeErrorResponse(w, http.StatusBadGateway, "failed to fetch guild member")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, member)
}

func (h *SiteHTTPHandler) HandleMembersByRole(w http.ResponseWriter, r *http.Request) {
	roleName := r.URL.Query().Get("role")
	log.Printf("🎖️ Members-by-role request received for %q from %s", roleName, r.RemoteAddr)

	if roleName == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "role query parameter is required")
		return
	}

	members, err := h.guildService.GetMembersByRoleName(r.Context(), roleName)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			h.writeErrorResponse(w, http.StatusNotFound, "role not found")
			return
		}
		log.Printf("❌ Failed to get members by role %q: %v", roleName, err)
		h.writeErrorResponse(w, http.StatusBadGateway, "failed to fetch members")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, members)
}

func (h *SiteHTTPHandler) HandleChannelMessages(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	channelID := vars["channelID"]
	log.Printf("💬 Channel messages request received for %s from %s", channelID, r.RemoteAddr)

	// Only the channels the site actually renders are readable through the API
	if !h.isExposedChannel(channelID) {
		h.writeErrorResponse(w, http.StatusForbidden, "channel is not exposed")
		return
	}

	limit := defaultMessagesLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.writeErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(parsed, maxMessagesLimit)
	}

	messages, err := h.guildService.GetChannelMessages(r.Context(), channelID, limit)
	if err != nil {
		if errors.Is(err, core.ErrNotConfigured) {
			h.writeErrorResponse(w, http.StatusServiceUnavailable, "discord integration is not configured")
			return
		}
		if errors.Is(err, core.ErrNotFound) {
			h.writeErrorResponse(w, http.StatusNotFound, "channel not found")
			return
		}
		log.Printf("❌ Failed to get channel messages for %s: %v", channelID, err)
		h.writeErrorResponse(w, http.StatusBadGateway, "failed to fetch channel messages")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, messages)
}

func (h *SiteHTTPHandler) isExposedChannel(channelID string) bool {
	exposed := []string{
		h.cfg.DiscordConfig.AnnouncementsChannelID,
		h.cfg.DiscordConfig.LiveFeedChannelID,
		h.cfg.DiscordConfig.PartnersChannelID,
	}
	for _, id := range exposed {
		if id != "" && id == channelID {
			return true
		}
	}
	return false
}

func (h *SiteHTTPHandler) HandlePartners(w http.ResponseWriter, r *http.Request) {
	log.Printf("🤝 Partners request received from %s", r.RemoteAddr)

	partners, err := h.guildService.GetPartners(r.Context())
	if err != nil || len(partners) == 0 {
		if err != nil {
			log.Printf("⚠️ Falling back to static partners list: %v", err)
		}
		h.writeJSONResponse(w, http.StatusOK, sitedata.FallbackPartners())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, partners)
}
