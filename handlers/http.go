package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"sanctyr/config"
	"sanctyr/db"
	"sanctyr/middleware"
	"sanctyr/services"
	"sanctyr/sessions"
)

// SiteHTTPHandler exposes the community site's JSON API: guild data, the
// economy proxy, the Sanctuary Guide, forms and the login flows.
type SiteHTTPHandler struct {
	guildService   services.GuildService
	economyService services.EconomyService
	guideService   services.GuideService
	authService    services.AuthService
	newsletterRepo *db.PostgresNewsletterSignupsRepository
	sessionStore   *sessions.Store
	cfg            *config.AppConfig
}

func NewSiteHTTPHandler(
	guildService services.GuildService,
	economyService services.EconomyService,
	guideService services.GuideService,
	authService services.AuthService,
	newsletterRepo *db.PostgresNewsletterSignupsRepository,
	sessionStore *sessions.Store,
	cfg *config.AppConfig,
) *SiteHTTPHandler {
	return &SiteHTTPHandler{
		guildService:   guildService,
		economyService: economyService,
		guideService:   guideService,
		authService:    authService,
		newsletterRepo: newsletterRepo,
		sessionStore:   sessionStore,
		cfg:            cfg,
	}
}

func (h *SiteHTTPHandler) SetupEndpoints(
	router *mux.Router,
	sessionMiddleware *middleware.SessionMiddleware,
	guideRateLimit *middleware.RateLimitMiddleware,
) {
	log.Printf("🚀 Registering site API endpoints")

	// Guild endpoints
	router.HandleFunc("/api/guild/details", h.HandleGuildDetails).Methods("GET")
	log.Printf("✅ GET /api/guild/details endpoint registered")

	router.HandleFunc("/api/guild/widget", h.HandleGuildWidget).Methods("GET")
	log.Printf("✅ GET /api/guild/widget endpoint registered")

	router.HandleFunc("/api/guild/roles", h.HandleGuildRoles).Methods("GET")
	log.Printf("✅ GET /api/guild/roles endpoint registered")

	router.HandleFunc("/api/guild/members", h.HandleMembersByRole).Methods("GET")
	log.Printf("✅ GET /api/guild/members endpoint registered")

	router.HandleFunc("/api/guild/members/{userID}", h.HandleGuildMember).Methods("GET")
	log.Printf("✅ GET /api/guild/members/{userID} endpoint registered")

	router.HandleFunc("/api/channels/{channelID}/messages", h.HandleChannelMessages).Methods("GET")
	log.Printf("✅ GET /api/channels/{channelID}/messages endpoint registered")

	router.HandleFunc("/api/partners", h.HandlePartners).Methods("GET")
	log.Printf("✅ GET /api/partners endpoint registered")

	// Profile and economy endpoints
	router.HandleFunc("/api/profile/{userID}", sessionMiddleware.WithSession(h.HandleProfile)).Methods("GET")
	log.Printf("✅ GET /api/profile/{userID} endpoint registered")

	router.HandleFunc("/api/economy/actions", sessionMiddleware.RequireAuth(h.HandleEconomyAction)).Methods("POST")
	log.Printf("✅ POST /api/economy/actions endpoint registered")

	// Sanctuary Guide endpoint
	router.HandleFunc("/api/guide", guideRateLimit.WithRateLimit(h.HandleGuideAsk)).Methods("POST")
	log.Printf("✅ POST /api/guide endpoint registered")

	// Form endpoints
	router.HandleFunc("/api/forms/newsletter", h.HandleNewsletterSignup).Methods("POST")
	log.Printf("✅ POST /api/forms/newsletter endpoint registered")

	router.HandleFunc("/api/forms/partnership", h.HandlePartnershipRequest).Methods("POST")
	log.Printf("✅ POST /api/forms/partnership endpoint registered")

	// Auth endpoints
	router.HandleFunc("/auth/discord/login", h.HandleDiscordLogin).Methods("GET")
	log.Printf("✅ GET /auth/discord/login endpoint registered")

	router.HandleFunc("/auth/discord/callback", h.HandleDiscordCallback).Methods("GET")
	log.Printf("✅ GET /auth/discord/callback endpoint registered")

	router.HandleFunc("/auth/logout", sessionMiddleware.RequireAuth(h.HandleLogout)).Methods("POST")
	log.Printf("✅ POST /auth/logout endpoint registered")

	router.HandleFunc("/auth/code/verify", h.HandleVerifyLoginCode).Methods("POST")
	log.Printf("✅ POST /auth/code/verify endpoint registered")

	router.HandleFunc("/api/session", sessionMiddleware.WithSession(h.HandleSession)).Methods("GET")
	log.Printf("✅ GET /api/session endpoint registered")

	// Static site data endpoints
	router.HandleFunc("/api/site/ecosystem", h.HandleEcosystem).Methods("GET")
	log.Printf("✅ GET /api/site/ecosystem endpoint registered")

	router.HandleFunc("/api/site/events", h.HandleEvents).Methods("GET")
	log.Printf("✅ GET /api/site/events endpoint registered")

	router.HandleFunc("/api/site/lore", h.HandleLore).Methods("GET")
	log.Printf("✅ GET /api/site/lore endpoint registered")

	router.HandleFunc("/api/site/donations", h.HandleDonations).Methods("GET")
	log.Printf("✅ GET /api/site/donations endpoint registered")

	router.HandleFunc("/api/site/gallery", h.HandleGallery).Methods("GET")
	log.Printf("✅ GET /api/site/gallery endpoint registered")

	log.Printf("✅ All site API endpoints registered successfully")
}

func (h *SiteHTTPHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("❌ Failed to encode JSON response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *SiteHTTPHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	h.writeJSONResponse(w, statusCode, map[string]string{"error": message})
}
