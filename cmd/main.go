package main

import (
	"context"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	"github.com/rs/cors"

	anthropicclient "sanctyr/clients/anthropic"
	discordclient "sanctyr/clients/discord"
	economyclient "sanctyr/clients/economy"
	tenorclient "sanctyr/clients/tenor"

	"sanctyr/cache"
	"sanctyr/config"
	"sanctyr/db"
	"sanctyr/handlers"
	"sanctyr/middleware"
	"sanctyr/services/auth"
	"sanctyr/services/content"
	"sanctyr/services/economy"
	"sanctyr/services/guide"
	"sanctyr/services/guild"
	"sanctyr/sessions"
)

// guideRequestsPerMinute caps Sanctuary Guide calls per visitor IP.
const guideRequestsPerMinute = 5

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize database connection
	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Initialize repositories with shared connection
	newsletterRepo := db.NewPostgresNewsletterSignupsRepository(dbConn, cfg.DatabaseSchema)
	loginCodesRepo := db.NewPostgresLoginCodesRepository(dbConn, cfg.DatabaseSchema)

	// Initialize upstream clients
	httpClient := &http.Client{Timeout: 15 * time.Second}
	discordClient := discordclient.NewDiscordClient(httpClient, cfg.DiscordConfig.BotToken)
	economyClient := economyclient.NewEconomyClient(httpClient, cfg.EconomyConfig.BaseURL, cfg.EconomyConfig.APISecret)
	tenorClient := tenorclient.NewTenorClient(httpClient, cfg.TenorConfig.APIKey)
	guideClient := anthropicclient.NewAnthropicClient(cfg.AnthropicConfig.APIKey, cfg.AnthropicConfig.Model)

	// Initialize services
	responseCache := cache.NewResponseCache()
	contentService := content.NewContentService(tenorClient)
	guildService := guild.NewGuildService(
		discordClient,
		contentService,
		responseCache,
		cfg.DiscordConfig.GuildID,
		cfg.DiscordConfig.PartnersChannelID,
	)
	economyService := economy.NewEconomyService(economyClient, responseCache)
	guideService := guide.NewGuideService(guideClient)
	authService := auth.NewAuthService(discordClient, loginCodesRepo, cfg.DiscordConfig)

	// Initialize session store and middleware
	hashKey, blockKey := cfg.SessionConfig.HashKey, cfg.SessionConfig.BlockKey
	if !cfg.SessionConfig.IsConfigured() {
		log.Printf("⚠️ Using ephemeral session keys - sessions will not survive a restart")
		hashKey = hex.EncodeToString(securecookie.GenerateRandomKey(32))
		blockKey = hex.EncodeToString(securecookie.GenerateRandomKey(32))
	}
	sessionStore, err := sessions.NewStore(hashKey, blockKey, cfg.SessionConfig.Secure)
	if err != nil {
		return err
	}
	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore)
	guideRateLimit := middleware.NewRateLimitMiddleware(guideRequestsPerMinute)
	defer guideRateLimit.Stop()

	siteHandler := handlers.NewSiteHTTPHandler(
		guildService,
		economyService,
		guideService,
		authService,
		newsletterRepo,
		sessionStore,
		cfg,
	)

	// Create a new router
	router := mux.NewRouter()
	siteHandler.SetupEndpoints(router, sessionMiddleware, guideRateLimit)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	// Setup CORS middleware
	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	// Setup and handle graceful shutdown
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	log.Printf("✅ Server stopped cleanly")
	return nil
}
