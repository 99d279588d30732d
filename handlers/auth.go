package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"

	"sanctyr/appctx"
	"sanctyr/core"
	"sanctyr/models"
)

// stateCookieName holds the OAuth state between the login redirect and the
// callback. Short-lived and HttpOnly.
const stateCookieName = "dls_oauth_state"

type VerifyCodeHTTPRequest struct {
	Code string `json:"code"`
}

type VerifyCodeHTTPResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	User    *models.SessionUser `json:"user,omitempty"`
}

type SessionHTTPResponse struct {
	User *models.SessionUser `json:"user"`
}

func (h *SiteHTTPHandler) HandleDiscordLogin(w http.ResponseWriter, r *http.Request) {
	log.Printf("🔐 Discord login request received from %s", r.RemoteAddr)

	state := core.NewID("st")
	loginURL, err := h.authService.LoginURL(state)
	if err != nil {
		log.Printf("❌ Failed to build Discord login URL: %v", err)
		h.writeErrorResponse(w, http.StatusServiceUnavailable, "login is not available right now")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/auth/discord",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, loginURL, http.StatusTemporaryRedirect)
}

func (h *SiteHTTPHandler) HandleDiscordCallback(w http.ResponseWriter, r *http.Request) {
	log.Printf("🔐 Discord OAuth callback received from %s", r.RemoteAddr)

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || !core.IsValidULID(stateCookie.Value) || stateCookie.Value != r.URL.Query().Get("state") {
		log.Printf("❌ OAuth state mismatch on callback")
		h.redirectWithLoginError(w, r, "state_mismatch")
		return
	}
	// One-shot: the state cookie dies with the callback
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/auth/discord",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	code := r.URL.Query().Get("code")
	user, err := h.authService.HandleCallback(r.Context(), code)
	if err != nil {
		log.Printf("❌ Discord OAuth callback failed: %v", err)
		h.redirectWithLoginError(w, r, "oauth_failed")
		return
	}

	if err := h.sessionStore.Set(w, user); err != nil {
		log.Printf("❌ Failed to write session cookie: %v", err)
		h.redirectWithLoginError(w, r, "session_failed")
		return
	}

	log.Printf("✅ Session established for user %s", user.ID)
	http.Redirect(w, r, h.siteURL("/"), http.StatusTemporaryRedirect)
}

func (h *SiteHTTPHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	log.Printf("🚪 Logout request received from %s", r.RemoteAddr)

	h.sessionStore.Clear(w)
	h.writeJSONResponse(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *SiteHTTPHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	user, ok := appctx.GetUser(r.Context())
	if !ok {
		h.writeJSONResponse(w, http.StatusOK, SessionHTTPResponse{User: nil})
		return
	}
	h.writeJSONResponse(w, http.StatusOK, SessionHTTPResponse{User: user})
}

// HandleVerifyLoginCode consumes a bot-verified login code. An unverified
// code is not an error: the visitor is told to DM the bot and retry.
func (h *SiteHTTPHandler) HandleVerifyLoginCode(w http.ResponseWriter, r *http.Request) {
	log.Printf("🔑 Login code verification request received from %s", r.RemoteAddr)

	var req VerifyCodeHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}

	result, err := h.authService.VerifyLoginCode(r.Context(), strings.TrimSpace(req.Code))
	if err != nil {
		log.Printf("❌ Login code verification failed: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, "An unexpected error occurred during verification.")
		return
	}

	user, ok := result.Get()
	if !ok {
		h.writeJSONResponse(w, http.StatusOK, VerifyCodeHTTPResponse{
			Success: false,
			Message: "Code not yet verified. Please make sure you have sent the code to the bot and try again in a few seconds.",
		})
		return
	}

	if err := h.sessionStore.Set(w, user); err != nil {
		log.Printf("❌ Failed to write session cookie: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, "An unexpected error occurred during verification.")
		return
	}

	log.Printf("✅ Session established via login code for user %s", user.ID)
	h.writeJSONResponse(w, http.StatusOK, VerifyCodeHTTPResponse{
		Success: true,
		Message: "Verification successful!",
		User:    user,
	})
}

func (h *SiteHTTPHandler) redirectWithLoginError(w http.ResponseWriter, r *http.Request, reason string) {
	query := url.Values{}
	query.Set("error", reason)
	http.Redirect(w, r, h.siteURL("/login")+"?"+query.Encode(), http.StatusTemporaryRedirect)
}

func (h *SiteHTTPHandler) siteURL(path string) string {
	return strings.TrimRight(h.cfg.SiteBaseURL, "/") + path
}
