package sessions

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"

	"sanctyr/models"
)

// cookieName matches the session cookie the site has always used.
const cookieName = "dls_session"

// maxAge is how long a login session lasts.
const maxAge = 7 * 24 * 60 * 60 // seconds

// Store issues and reads the encrypted, signed session cookie holding the
// authenticated visitor. The cookie is HttpOnly: only the server can read
// it back.
type Store struct {
	codec  *securecookie.SecureCookie
	secure bool
}

// NewStore builds a session store from hex-encoded hash and block keys
// (32 bytes each once decoded). The block key enables encryption, not just
// signing, so the cookie contents are opaque to the visitor too.
func NewStore(hashKeyHex, blockKeyHex string, secure bool) (*Store, error) {
	hashKey, err := hex.DecodeString(hashKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session hash key: %w", err)
	}
	blockKey, err := hex.DecodeString(blockKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session block key: %w", err)
	}
	if len(hashKey) < 32 {
		return nil, fmt.Errorf("session hash key must be at least 32 bytes, got %d", len(hashKey))
	}
	if len(blockKey) != 16 && len(blockKey) != 24 && len(blockKey) != 32 {
		return nil, fmt.Errorf("session block key must be 16, 24 or 32 bytes, got %d", len(blockKey))
	}

	codec := securecookie.New(hashKey, blockKey)
	codec.MaxAge(maxAge)

	return &Store{codec: codec, secure: secure}, nil
}

// Set writes the session cookie for the given user.
func (s *Store) Set(w http.ResponseWriter, user *models.SessionUser) error {
	encoded, err := s.codec.Encode(cookieName, user)
	if err != nil {
		return fmt.Errorf("failed to encode session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Get reads the session user from the request cookie. A missing, expired
// or tampered cookie yields (nil, nil): the visitor is simply anonymous.
func (s *Store) Get(r *http.Request) (*models.SessionUser, error) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session cookie: %w", err)
	}

	var user models.SessionUser
	if err := s.codec.Decode(cookieName, cookie.Value, &user); err != nil {
		// Tampered or stale cookie: treat as logged out
		return nil, nil
	}
	return &user, nil
}

// Clear destroys the session cookie.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
