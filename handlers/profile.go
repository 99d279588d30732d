package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"sanctyr/appctx"
	"sanctyr/core"
	"sanctyr/models"
)

// Economy status values reported next to the profile. The frontend renders
// each differently: a member without a profile yet, a disabled economy
// integration and an unreachable economy service are not the same page.
const (
	EconomyStatusOK            = "ok"
	EconomyStatusNoProfile     = "no_profile"
	EconomyStatusNotConfigured = "not_configured"
	EconomyStatusUnavailable   = "unavailable"
)

// ProfileResponse merges the Discord member view with the economy profile.
// Economy is null unless EconomyStatus is "ok"; the member data is the
// required half.
type ProfileResponse struct {
	Member        *models.EnrichedMember `json:"member"`
	Economy       *models.EconomyProfile `json:"economy"`
	EconomyStatus string                 `json:"economy_status"`
	IsSelf        bool                   `json:"is_self"`
}

func (h *SiteHTTPHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	log.Printf("🪪 Profile request received for %s from %s", userID, r.RemoteAddr)

	var (
		member        *models.EnrichedMember
		economy       *models.EconomyProfile
		economyStatus = EconomyStatusOK
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		m, err := h.guildService.GetMember(ctx, userID)
		if err != nil {
			return err
		}
		member = m
		return nil
	})
	g.Go(func() error {
		profile, err := h.economyService.GetProfile(ctx, userID)
		if err != nil {
			// The economy half is optional: a dead economy service must
			// not take the whole profile page down
			log.Printf("⚠️ Economy profile unavailable for %s: %v", userID, err)
			if errors.Is(err, core.ErrNotConfigured) {
				economyStatus = EconomyStatusNotConfigured
			} else {
				economyStatus = EconomyStatusUnavailable
			}
			return nil
		}
		economy = profile.OrElse(nil)
		if economy == nil {
			economyStatus = EconomyStatusNoProfile
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			h.writeErrorResponse(w, http.StatusNotFound, "member not found")
			return
		}
		log.Printf("❌ Failed to build profile for %s: %v", userID, err)
		h.writeErrorResponse(w, http.StatusBadGateway, "failed to fetch profile")
		return
	}

	isSelf := false
	if sessionUser, ok := appctx.GetUser(r.Context()); ok {
		isSelf = sessionUser.ID == userID
	}

	h.writeJSONResponse(w, http.StatusOK, ProfileResponse{
		Member:        member,
		Economy:       economy,
		EconomyStatus: economyStatus,
		IsSelf:        isSelf,
	})
}
