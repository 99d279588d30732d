package economy

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/samber/mo"

	"sanctyr/cache"
	"sanctyr/clients"
	"sanctyr/core"
	"sanctyr/models"
)

// EconomyService reads profiles from and proxies commands to the external
// economy system. The economy service is authoritative; nothing is
// persisted here.
type EconomyService struct {
	economyClient clients.EconomyClient
	responseCache *cache.ResponseCache
}

func NewEconomyService(economyClient clients.EconomyClient, responseCache *cache.ResponseCache) *EconomyService {
	return &EconomyService{
		economyClient: economyClient,
		responseCache: responseCache,
	}
}

// GetProfile fetches a user's economy profile. A user without a profile
// yet (upstream 404) is None, not an error; configuration and upstream
// failures keep their sentinel so the UI can render each differently.
func (s *EconomyService) GetProfile(ctx context.Context, userID string) (mo.Option[*models.EconomyProfile], error) {
	if userID == "" {
		return mo.None[*models.EconomyProfile](), fmt.Errorf("user ID not provided")
	}

	profile, err := cache.Fetch(s.responseCache, "economy:profile:"+userID, cache.TTLLive,
		func() (*models.EconomyProfile, error) {
			return s.economyClient.GetProfile(ctx, userID)
		})
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return mo.None[*models.EconomyProfile](), nil
		}
		return mo.None[*models.EconomyProfile](), err
	}

	return mo.Some(profile), nil
}

// ExecuteAction proxies a delegated economy command and drops the user's
// cached profile, since the command likely changed it.
func (s *EconomyService) ExecuteAction(
	ctx context.Context,
	command, userID string,
	args []string,
) (*models.EconomyActionResult, error) {
	if command == "" {
		return nil, fmt.Errorf("command not provided")
	}
	if userID == "" {
		return nil, fmt.Errorf("user ID not provided")
	}

	log.Printf("📋 Proxying economy action %q for user %s", command, userID)

	result, err := s.economyClient.ExecuteAction(ctx, command, userID, args)
	if err != nil {
		return nil, fmt.Errorf("failed to execute economy action: %w", err)
	}

	s.responseCache.Invalidate("economy:profile:" + userID)
	return result, nil
}
