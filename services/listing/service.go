package listing

import (
	"context"
	"fmt"

	listingRepo "aptiva/database/repository/listing"
	"aptiva/models"
	"aptiva/utils"

	"go.uber.org/zap"
)

// DefaultListingService serves the curated local inventory from Mongo and,
// when a US market fetcher is wired, merges scrape-driven results.
type DefaultListingService struct {
	Repo listingRepo.ListingRepository
	US   USMarket // optional; nil when the scrape market is not deployed
}

func (s *DefaultListingService) Get(id string) (*models.Listing, error) {
	l, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("listing lookup failed: %w", err)
	}
	return l, nil
}

func (s *DefaultListingService) Search(q models.ListingQuery) ([]models.Listing, error) {
	local, err := s.Repo.Search(q)
	if err != nil {
		return nil, fmt.Errorf("listing search failed: %w", err)
	}

	if s.US == nil {
		return local, nil
	}
	scraped, err := s.US.Search(context.Background(), q)
	if err != nil {
		// The curated market still answers when the scrape market is down.
		utils.GetLogger().Warn("us market search failed", zap.Error(err))
		return local, nil
	}
	return append(local, scraped...), nil
}
