package listing

import (
	"context"

	"aptiva/models"
)

// Service supplies the currently discussed listing's details, including the
// title/address stamped into tour calendar events.
type Service interface {
	Get(id string) (*models.Listing, error)
	Search(q models.ListingQuery) ([]models.Listing, error)
}

// USMarket is the boundary to the scrape-driven US market. Scraping itself
// lives outside this service; implementations wrap whatever fetcher is
// deployed alongside.
type USMarket interface {
	Search(ctx context.Context, q models.ListingQuery) ([]models.Listing, error)
}
