package listingRepo

import "aptiva/models"

// ListingRepository defines persistence for curated local inventory.
type ListingRepository interface {
	GetByID(id string) (*models.Listing, error)
	Search(q models.ListingQuery) ([]models.Listing, error)
	Create(listing *models.Listing) error
	Update(listing *models.Listing) error
	Delete(id string) error
}
