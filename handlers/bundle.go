package handlers

// HandlerBundle aggregates the HTTP handlers so route registration
// receives a single dependency.
type HandlerBundle struct {
	Auth    *AuthHandler
	Chat    *ChatHandler
	Tour    *TourHandler
	Listing *ListingHandler
}
