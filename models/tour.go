package models

import "time"

// TourRecord is a booked (or partially booked) apartment tour persisted for
// later listing and reconciliation.
type TourRecord struct {
	ID                 string        `bson:"id" json:"id"`
	UserID             string        `bson:"userId" json:"userId"`
	ListingID          string        `bson:"listingId" json:"listingId"`
	ListingTitle       string        `bson:"listingTitle" json:"listingTitle"`
	ListingAddress     string        `bson:"listingAddress" json:"listingAddress"`
	Start              time.Time     `bson:"start" json:"start"`
	End                time.Time     `bson:"end" json:"end"`
	RenterEventID      string        `bson:"renterEventId,omitempty" json:"renterEventId,omitempty"`
	LandlordEventID    string        `bson:"landlordEventId,omitempty" json:"landlordEventId,omitempty"`
	LandlordCalendarID string        `bson:"landlordCalendarId,omitempty" json:"landlordCalendarId,omitempty"`
	Status             BookingStatus `bson:"status" json:"status"`
	CreatedAt          time.Time     `bson:"createdAt" json:"createdAt"`
}

// ReminderPayload is the asynq task body for a tour reminder.
type ReminderPayload struct {
	TourID   string `json:"tourId"`
	UserID   string `json:"userId"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	FireDate string `json:"fireDate"`
}
