// Package queue defines message payloads exchanged over the message broker
// and the publisher/consumer pair for the booking.confirmed queue.
package queue

// BookingConfirmedEvent is published when a booking is successfully placed.
// It carries enough denormalized detail for downstream consumers to log or
// notify without querying the primary database. EventID is a UUID assigned
// at publish time so consumers can deduplicate redeliveries.
type BookingConfirmedEvent struct {
	EventID      string   `json:"event_id"`
	BookingID    uint64   `json:"booking_id"`
	ShowID       uint64   `json:"show_id"`
	MovieTitle   string   `json:"movie_title"`
	TheatreName  string   `json:"theatre_name"`
	CityName     string   `json:"city_name"`
	ShowTime     string   `json:"show_time"`
	CustomerName string   `json:"customer_name"`
	Seats        []string `json:"seats"`
	ConfirmedAt  string   `json:"confirmed_at"`
}
