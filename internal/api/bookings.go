package api

import (
	"context"
	"net/http"

	"github.com/Limpiar-Hub/portal-core/internal/models"
)

type CreateBookingInput struct {
	RequestID    string               `json:"request_id"`
	PropertyID   string               `json:"property_id"`
	ServiceTypes []models.ServiceType `json:"service_types"`
	Date         models.BookingDate   `json:"date"`
	TimeSlots    []string             `json:"time_slots"`
	Notes        string               `json:"notes,omitempty"`
}

func (c *Client) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	err := c.get(ctx, "/bookings", &out)
	return out, err
}

func (c *Client) GetBooking(ctx context.Context, bookingID string) (models.Booking, error) {
	var out models.Booking
	err := c.get(ctx, "/bookings/"+bookingID, &out)
	return out, err
}

// CreateBooking posts a new booking. RequestID is the draft's idempotency
// key: the backend treats a repeat of the same key as the same booking,
// so a retried or double-clicked submit cannot create a duplicate.
func (c *Client) CreateBooking(ctx context.Context, input CreateBookingInput) (models.Booking, error) {
	if input.RequestID == "" || input.PropertyID == "" || len(input.ServiceTypes) == 0 {
		return models.Booking{}, &Error{Status: http.StatusBadRequest, Code: "invalid_request", Message: "request_id, property_id, and service_types are required"}
	}
	var out models.Booking
	err := c.post(ctx, "/bookings", input, &out)
	return out, err
}

func (c *Client) ConfirmBooking(ctx context.Context, bookingID string) (models.Booking, error) {
	payload := map[string]string{"booking_id": bookingID}
	var out models.Booking
	err := c.post(ctx, "/bookings/confirm", payload, &out)
	return out, err
}

func (c *Client) AttachCleaningBusiness(ctx context.Context, bookingID, businessID string) (models.Booking, error) {
	payload := map[string]string{"booking_id": bookingID, "cleaning_business_id": businessID}
	var out models.Booking
	err := c.post(ctx, "/bookings/attach-cleaning-business", payload, &out)
	return out, err
}
