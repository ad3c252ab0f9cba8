package models

import "time"

type User struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
}

const (
	RolePropertyManager  = "property_manager"
	RoleAdmin            = "admin"
	RoleCleaningBusiness = "cleaning_business"
)

type ServiceType struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image string  `json:"image,omitempty"`
	Price float64 `json:"price"`
}

type PropertyRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// BookingDate mirrors the date step of the booking wizard: a single date,
// a range, or a weekly routine.
type BookingDate struct {
	Type         string     `json:"type"`
	SelectedDate *time.Time `json:"selected_date,omitempty"`
	RangeStart   *time.Time `json:"range_start,omitempty"`
	RangeEnd     *time.Time `json:"range_end,omitempty"`
	RoutineDays  []string   `json:"routine_days,omitempty"`
}

const (
	DateTypeSingle  = "single"
	DateTypeRange   = "range"
	DateTypeRoutine = "routine"
)

type Booking struct {
	BookingID          string        `json:"booking_id"`
	RequestID          string        `json:"request_id,omitempty"`
	PropertyManagerID  string        `json:"property_manager_id"`
	Property           PropertyRef   `json:"property"`
	ServiceTypes       []ServiceType `json:"service_types"`
	Date               BookingDate   `json:"date"`
	TimeSlots          []string      `json:"time_slots"`
	Notes              string        `json:"notes,omitempty"`
	Status             string        `json:"status"`
	Amount             float64       `json:"amount,omitempty"`
	CleaningBusinessID string        `json:"cleaning_business_id,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
}

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

type PropertyImage struct {
	URL     string `json:"url"`
	IsCover bool   `json:"is_cover"`
}

type PropertyLocation struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// PropertyUnits carries the nine numeric capacity fields of the
// property-creation wizard.
type PropertyUnits struct {
	Bedrooms     int `json:"bedrooms"`
	Bathrooms    int `json:"bathrooms"`
	Kitchens     int `json:"kitchens"`
	LivingRooms  int `json:"living_rooms"`
	Offices      int `json:"offices"`
	MeetingRooms int `json:"meeting_rooms"`
	Lobbies      int `json:"lobbies"`
	Restrooms    int `json:"restrooms"`
	Floors       int `json:"floors"`
}

type Message struct {
	MessageID string    `json:"message_id"`
	LocalID   string    `json:"local_id,omitempty"`
	ChatID    string    `json:"chat_id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	IsRead    bool      `json:"is_read"`
	Pending   bool      `json:"pending,omitempty"`
	Failed    bool      `json:"failed,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

type Participant struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type Chat struct {
	ChatID       string        `json:"chat_id"`
	Participants []Participant `json:"participants"`
	Messages     []Message     `json:"messages"`
	LastMessage  string        `json:"last_message,omitempty"`
	UnreadCount  int           `json:"unread_count"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type Ticket struct {
	TicketID    string    `json:"ticket_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	UserID      string    `json:"user_id"`
	UserAvatar  string    `json:"user_avatar,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	TicketOpen     = "open"
	TicketResolved = "resolved"
)

type WalletTransaction struct {
	TransactionID string    `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type Refund struct {
	RefundID  string    `json:"refund_id"`
	BookingID string    `json:"booking_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type AnalyticsSummary struct {
	TotalBookings     int       `json:"total_bookings"`
	ActiveBookings    int       `json:"active_bookings"`
	CompletedBookings int       `json:"completed_bookings"`
	TotalSpend        float64   `json:"total_spend"`
	TotalProperties   int       `json:"total_properties"`
	OpenTickets       int       `json:"open_tickets"`
	GeneratedAt       time.Time `json:"generated_at"`
}

type CleaningBusiness struct {
	BusinessID   string  `json:"business_id"`
	BusinessName string  `json:"business_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone,omitempty"`
	City         string  `json:"city,omitempty"`
	Verified     bool    `json:"verified"`
	Rating       float64 `json:"rating,omitempty"`
	TeamSize     int     `json:"team_size,omitempty"`
}
