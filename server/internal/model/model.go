package model

import (
	"time"

	"github.com/pkg/errors"
)

// BookingStatus is the closed set of booking states. Anything else is
// rejected at parse time.
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	StatusCanceled BookingStatus = "CANCELED"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCanceled:
		return BookingStatus(s), nil
	}
	return "", errors.Errorf("unknown status: %s", s)
}

// BookingState is the query-time filter over a subject's bookings.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

func ParseBookingState(s string) (BookingState, error) {
	switch BookingState(s) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return BookingState(s), nil
	}
	return "", errors.Errorf("unknown state: %s", s)
}

type User struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

type Item struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Available   bool   `json:"available" db:"available"`
	OwnerID     int64  `json:"ownerId" db:"owner_id"`
	RequestID   *int64 `json:"requestId,omitempty" db:"request_id"`
}

type ItemRequest struct {
	ID          int64     `json:"id" db:"id"`
	Description string    `json:"description" db:"description"`
	RequestorID int64     `json:"requestorId" db:"requestor_id"`
	Created     time.Time `json:"created" db:"created"`
}

// ItemRequestWithAnswers carries the items listed in response to a request.
type ItemRequestWithAnswers struct {
	ItemRequest
	Items []Item `json:"items"`
}

type Booking struct {
	ID       int64         `json:"id" db:"id"`
	Start    time.Time     `json:"start" db:"start_ts"`
	End      time.Time     `json:"end" db:"end_ts"`
	ItemID   int64         `json:"itemId" db:"item_id"`
	BookerID int64         `json:"bookerId" db:"booker_id"`
	Status   BookingStatus `json:"status" db:"status"`

	// joined for responses
	ItemName    string `json:"itemName,omitempty" db:"item_name"`
	ItemOwnerID int64  `json:"-" db:"item_owner_id"`
	BookerName  string `json:"bookerName,omitempty" db:"booker_name"`
}

// BookingShort is the last/next booking reference embedded in item views.
type BookingShort struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

type Comment struct {
	ID         int64     `json:"id" db:"id"`
	Text       string    `json:"text" db:"text"`
	ItemID     int64     `json:"itemId" db:"item_id"`
	AuthorID   int64     `json:"authorId" db:"author_id"`
	AuthorName string    `json:"authorName" db:"author_name"`
	Created    time.Time `json:"created" db:"created"`
}

// ItemWithBookings is the owner-enriched item view.
type ItemWithBookings struct {
	Item
	LastBooking *BookingShort `json:"lastBooking"`
	NextBooking *BookingShort `json:"nextBooking"`
	Comments    []Comment     `json:"comments"`
}

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" validate:"required"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
}

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateItemRequestRequest struct {
	Description string `json:"description" validate:"required"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}
