package handler

import (
	"context"

	"github.com/practicum/shareit/server/internal/model"
	"github.com/practicum/shareit/server/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type UserService interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context, from, size int) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type ItemService interface {
	CreateItem(ctx context.Context, req model.CreateItemRequest, ownerID int64) (model.Item, error)
	UpdateItem(ctx context.Context, id int64, req model.UpdateItemRequest, userID int64) (model.Item, error)
	GetItem(ctx context.Context, itemID, userID int64) (model.ItemWithBookings, error)
	ListItems(ctx context.Context, ownerID int64, from, size int) ([]model.ItemWithBookings, error)
	SearchItems(ctx context.Context, text string, from, size int) ([]model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
	CreateComment(ctx context.Context, itemID, authorID int64, req model.CreateCommentRequest) (model.Comment, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, req model.CreateBookingRequest, bookerID int64) (model.Booking, error)
	SetBookingStatus(ctx context.Context, bookingID, userID int64, approved bool) (model.Booking, error)
	GetBooking(ctx context.Context, bookingID, userID int64) (model.Booking, error)
	ListBookingsByRenter(ctx context.Context, renterID int64, state model.BookingState, from, size int) ([]model.Booking, error)
	ListBookingsByOwner(ctx context.Context, ownerID int64, state model.BookingState, from, size int) ([]model.Booking, error)
}

type ItemRequestService interface {
	CreateItemRequest(ctx context.Context, req model.CreateItemRequestRequest, requestorID int64) (model.ItemRequest, error)
	ListOwnItemRequests(ctx context.Context, requestorID int64) ([]model.ItemRequestWithAnswers, error)
	ListItemRequests(ctx context.Context, userID int64, from, size int) ([]model.ItemRequestWithAnswers, error)
	GetItemRequest(ctx context.Context, userID, id int64) (model.ItemRequestWithAnswers, error)
}

type ShareItService interface {
	UserService
	ItemService
	BookingService
	ItemRequestService
}

var _ ShareItService = (*service.Service)(nil)
