package repository

import (
	"context"
	"time"

	"github.com/practicum/shareit/server/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type UserRepository interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context, page, size int) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type ItemRepository interface {
	CreateItem(ctx context.Context, item model.Item) (model.Item, error)
	GetItem(ctx context.Context, id int64) (model.Item, error)
	ListItemsByOwner(ctx context.Context, ownerID int64, page, size int) ([]model.Item, error)
	ListItemsByRequest(ctx context.Context, requestID int64) ([]model.Item, error)
	SearchItems(ctx context.Context, text string, page, size int) ([]model.Item, error)
	UpdateItem(ctx context.Context, item model.Item) (model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

type ItemRequestRepository interface {
	CreateRequest(ctx context.Context, req model.ItemRequest) (model.ItemRequest, error)
	GetRequest(ctx context.Context, id int64) (model.ItemRequest, error)
	ListRequestsByRequestor(ctx context.Context, requestorID int64) ([]model.ItemRequest, error)
	ListRequests(ctx context.Context, page, size int) ([]model.ItemRequest, error)
}

// BookingRepository has one method per query shape. Filter crossing happens
// in the service.
type BookingRepository interface {
	CreateBooking(ctx context.Context, b model.Booking) (model.Booking, error)
	GetBooking(ctx context.Context, id int64) (model.Booking, error)
	// UpdateBookingStatus flips WAITING to the given status. ErrNotFound when
	// the booking is missing or no longer WAITING.
	UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) (model.Booking, error)

	ListByBooker(ctx context.Context, bookerID int64, page, size int) ([]model.Booking, error)
	ListByBookerAndStatus(ctx context.Context, bookerID int64, status model.BookingStatus, page, size int) ([]model.Booking, error)
	ListByBookerAndStartAfter(ctx context.Context, bookerID int64, now time.Time, page, size int) ([]model.Booking, error)
	ListByBookerAndEndBefore(ctx context.Context, bookerID int64, now time.Time, page, size int) ([]model.Booking, error)
	ListByBookerCurrent(ctx context.Context, bookerID int64, now time.Time, page, size int) ([]model.Booking, error)

	ListByOwner(ctx context.Context, ownerID int64, page, size int) ([]model.Booking, error)
	ListByOwnerAndStatus(ctx context.Context, ownerID int64, status model.BookingStatus, page, size int) ([]model.Booking, error)
	ListByOwnerAndStartAfter(ctx context.Context, ownerID int64, now time.Time, page, size int) ([]model.Booking, error)
	ListByOwnerAndEndBefore(ctx context.Context, ownerID int64, now time.Time, page, size int) ([]model.Booking, error)
	ListByOwnerCurrent(ctx context.Context, ownerID int64, now time.Time, page, size int) ([]model.Booking, error)

	ListApprovedByItem(ctx context.Context, itemID int64) ([]model.Booking, error)
	HasFinishedBooking(ctx context.Context, itemID, userID int64, now time.Time) (bool, error)
}

type CommentRepository interface {
	CreateComment(ctx context.Context, c model.Comment) (model.Comment, error)
	ListCommentsByItem(ctx context.Context, itemID int64) ([]model.Comment, error)
}

type Repository interface {
	UserRepository
	ItemRepository
	ItemRequestRepository
	BookingRepository
	CommentRepository
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName    = `users`
	itemsTableName    = `items`
	requestsTableName = `requests`
	bookingsTableName = `bookings`
	commentsTableName = `comments`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func paginate(q sq.SelectBuilder, page, size int) sq.SelectBuilder {
	if size > 0 {
		q = q.Limit(uint64(size)).Offset(uint64(page * size))
	}
	return q
}
