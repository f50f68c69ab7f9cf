package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/practicum/shareit/server/internal/errs"
	"github.com/practicum/shareit/server/internal/model"
	repo_mocks "github.com/practicum/shareit/server/internal/repository/mocks"
	"github.com/practicum/shareit/server/internal/service"
)

var testNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*service.Service, *repo_mocks.MockRepository) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo, nil, zap.NewNop(),
		service.WithClock(func() time.Time { return testNow }))
	return svc, repo
}

func TestService_CreateBooking(t *testing.T) {
	t.Parallel()
	var (
		booker = model.User{ID: 1, Name: "booker", Email: "booker@mail.com"}
		start  = testNow.Add(24 * time.Hour)
		end    = testNow.Add(48 * time.Hour)
	)
	type mockBehavior func(r *repo_mocks.MockRepository, req model.CreateBookingRequest)

	tests := []struct {
		name         string
		req          model.CreateBookingRequest
		mockBehavior mockBehavior
		wantStatus   model.BookingStatus
		wantErr      error
		wantMsg      string
	}{
		{
			name: "ok",
			req:  model.CreateBookingRequest{ItemID: 10, Start: start, End: end},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateBookingRequest) {
				r.EXPECT().GetUser(gomock.Any(), booker.ID).Return(booker, nil)
				r.EXPECT().GetItem(gomock.Any(), req.ItemID).
					Return(model.Item{ID: 10, OwnerID: 2, Available: true}, nil)
				r.EXPECT().CreateBooking(gomock.Any(), model.Booking{
					Start:    req.Start,
					End:      req.End,
					ItemID:   10,
					BookerID: booker.ID,
					Status:   model.StatusWaiting,
				}).Return(model.Booking{ID: 100, Status: model.StatusWaiting}, nil)
			},
			wantStatus: model.StatusWaiting,
		},
		{
			name:         "end before start",
			req:          model.CreateBookingRequest{ItemID: 10, Start: end, End: start},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateBookingRequest) {},
			wantErr:      errs.ErrValidation,
			wantMsg:      "end before start",
		},
		{
			name:         "start in the past",
			req:          model.CreateBookingRequest{ItemID: 10, Start: testNow.Add(-time.Hour), End: end},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateBookingRequest) {},
			wantErr:      errs.ErrValidation,
			wantMsg:      "booking in the past",
		},
		{
			name: "unknown booker",
			req:  model.CreateBookingRequest{ItemID: 10, Start: start, End: end},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateBookingRequest) {
				r.EXPECT().GetUser(gomock.Any(), booker.ID).
					Return(model.User{}, errors.Wrap(errs.ErrNotFound, "user"))
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "item not available",
			req:  model.CreateBookingRequest{ItemID: 10, Start: start, End: end},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateBookingRequest) {
				r.EXPECT().GetUser(gomock.Any(), booker.ID).Return(booker, nil)
				r.EXPECT().GetItem(gomock.Any(), req.ItemID).
					Return(model.Item{ID: 10, OwnerID: 2, Available: false}, nil)
			},
			wantErr: errs.ErrValidation,
			wantMsg: "item not available",
		},
		{
			name: "own item hides ownership",
			req:  model.CreateBookingRequest{ItemID: 10, Start: start, End: end},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateBookingRequest) {
				r.EXPECT().GetUser(gomock.Any(), booker.ID).Return(booker, nil)
				r.EXPECT().GetItem(gomock.Any(), req.ItemID).
					Return(model.Item{ID: 10, OwnerID: booker.ID, Available: true}, nil)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			tt.mockBehavior(repo, tt.req)

			got, err := svc.CreateBooking(context.Background(), tt.req, booker.ID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantMsg != "" {
					require.Contains(t, err.Error(), tt.wantMsg)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestService_SetBookingStatus(t *testing.T) {
	t.Parallel()
	const (
		bookingID = int64(100)
		ownerID   = int64(2)
	)
	waiting := model.Booking{ID: bookingID, ItemOwnerID: ownerID, Status: model.StatusWaiting}

	type mockBehavior func(r *repo_mocks.MockRepository)

	tests := []struct {
		name         string
		userID       int64
		approved     bool
		mockBehavior mockBehavior
		wantStatus   model.BookingStatus
		wantErr      error
		wantMsg      string
	}{
		{
			name:     "approve",
			userID:   ownerID,
			approved: true,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBooking(gomock.Any(), bookingID).Return(waiting, nil)
				r.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID, model.StatusApproved).
					Return(model.Booking{ID: bookingID, ItemOwnerID: ownerID, Status: model.StatusApproved}, nil)
			},
			wantStatus: model.StatusApproved,
		},
		{
			name:     "reject",
			userID:   ownerID,
			approved: false,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBooking(gomock.Any(), bookingID).Return(waiting, nil)
				r.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID, model.StatusRejected).
					Return(model.Booking{ID: bookingID, ItemOwnerID: ownerID, Status: model.StatusRejected}, nil)
			},
			wantStatus: model.StatusRejected,
		},
		{
			name:     "not the owner",
			userID:   7,
			approved: true,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBooking(gomock.Any(), bookingID).Return(waiting, nil)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name:     "already approved",
			userID:   ownerID,
			approved: true,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBooking(gomock.Any(), bookingID).
					Return(model.Booking{ID: bookingID, ItemOwnerID: ownerID, Status: model.StatusApproved}, nil)
			},
			wantErr: errs.ErrValidation,
			wantMsg: "status already 'APPROVED'",
		},
		{
			name:     "canceled cannot be resolved",
			userID:   ownerID,
			approved: true,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBooking(gomock.Any(), bookingID).
					Return(model.Booking{ID: bookingID, ItemOwnerID: ownerID, Status: model.StatusCanceled}, nil)
			},
			wantErr: errs.ErrValidation,
			wantMsg: "status already 'CANCELED'",
		},
		{
			name:     "lost resolution race",
			userID:   ownerID,
			approved: true,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBooking(gomock.Any(), bookingID).Return(waiting, nil)
				r.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID, model.StatusApproved).
					Return(model.Booking{}, errors.Wrap(errs.ErrNotFound, "booking"))
				r.EXPECT().GetBooking(gomock.Any(), bookingID).
					Return(model.Booking{ID: bookingID, ItemOwnerID: ownerID, Status: model.StatusRejected}, nil)
			},
			wantErr: errs.ErrValidation,
			wantMsg: "status already 'REJECTED'",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			tt.mockBehavior(repo)

			got, err := svc.SetBookingStatus(context.Background(), bookingID, tt.userID, tt.approved)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantMsg != "" {
					require.Contains(t, err.Error(), tt.wantMsg)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestService_GetBooking(t *testing.T) {
	t.Parallel()
	b := model.Booking{ID: 100, BookerID: 1, ItemOwnerID: 2, Status: model.StatusWaiting}

	tests := []struct {
		name    string
		userID  int64
		wantErr error
	}{
		{name: "booker sees own booking", userID: 1},
		{name: "owner sees booking of own item", userID: 2},
		{name: "stranger gets not found", userID: 3, wantErr: errs.ErrNotFound},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)

			got, err := svc.GetBooking(context.Background(), b.ID, tt.userID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, b, got)
		})
	}
}

func TestService_ListBookingsByRenter(t *testing.T) {
	t.Parallel()
	const renterID = int64(1)
	renter := model.User{ID: renterID, Name: "renter"}
	out := []model.Booking{{ID: 100}}

	// from=7,size=3 selects page 2
	const (
		from = 7
		size = 3
		page = 2
	)

	type mockBehavior func(r *repo_mocks.MockRepository)

	tests := []struct {
		name         string
		state        model.BookingState
		from, size   int
		mockBehavior mockBehavior
		wantErr      error
		wantMsg      string
	}{
		{
			name:  "all",
			state: model.StateAll,
			from:  from, size: size,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), renterID).Return(renter, nil)
				r.EXPECT().ListByBooker(gomock.Any(), renterID, page, size).Return(out, nil)
			},
		},
		{
			name:  "future uses pinned now",
			state: model.StateFuture,
			from:  from, size: size,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), renterID).Return(renter, nil)
				r.EXPECT().ListByBookerAndStartAfter(gomock.Any(), renterID, testNow, page, size).Return(out, nil)
			},
		},
		{
			name:  "past uses pinned now",
			state: model.StatePast,
			from:  from, size: size,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), renterID).Return(renter, nil)
				r.EXPECT().ListByBookerAndEndBefore(gomock.Any(), renterID, testNow, page, size).Return(out, nil)
			},
		},
		{
			name:  "current",
			state: model.StateCurrent,
			from:  from, size: size,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), renterID).Return(renter, nil)
				r.EXPECT().ListByBookerCurrent(gomock.Any(), renterID, testNow, page, size).Return(out, nil)
			},
		},
		{
			name:  "waiting",
			state: model.StateWaiting,
			from:  from, size: size,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), renterID).Return(renter, nil)
				r.EXPECT().ListByBookerAndStatus(gomock.Any(), renterID, model.StatusWaiting, page, size).Return(out, nil)
			},
		},
		{
			name:  "rejected",
			state: model.StateRejected,
			from:  from, size: size,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), renterID).Return(renter, nil)
				r.EXPECT().ListByBookerAndStatus(gomock.Any(), renterID, model.StatusRejected, page, size).Return(out, nil)
			},
		},
		{
			name:  "unknown state",
			state: model.BookingState("SOMEDAY"),
			from:  from, size: size,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), renterID).Return(renter, nil)
			},
			wantErr: errs.ErrValidation,
			wantMsg: "unknown state: SOMEDAY",
		},
		{
			name:  "negative from rejected before any lookup",
			state: model.StateAll,
			from:  -1, size: size,
			mockBehavior: func(r *repo_mocks.MockRepository) {},
			wantErr:      errs.ErrValidation,
			wantMsg:      "invalid search parameters",
		},
		{
			name:  "zero size rejected before any lookup",
			state: model.StateAll,
			from:  0, size: 0,
			mockBehavior: func(r *repo_mocks.MockRepository) {},
			wantErr:      errs.ErrValidation,
			wantMsg:      "invalid search parameters",
		},
		{
			name:  "unknown renter",
			state: model.StateAll,
			from:  from, size: size,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), renterID).
					Return(model.User{}, errors.Wrap(errs.ErrNotFound, "user"))
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			tt.mockBehavior(repo)

			got, err := svc.ListBookingsByRenter(context.Background(), renterID, tt.state, tt.from, tt.size)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantMsg != "" {
					require.Contains(t, err.Error(), tt.wantMsg)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, out, got)
		})
	}
}

func TestService_ListBookingsByOwner(t *testing.T) {
	t.Parallel()
	const ownerID = int64(2)
	owner := model.User{ID: ownerID, Name: "owner"}
	out := []model.Booking{{ID: 100}, {ID: 99}}

	type mockBehavior func(r *repo_mocks.MockRepository)

	tests := []struct {
		name         string
		state        model.BookingState
		from, size   int
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name:  "all first page",
			state: model.StateAll,
			from:  0, size: 10,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), ownerID).Return(owner, nil)
				r.EXPECT().ListByOwner(gomock.Any(), ownerID, 0, 10).Return(out, nil)
			},
		},
		{
			name:  "current uses pinned now",
			state: model.StateCurrent,
			from:  4, size: 2,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), ownerID).Return(owner, nil)
				r.EXPECT().ListByOwnerCurrent(gomock.Any(), ownerID, testNow, 2, 2).Return(out, nil)
			},
		},
		{
			name:  "waiting",
			state: model.StateWaiting,
			from:  0, size: 10,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), ownerID).Return(owner, nil)
				r.EXPECT().ListByOwnerAndStatus(gomock.Any(), ownerID, model.StatusWaiting, 0, 10).Return(out, nil)
			},
		},
		{
			name:  "unknown state",
			state: model.BookingState("later"),
			from:  0, size: 10,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), ownerID).Return(owner, nil)
			},
			wantErr: errs.ErrValidation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			tt.mockBehavior(repo)

			got, err := svc.ListBookingsByOwner(context.Background(), ownerID, tt.state, tt.from, tt.size)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, out, got)
		})
	}
}
