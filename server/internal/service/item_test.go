package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/practicum/shareit/server/internal/errs"
	"github.com/practicum/shareit/server/internal/model"
	repo_mocks "github.com/practicum/shareit/server/internal/repository/mocks"
)

func TestService_CreateComment(t *testing.T) {
	t.Parallel()
	const (
		itemID   = int64(10)
		authorID = int64(1)
	)
	item := model.Item{ID: itemID, OwnerID: 2, Available: true}
	author := model.User{ID: authorID, Name: "author"}
	req := model.CreateCommentRequest{Text: "great drill"}

	type mockBehavior func(r *repo_mocks.MockRepository)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		wantErr      error
		wantMsg      string
	}{
		{
			name: "ok",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetItem(gomock.Any(), itemID).Return(item, nil)
				r.EXPECT().GetUser(gomock.Any(), authorID).Return(author, nil)
				r.EXPECT().HasFinishedBooking(gomock.Any(), itemID, authorID, testNow).Return(true, nil)
				r.EXPECT().CreateComment(gomock.Any(), model.Comment{
					Text:     req.Text,
					ItemID:   itemID,
					AuthorID: authorID,
					Created:  testNow,
				}).Return(model.Comment{ID: 5, Text: req.Text, ItemID: itemID, AuthorID: authorID, Created: testNow}, nil)
			},
		},
		{
			name: "no finished booking",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetItem(gomock.Any(), itemID).Return(item, nil)
				r.EXPECT().GetUser(gomock.Any(), authorID).Return(author, nil)
				r.EXPECT().HasFinishedBooking(gomock.Any(), itemID, authorID, testNow).Return(false, nil)
			},
			wantErr: errs.ErrValidation,
			wantMsg: "no finished booking of the item",
		},
		{
			name: "unknown item",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetItem(gomock.Any(), itemID).
					Return(model.Item{}, errors.Wrap(errs.ErrNotFound, "item"))
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "unknown author",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetItem(gomock.Any(), itemID).Return(item, nil)
				r.EXPECT().GetUser(gomock.Any(), authorID).
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

			got, err := svc.CreateComment(context.Background(), itemID, authorID, req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantMsg != "" {
					require.Contains(t, err.Error(), tt.wantMsg)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, req.Text, got.Text)
			require.Equal(t, testNow, got.Created)
		})
	}
}

func TestService_GetItem_bookings(t *testing.T) {
	t.Parallel()
	const (
		itemID  = int64(10)
		ownerID = int64(2)
	)
	item := model.Item{ID: itemID, OwnerID: ownerID, Available: true}

	// ordered start desc, as the store returns them
	bookings := []model.Booking{
		{ID: 103, BookerID: 5, Start: testNow.Add(72 * time.Hour), End: testNow.Add(96 * time.Hour), Status: model.StatusApproved},
		{ID: 102, BookerID: 4, Start: testNow.Add(24 * time.Hour), End: testNow.Add(48 * time.Hour), Status: model.StatusApproved},
		{ID: 101, BookerID: 3, Start: testNow.Add(-48 * time.Hour), End: testNow.Add(-24 * time.Hour), Status: model.StatusApproved},
	}

	t.Run("owner sees last and next booking", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetItem(gomock.Any(), itemID).Return(item, nil)
		repo.EXPECT().ListCommentsByItem(gomock.Any(), itemID).Return(nil, nil)
		repo.EXPECT().ListApprovedByItem(gomock.Any(), itemID).Return(bookings, nil)

		got, err := svc.GetItem(context.Background(), itemID, ownerID)
		require.NoError(t, err)
		require.NotNil(t, got.LastBooking)
		require.Equal(t, int64(101), got.LastBooking.ID)
		require.NotNil(t, got.NextBooking)
		require.Equal(t, int64(102), got.NextBooking.ID)
		require.Equal(t, []model.Comment{}, got.Comments)
	})

	t.Run("non-owner sees no bookings", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		comments := []model.Comment{{ID: 5, Text: "fine", ItemID: itemID}}
		repo.EXPECT().GetItem(gomock.Any(), itemID).Return(item, nil)
		repo.EXPECT().ListCommentsByItem(gomock.Any(), itemID).Return(comments, nil)

		got, err := svc.GetItem(context.Background(), itemID, 7)
		require.NoError(t, err)
		require.Nil(t, got.LastBooking)
		require.Nil(t, got.NextBooking)
		require.Equal(t, comments, got.Comments)
	})

	t.Run("only future bookings leave last empty", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetItem(gomock.Any(), itemID).Return(item, nil)
		repo.EXPECT().ListCommentsByItem(gomock.Any(), itemID).Return(nil, nil)
		repo.EXPECT().ListApprovedByItem(gomock.Any(), itemID).Return(bookings[:2], nil)

		got, err := svc.GetItem(context.Background(), itemID, ownerID)
		require.NoError(t, err)
		require.Nil(t, got.LastBooking)
		require.NotNil(t, got.NextBooking)
		require.Equal(t, int64(102), got.NextBooking.ID)
	})
}

func TestService_UpdateItem(t *testing.T) {
	t.Parallel()
	const (
		itemID  = int64(10)
		ownerID = int64(2)
	)
	item := model.Item{ID: itemID, Name: "drill", Description: "simple drill", Available: true, OwnerID: ownerID}

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		name := "drill+"
		want := item
		want.Name = name
		repo.EXPECT().GetItem(gomock.Any(), itemID).Return(item, nil)
		repo.EXPECT().UpdateItem(gomock.Any(), want).Return(want, nil)

		got, err := svc.UpdateItem(context.Background(), itemID, model.UpdateItemRequest{Name: &name}, ownerID)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("non-owner gets not found", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		name := "drill+"
		repo.EXPECT().GetItem(gomock.Any(), itemID).Return(item, nil)

		_, err := svc.UpdateItem(context.Background(), itemID, model.UpdateItemRequest{Name: &name}, 7)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_SearchItems(t *testing.T) {
	t.Parallel()

	t.Run("blank query returns empty without store access", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)

		got, err := svc.SearchItems(context.Background(), "", 0, 10)
		require.NoError(t, err)
		require.Equal(t, []model.Item{}, got)
	})

	t.Run("pages by from and size", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		out := []model.Item{{ID: 10}}
		repo.EXPECT().SearchItems(gomock.Any(), "drill", 1, 5).Return(out, nil)

		got, err := svc.SearchItems(context.Background(), "drill", 5, 5)
		require.NoError(t, err)
		require.Equal(t, out, got)
	})

	t.Run("invalid page", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)

		_, err := svc.SearchItems(context.Background(), "drill", -1, 5)
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}
