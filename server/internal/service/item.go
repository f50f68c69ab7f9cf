package service

import (
	"context"

	"github.com/practicum/shareit/server/internal/errs"
	"github.com/practicum/shareit/server/internal/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func (s *Service) CreateItem(ctx context.Context, req model.CreateItemRequest, ownerID int64) (model.Item, error) {
	owner, err := s.repo.GetUser(ctx, ownerID)
	if err != nil {
		return model.Item{}, err
	}
	if req.RequestID != nil {
		if _, err := s.repo.GetRequest(ctx, *req.RequestID); err != nil {
			return model.Item{}, err
		}
	}

	item, err := s.repo.CreateItem(ctx, model.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     owner.ID,
		RequestID:   req.RequestID,
	})
	if err != nil {
		return model.Item{}, err
	}
	s.log.Info("item created", zap.Int64("id", item.ID), zap.Int64("owner", owner.ID))
	return item, nil
}

// UpdateItem applies a partial update. A non-owner gets "not found", the
// same answer a stranger would get for a missing item.
func (s *Service) UpdateItem(ctx context.Context, id int64, req model.UpdateItemRequest, userID int64) (model.Item, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return model.Item{}, err
	}
	if item.OwnerID != userID {
		return model.Item{}, errors.Wrap(errs.ErrNotFound, "item does not belong to user")
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	return s.repo.UpdateItem(ctx, item)
}

// GetItem returns the item enriched with comments. The owner additionally
// sees the last and next approved booking.
func (s *Service) GetItem(ctx context.Context, itemID, userID int64) (model.ItemWithBookings, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return model.ItemWithBookings{}, err
	}

	var (
		comments []model.Comment
		bookings []model.Booking
	)
	gg, ggCtx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		comments, err = s.repo.ListCommentsByItem(ggCtx, itemID)
		return err
	})
	if item.OwnerID == userID {
		gg.Go(func() error {
			var err error
			bookings, err = s.repo.ListApprovedByItem(ggCtx, itemID)
			return err
		})
	}
	if err := gg.Wait(); err != nil {
		return model.ItemWithBookings{}, err
	}

	return s.withBookings(item, bookings, comments), nil
}

func (s *Service) ListItems(ctx context.Context, ownerID int64, from, size int) ([]model.ItemWithBookings, error) {
	if err := validatePage(from, size); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListItemsByOwner(ctx, ownerID, from/size, size)
	if err != nil {
		return nil, err
	}

	views := make([]model.ItemWithBookings, len(items))
	gg, ggCtx := errgroup.WithContext(ctx)
	for i := range items {
		i := i
		gg.Go(func() error {
			bookings, err := s.repo.ListApprovedByItem(ggCtx, items[i].ID)
			if err != nil {
				return err
			}
			comments, err := s.repo.ListCommentsByItem(ggCtx, items[i].ID)
			if err != nil {
				return err
			}
			views[i] = s.withBookings(items[i], bookings, comments)
			return nil
		})
	}
	if err := gg.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

// SearchItems matches available items by name or description. A blank query
// short-circuits to an empty result without touching the store.
func (s *Service) SearchItems(ctx context.Context, text string, from, size int) ([]model.Item, error) {
	if err := validatePage(from, size); err != nil {
		return nil, err
	}
	if text == "" {
		return []model.Item{}, nil
	}
	return s.repo.SearchItems(ctx, text, from/size, size)
}

func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	return s.repo.DeleteItem(ctx, id)
}

// CreateComment records feedback on an item. Only a user whose booking of
// the item has already ended may comment.
func (s *Service) CreateComment(ctx context.Context, itemID, authorID int64, req model.CreateCommentRequest) (model.Comment, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return model.Comment{}, err
	}
	if _, err := s.repo.GetUser(ctx, authorID); err != nil {
		return model.Comment{}, err
	}

	now := s.now()
	finished, err := s.repo.HasFinishedBooking(ctx, item.ID, authorID, now)
	if err != nil {
		return model.Comment{}, err
	}
	if !finished {
		return model.Comment{}, errors.Wrap(errs.ErrValidation, "no finished booking of the item")
	}

	return s.repo.CreateComment(ctx, model.Comment{
		Text:     req.Text,
		ItemID:   item.ID,
		AuthorID: authorID,
		Created:  now,
	})
}

// withBookings selects the most recent past booking and the nearest upcoming
// one from an approved-bookings list ordered by start descending.
func (s *Service) withBookings(item model.Item, bookings []model.Booking, comments []model.Comment) model.ItemWithBookings {
	view := model.ItemWithBookings{
		Item:     item,
		Comments: comments,
	}
	if view.Comments == nil {
		view.Comments = []model.Comment{}
	}

	now := s.now()
	for i := range bookings {
		b := bookings[i]
		if view.LastBooking == nil && b.End.Before(now) {
			view.LastBooking = &model.BookingShort{ID: b.ID, BookerID: b.BookerID}
		}
		if b.Start.After(now) {
			view.NextBooking = &model.BookingShort{ID: b.ID, BookerID: b.BookerID}
		}
	}
	return view
}
