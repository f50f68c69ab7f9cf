package service

import (
	"context"

	"github.com/practicum/shareit/pkg/kafka"
	"github.com/practicum/shareit/server/internal/errs"
	"github.com/practicum/shareit/server/internal/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CreateBooking validates the candidate and stores it in WAITING status.
// Booking an item you own reports "not found" rather than "forbidden" so the
// response does not reveal who owns what.
func (s *Service) CreateBooking(ctx context.Context, req model.CreateBookingRequest, bookerID int64) (model.Booking, error) {
	if req.End.Before(req.Start) {
		return model.Booking{}, errors.Wrap(errs.ErrValidation, "end before start")
	}
	if req.Start.Before(s.now()) {
		return model.Booking{}, errors.Wrap(errs.ErrValidation, "booking in the past")
	}

	booker, err := s.repo.GetUser(ctx, bookerID)
	if err != nil {
		return model.Booking{}, err
	}

	item, err := s.repo.GetItem(ctx, req.ItemID)
	if err != nil {
		return model.Booking{}, err
	}
	if !item.Available {
		return model.Booking{}, errors.Wrap(errs.ErrValidation, "item not available")
	}
	if item.OwnerID == booker.ID {
		return model.Booking{}, errors.Wrap(errs.ErrNotFound, "cannot book your own item")
	}

	created, err := s.repo.CreateBooking(ctx, model.Booking{
		Start:    req.Start,
		End:      req.End,
		ItemID:   item.ID,
		BookerID: booker.ID,
		Status:   model.StatusWaiting,
	})
	if err != nil {
		return model.Booking{}, err
	}
	s.log.Info("booking created", zap.Int64("id", created.ID), zap.Int64("item", item.ID))
	s.publishBookingEvent(ctx, kafka.EventBookingCreated, created)

	return created, nil
}

// SetBookingStatus resolves a WAITING booking to APPROVED or REJECTED. Only
// the item owner may resolve, and only once: the transition is a conditional
// update keyed on the prior WAITING status.
func (s *Service) SetBookingStatus(ctx context.Context, bookingID, userID int64, approved bool) (model.Booking, error) {
	b, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return model.Booking{}, err
	}
	if b.ItemOwnerID != userID {
		return model.Booking{}, errors.Wrap(errs.ErrNotFound, "no such booking for user")
	}

	switch b.Status {
	case model.StatusApproved, model.StatusRejected, model.StatusCanceled:
		return model.Booking{}, errors.Wrapf(errs.ErrValidation, "status already '%s'", b.Status)
	case model.StatusWaiting:
	default:
		return model.Booking{}, errors.Wrapf(errs.ErrValidation, "unknown status: %s", b.Status)
	}

	target := model.StatusRejected
	eventType := kafka.EventBookingRejected
	if approved {
		target = model.StatusApproved
		eventType = kafka.EventBookingApproved
	}

	updated, err := s.repo.UpdateBookingStatus(ctx, bookingID, target)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			// lost a race: someone resolved the booking between our read
			// and the conditional update
			if cur, err2 := s.repo.GetBooking(ctx, bookingID); err2 == nil {
				return model.Booking{}, errors.Wrapf(errs.ErrValidation, "status already '%s'", cur.Status)
			}
		}
		return model.Booking{}, err
	}
	s.log.Info("booking resolved", zap.Int64("id", updated.ID), zap.String("status", string(updated.Status)))
	s.publishBookingEvent(ctx, eventType, updated)

	return updated, nil
}

// GetBooking returns the booking when the requester is its booker or the
// item owner; anyone else gets "not found".
func (s *Service) GetBooking(ctx context.Context, bookingID, userID int64) (model.Booking, error) {
	b, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return model.Booking{}, err
	}
	if b.BookerID != userID && b.ItemOwnerID != userID {
		return model.Booking{}, errors.Wrap(errs.ErrNotFound, "no such booking for user")
	}
	return b, nil
}

// ListBookingsByRenter partitions the renter's bookings by the given state
// relative to a single "now" captured per call. Results come back ordered by
// start descending; the page returned is from/size (integer division).
func (s *Service) ListBookingsByRenter(ctx context.Context, renterID int64, state model.BookingState, from, size int) ([]model.Booking, error) {
	if err := validatePage(from, size); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetUser(ctx, renterID); err != nil {
		return nil, err
	}

	now := s.now()
	page := from / size
	switch state {
	case model.StateAll:
		return s.repo.ListByBooker(ctx, renterID, page, size)
	case model.StateFuture:
		return s.repo.ListByBookerAndStartAfter(ctx, renterID, now, page, size)
	case model.StatePast:
		return s.repo.ListByBookerAndEndBefore(ctx, renterID, now, page, size)
	case model.StateCurrent:
		return s.repo.ListByBookerCurrent(ctx, renterID, now, page, size)
	case model.StateWaiting:
		return s.repo.ListByBookerAndStatus(ctx, renterID, model.StatusWaiting, page, size)
	case model.StateRejected:
		return s.repo.ListByBookerAndStatus(ctx, renterID, model.StatusRejected, page, size)
	default:
		return nil, errors.Wrapf(errs.ErrValidation, "unknown state: %s", state)
	}
}

// ListBookingsByOwner is ListBookingsByRenter keyed by the owner of the
// booked items.
func (s *Service) ListBookingsByOwner(ctx context.Context, ownerID int64, state model.BookingState, from, size int) ([]model.Booking, error) {
	if err := validatePage(from, size); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}

	now := s.now()
	page := from / size
	switch state {
	case model.StateAll:
		return s.repo.ListByOwner(ctx, ownerID, page, size)
	case model.StateFuture:
		return s.repo.ListByOwnerAndStartAfter(ctx, ownerID, now, page, size)
	case model.StatePast:
		return s.repo.ListByOwnerAndEndBefore(ctx, ownerID, now, page, size)
	case model.StateCurrent:
		return s.repo.ListByOwnerCurrent(ctx, ownerID, now, page, size)
	case model.StateWaiting:
		return s.repo.ListByOwnerAndStatus(ctx, ownerID, model.StatusWaiting, page, size)
	case model.StateRejected:
		return s.repo.ListByOwnerAndStatus(ctx, ownerID, model.StatusRejected, page, size)
	default:
		return nil, errors.Wrapf(errs.ErrValidation, "unknown state: %s", state)
	}
}
