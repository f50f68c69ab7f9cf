package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/practicum/shareit/server/internal/errs"
	"github.com/practicum/shareit/server/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func bookingSelect() sq.SelectBuilder {
	return qb.Select(
		"b.id", "b.start_ts", "b.end_ts", "b.item_id", "b.booker_id", "b.status",
		"i.name as item_name", "i.owner_id as item_owner_id", "u.name as booker_name").
		From(bookingsTableName + " b").
		Join(fmt.Sprintf("%s i on i.id = b.item_id", itemsTableName)).
		Join(fmt.Sprintf("%s u on u.id = b.booker_id", usersTableName))
}

func (r *repository) CreateBooking(ctx context.Context, b model.Booking) (model.Booking, error) {
	query, args, err := qb.Insert(bookingsTableName).
		Columns("start_ts", "end_ts", "item_id", "booker_id", "status").
		Values(b.Start, b.End, b.ItemID, b.BookerID, b.Status).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		r.log.Error("CreateBooking", zap.String("q", query), zap.Error(err))
		return model.Booking{}, err
	}
	return r.GetBooking(ctx, id)
}

func (r *repository) GetBooking(ctx context.Context, id int64) (model.Booking, error) {
	query, args, err := bookingSelect().
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}

	var b model.Booking
	if err := r.db.GetContext(ctx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}

// UpdateBookingStatus performs the WAITING transition as a single conditional
// update so two concurrent approvals cannot both pass.
func (r *repository) UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) (model.Booking, error) {
	q := fmt.Sprintf(`update %s set status = $1
	where id = $2 and status = '%s'
	returning id`, bookingsTableName, model.StatusWaiting)

	var updated int64
	if err := r.db.QueryRowContext(ctx, q, status, id).Scan(&updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return r.GetBooking(ctx, updated)
}

func (r *repository) listBookings(ctx context.Context, q sq.SelectBuilder, page, size int) ([]model.Booking, error) {
	query, args, err := paginate(q.OrderBy("b.start_ts desc"), page, size).ToSql()
	if err != nil {
		return nil, err
	}

	bookings := make([]model.Booking, 0)
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) ListByBooker(ctx context.Context, bookerID int64, page, size int) ([]model.Booking, error) {
	return r.listBookings(ctx, bookingSelect().Where(sq.Eq{"b.booker_id": bookerID}), page, size)
}

func (r *repository) ListByBookerAndStatus(ctx context.Context, bookerID int64, status model.BookingStatus, page, size int) ([]model.Booking, error) {
	return r.listBookings(ctx, bookingSelect().
		Where(sq.Eq{"b.booker_id": bookerID}).
		Where(sq.Eq{"b.status": status}), page, size)
}

func (r *repository) ListByBookerAndStartAfter(ctx context.Context, bookerID int64, now time.Time, page, size int) ([]model.Booking, error) {
	return r.listBookings(ctx, bookingSelect().
		Where(sq.Eq{"b.booker_id": bookerID}).
		Where(sq.Gt{"b.start_ts": now}), page, size)
}

func (r *repository) ListByBookerAndEndBefore(ctx context.Context, bookerID int64, now time.Time, page, size int) ([]model.Booking, error) {
	return r.listBookings(ctx, bookingSelect().
		Where(sq.Eq{"b.booker_id": bookerID}).
		Where(sq.Lt{"b.end_ts": now}), page, size)
}

func (r *repository) ListByBookerCurrent(ctx context.Context, bookerID int64, now time.Time, page, size int) ([]model.Booking, error) {
	return r.listBookings(ctx, bookingSelect().
		Where(sq.Eq{"b.booker_id": bookerID}).
		Where(sq.Lt{"b.start_ts": now}).
		Where(sq.Gt{"b.end_ts": now}), page, size)
}

func (r *repository) ListByOwner(ctx context.Context, ownerID int64, page, size int) ([]model.Booking, error) {
	return r.listBookings(ctx, bookingSelect().Where(sq.Eq{"i.owner_id": ownerID}), page, size)
}

func (r *repository) ListByOwnerAndStatus(ctx context.Context, ownerID int64, status model.BookingStatus, page, size int) ([]model.Booking, error) {
	return r.listBookings(ctx, bookingSelect().
		Where(sq.Eq{"i.owner_id": ownerID}).
		Where(sq.Eq{"b.status": status}), page, size)
}

func (r *repository) ListByOwnerAndStartAfter(ctx context.Context, ownerID int64, now time.Time, page, size int) ([]model.Booking, error) {
	return r.listBookings(ctx, bookingSelect().
		Where(sq.Eq{"i.owner_id": ownerID}).
		Where(sq.Gt{"b.start_ts": now}), page, size)
}

func (r *repository) ListByOwnerAndEndBefore(ctx context.Context, ownerID int64, now time.Time, page, size int) ([]model.Booking, error) {
	return r.listBookings(ctx, bookingSelect().
		Where(sq.Eq{"i.owner_id": ownerID}).
		Where(sq.Lt{"b.end_ts": now}), page, size)
}

func (r *repository) ListByOwnerCurrent(ctx context.Context, ownerID int64, now time.Time, page, size int) ([]model.Booking, error) {
	return r.listBookings(ctx, bookingSelect().
		Where(sq.Eq{"i.owner_id": ownerID}).
		Where(sq.Lt{"b.start_ts": now}).
		Where(sq.Gt{"b.end_ts": now}), page, size)
}

func (r *repository) ListApprovedByItem(ctx context.Context, itemID int64) ([]model.Booking, error) {
	return r.listBookings(ctx, bookingSelect().
		Where(sq.Eq{"b.item_id": itemID}).
		Where(sq.Eq{"b.status": model.StatusApproved}), 0, 0)
}

func (r *repository) HasFinishedBooking(ctx context.Context, itemID, userID int64, now time.Time) (bool, error) {
	query, args, err := qb.Select("count(*)").
		From(bookingsTableName).
		Where(sq.Eq{"item_id": itemID}).
		Where(sq.Eq{"booker_id": userID}).
		Where(sq.Lt{"end_ts": now}).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
