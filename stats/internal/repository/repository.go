package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/practicum/shareit/pkg/kafka"
	"github.com/practicum/shareit/stats/internal/model"
	"go.uber.org/zap"
)

type Repository interface {
	GetStats(ctx context.Context) (model.StatsInfo, error)
	Record(ctx context.Context, event kafka.EventBooking) error
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

// Record stores a booking event. Redelivered events are dropped on the
// event uid.
func (r *repository) Record(ctx context.Context, event kafka.EventBooking) error {
	q := `insert into booking_events (event_uid, event_type, booking_id, item_id, booker_id, ts)
	values (@event_uid, @event_type, @booking_id, @item_id, @booker_id, @ts)
	on conflict (event_uid) do nothing`
	args := pgx.NamedArgs{
		"event_uid":  event.EventUID,
		"event_type": event.Type,
		"booking_id": event.BookingID,
		"item_id":    event.ItemID,
		"booker_id":  event.BookerID,
		"ts":         event.Timestamp,
	}
	_, err := r.db.Exec(ctx, q, args)
	return err
}

func (r *repository) GetStats(ctx context.Context) (model.StatsInfo, error) {
	const q = `
	select item_id, max(ts) as last_updated,
	       coalesce(count(*) filter (where event_type = 'BOOKING_CREATED'), 0)::int as cnt_created,
	       coalesce(count(*) filter (where event_type = 'BOOKING_APPROVED'), 0)::int as cnt_approved,
	       coalesce(count(*) filter (where event_type = 'BOOKING_REJECTED'), 0)::int as cnt_rejected
	from booking_events
	group by item_id
	order by item_id
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return model.StatsInfo{}, err
	}
	defer rows.Close()
	stats, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ItemStats])
	if err != nil {
		return model.StatsInfo{}, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return model.StatsInfo{Data: stats}, nil
}
