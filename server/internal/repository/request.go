package repository

import (
	"context"
	"database/sql"

	"github.com/practicum/shareit/server/internal/errs"
	"github.com/practicum/shareit/server/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

const requestColumns = "id, description, requestor_id, created"

func (r *repository) CreateRequest(ctx context.Context, req model.ItemRequest) (model.ItemRequest, error) {
	query, args, err := qb.Insert(requestsTableName).
		Columns("description", "requestor_id", "created").
		Values(req.Description, req.RequestorID, req.Created).
		Suffix("returning " + requestColumns).
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}

	var created model.ItemRequest
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return model.ItemRequest{}, err
	}
	return created, nil
}

func (r *repository) GetRequest(ctx context.Context, id int64) (model.ItemRequest, error) {
	query, args, err := qb.Select(requestColumns).
		From(requestsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}

	var req model.ItemRequest
	if err := r.db.GetContext(ctx, &req, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ItemRequest{}, errs.ErrNotFound
		}
		return model.ItemRequest{}, err
	}
	return req, nil
}

func (r *repository) ListRequestsByRequestor(ctx context.Context, requestorID int64) ([]model.ItemRequest, error) {
	query, args, err := qb.Select(requestColumns).
		From(requestsTableName).
		Where(sq.Eq{"requestor_id": requestorID}).
		OrderBy("created desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	reqs := make([]model.ItemRequest, 0)
	if err := r.db.SelectContext(ctx, &reqs, query, args...); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *repository) ListRequests(ctx context.Context, page, size int) ([]model.ItemRequest, error) {
	q := qb.Select(requestColumns).
		From(requestsTableName).
		OrderBy("created desc")
	query, args, err := paginate(q, page, size).ToSql()
	if err != nil {
		return nil, err
	}

	reqs := make([]model.ItemRequest, 0)
	if err := r.db.SelectContext(ctx, &reqs, query, args...); err != nil {
		return nil, err
	}
	return reqs, nil
}
