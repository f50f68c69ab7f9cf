package repository

import (
	"context"
	"fmt"

	"github.com/practicum/shareit/server/internal/model"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

func (r *repository) CreateComment(ctx context.Context, c model.Comment) (model.Comment, error) {
	query, args, err := qb.Insert(commentsTableName).
		Columns("text", "item_id", "author_id", "created").
		Values(c.Text, c.ItemID, c.AuthorID, c.Created).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Comment{}, err
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		r.log.Error("CreateComment", zap.String("q", query), zap.Error(err))
		return model.Comment{}, err
	}

	return r.getComment(ctx, id)
}

func (r *repository) getComment(ctx context.Context, id int64) (model.Comment, error) {
	query, args, err := commentSelect().
		Where(sq.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return model.Comment{}, err
	}

	var c model.Comment
	if err := r.db.GetContext(ctx, &c, query, args...); err != nil {
		return model.Comment{}, err
	}
	return c, nil
}

func (r *repository) ListCommentsByItem(ctx context.Context, itemID int64) ([]model.Comment, error) {
	query, args, err := commentSelect().
		Where(sq.Eq{"c.item_id": itemID}).
		OrderBy("c.created").
		ToSql()
	if err != nil {
		return nil, err
	}

	comments := make([]model.Comment, 0)
	if err := r.db.SelectContext(ctx, &comments, query, args...); err != nil {
		return nil, err
	}
	return comments, nil
}

func commentSelect() sq.SelectBuilder {
	return qb.Select("c.id", "c.text", "c.item_id", "c.author_id", "u.name as author_name", "c.created").
		From(commentsTableName + " c").
		Join(fmt.Sprintf("%s u on u.id = c.author_id", usersTableName))
}
