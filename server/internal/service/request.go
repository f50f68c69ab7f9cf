package service

import (
	"context"

	"github.com/practicum/shareit/server/internal/model"

	"go.uber.org/zap"
)

func (s *Service) CreateItemRequest(ctx context.Context, req model.CreateItemRequestRequest, requestorID int64) (model.ItemRequest, error) {
	requestor, err := s.repo.GetUser(ctx, requestorID)
	if err != nil {
		return model.ItemRequest{}, err
	}

	created, err := s.repo.CreateRequest(ctx, model.ItemRequest{
		Description: req.Description,
		RequestorID: requestor.ID,
		Created:     s.now(),
	})
	if err != nil {
		return model.ItemRequest{}, err
	}
	s.log.Info("item request created", zap.Int64("id", created.ID))
	return created, nil
}

// ListOwnItemRequests returns the caller's requests, newest first, with the
// items listed in answer to each.
func (s *Service) ListOwnItemRequests(ctx context.Context, requestorID int64) ([]model.ItemRequestWithAnswers, error) {
	if _, err := s.repo.GetUser(ctx, requestorID); err != nil {
		return nil, err
	}
	reqs, err := s.repo.ListRequestsByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	return s.withAnswers(ctx, reqs)
}

// ListItemRequests returns other users' requests, excluding the caller's own.
func (s *Service) ListItemRequests(ctx context.Context, userID int64, from, size int) ([]model.ItemRequestWithAnswers, error) {
	if err := validatePage(from, size); err != nil {
		return nil, err
	}
	reqs, err := s.repo.ListRequests(ctx, from/size, size)
	if err != nil {
		return nil, err
	}

	others := make([]model.ItemRequest, 0, len(reqs))
	for _, req := range reqs {
		if req.RequestorID != userID {
			others = append(others, req)
		}
	}
	return s.withAnswers(ctx, others)
}

func (s *Service) GetItemRequest(ctx context.Context, userID, id int64) (model.ItemRequestWithAnswers, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return model.ItemRequestWithAnswers{}, err
	}
	req, err := s.repo.GetRequest(ctx, id)
	if err != nil {
		return model.ItemRequestWithAnswers{}, err
	}

	answered, err := s.withAnswers(ctx, []model.ItemRequest{req})
	if err != nil {
		return model.ItemRequestWithAnswers{}, err
	}
	return answered[0], nil
}

func (s *Service) withAnswers(ctx context.Context, reqs []model.ItemRequest) ([]model.ItemRequestWithAnswers, error) {
	out := make([]model.ItemRequestWithAnswers, 0, len(reqs))
	for _, req := range reqs {
		items, err := s.repo.ListItemsByRequest(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []model.Item{}
		}
		out = append(out, model.ItemRequestWithAnswers{
			ItemRequest: req,
			Items:       items,
		})
	}
	return out, nil
}
