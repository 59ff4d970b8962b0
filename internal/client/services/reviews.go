package services

import (
	"context"

	"github.com/beantz/labersaler/internal/client/api"
	"github.com/beantz/labersaler/internal/client/models"
)

// ReviewService covers the reviews shown on the book detail screen.
type ReviewService interface {
	ListByBook(ctx context.Context, bookID int) ([]models.Review, error)
	Create(ctx context.Context, review models.NewReview) error
	Delete(ctx context.Context, id int) error
}

type reviewService struct {
	api api.Caller
}

func NewReviewService(c api.Caller) ReviewService {
	return &reviewService{api: c}
}

func (s *reviewService) ListByBook(ctx context.Context, bookID int) ([]models.Review, error) {
	resp, err := s.api.Get(ctx, api.BookReviewsPath(bookID))
	if err != nil {
		return nil, err
	}
	var reviews []models.Review
	if err := resp.Decode(&reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *reviewService) Create(ctx context.Context, review models.NewReview) error {
	_, err := s.api.Post(ctx, api.RouteReviews, review)
	return err
}

func (s *reviewService) Delete(ctx context.Context, id int) error {
	_, err := s.api.Delete(ctx, api.DeleteReviewPath(id))
	return err
}
