package services

import (
	"context"

	"github.com/beantz/labersaler/internal/client/api"
	"github.com/beantz/labersaler/internal/client/models"
)

// ProfileService reads and updates the account profile.
type ProfileService interface {
	Get(ctx context.Context, userID int) (*models.User, error)
	Update(ctx context.Context, userID int, update models.ProfileUpdate) (*models.User, error)
}

type profileService struct {
	api api.Caller
}

func NewProfileService(c api.Caller) ProfileService {
	return &profileService{api: c}
}

func (s *profileService) Get(ctx context.Context, userID int) (*models.User, error) {
	resp, err := s.api.Get(ctx, api.UserPath(userID))
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := resp.Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update sends the edited fields and returns the profile as the backend now
// sees it; when the backend replies with an empty body, the submitted values
// are echoed back.
func (s *profileService) Update(ctx context.Context, userID int, update models.ProfileUpdate) (*models.User, error) {
	resp, err := s.api.Put(ctx, api.UserPath(userID), update)
	if err != nil {
		return nil, err
	}

	user := models.User{ID: userID, Name: update.Name, Email: update.Email, Phone: update.Phone}
	if err := resp.Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
