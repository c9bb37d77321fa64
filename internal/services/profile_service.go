package services

import (
	"context"

	"github.com/tejavira2023/fitverse/internal/models"
	"github.com/tejavira2023/fitverse/internal/repository"
)

type profileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error)
	UpdateOnboarding(ctx context.Context, userID int64, req repository.AccountSetupInput) (*models.UserProfile, error)
	UpdatePartial(ctx context.Context, userID int64, req repository.UpdateUserProfileInput) (*models.UserProfile, error)
}

type ProfileService struct {
	profileRepo profileStore
}

func NewProfileService(profileRepo profileStore) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) Get(ctx context.Context, userID int64) (*models.UserProfile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// CompleteSetup stores the one-time account setup form and flips the
// onboarding flag so the client stops showing the setup screen.
func (s *ProfileService) CompleteSetup(ctx context.Context, userID int64, input repository.AccountSetupInput) (*models.UserProfile, error) {
	return s.profileRepo.UpdateOnboarding(ctx, userID, input)
}

func (s *ProfileService) Update(ctx context.Context, userID int64, input repository.UpdateUserProfileInput) (*models.UserProfile, error) {
	return s.profileRepo.UpdatePartial(ctx, userID, input)
}
