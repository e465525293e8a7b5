// File: services/auth/auth.go
package auth

import (
	"context"
	"errors"
	"fmt"

	"hobyhub/database/localstore"
	"hobyhub/models"
	"hobyhub/utils"

	"go.uber.org/zap"
)

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	API   Upstream
	Store localstore.Store
}

func (s *DefaultAuthService) RequestOTP(ctx context.Context, phoneNumber, recaptchaToken string) (string, error) {
	if phoneNumber == "" {
		return "", fmt.Errorf("phone number is required")
	}
	requestID, err := s.API.GenerateOTP(ctx, phoneNumber, recaptchaToken)
	if err != nil {
		utils.GetLogger().Error("RequestOTP: upstream call failed", zap.Error(err))
		return "", err
	}
	return requestID, nil
}

func (s *DefaultAuthService) VerifyOTP(ctx context.Context, sessionID, requestID, code string) (*models.AuthResult, error) {
	result, err := s.API.VerifyOTP(ctx, requestID, code)
	if err != nil {
		utils.GetLogger().Warn("VerifyOTP: verification failed", zap.Error(err))
		return nil, err
	}

	// Validate the upstream-issued token before trusting it.
	if _, err := utils.ValidateToken(result.Token); err != nil {
		utils.GetLogger().Error("VerifyOTP: upstream issued an invalid token", zap.Error(err))
		return nil, fmt.Errorf("upstream issued an invalid token: %w", err)
	}

	if err := s.Store.Set(ctx, localstore.Key(localstore.KeyAuthToken, sessionID), result.Token); err != nil {
		return nil, fmt.Errorf("failed to persist auth token: %w", err)
	}
	if err := s.Store.Set(ctx, localstore.Key(localstore.KeyUserProfile, sessionID), result.Profile); err != nil {
		return nil, fmt.Errorf("failed to persist profile: %w", err)
	}
	return result, nil
}

func (s *DefaultAuthService) Token(ctx context.Context, sessionID string) (string, error) {
	var token string
	err := s.Store.Get(ctx, localstore.Key(localstore.KeyAuthToken, sessionID), &token)
	if errors.Is(err, localstore.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// Profile serves the cached profile; it only goes upstream when the cache is
// empty.
func (s *DefaultAuthService) Profile(ctx context.Context, sessionID string) (*models.UserProfile, error) {
	var cached models.UserProfile
	err := s.Store.Get(ctx, localstore.Key(localstore.KeyUserProfile, sessionID), &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, localstore.ErrNotFound) {
		return nil, err
	}

	token, err := s.Token(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, fmt.Errorf("not signed in")
	}
	profile, err := s.API.GetProfile(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Set(ctx, localstore.Key(localstore.KeyUserProfile, sessionID), profile); err != nil {
		return nil, fmt.Errorf("failed to cache profile: %w", err)
	}
	return profile, nil
}

func (s *DefaultAuthService) UpdateProfile(ctx context.Context, sessionID string, profile models.UserProfile) (*models.UserProfile, error) {
	token, err := s.Token(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, fmt.Errorf("not signed in")
	}
	updated, err := s.API.UpdateProfile(ctx, token, profile)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Set(ctx, localstore.Key(localstore.KeyUserProfile, sessionID), updated); err != nil {
		return nil, fmt.Errorf("failed to cache profile: %w", err)
	}
	return updated, nil
}

func (s *DefaultAuthService) SignOut(ctx context.Context, sessionID string) error {
	if err := s.Store.Delete(ctx, localstore.Key(localstore.KeyAuthToken, sessionID)); err != nil {
		return err
	}
	return s.Store.Delete(ctx, localstore.Key(localstore.KeyUserProfile, sessionID))
}
