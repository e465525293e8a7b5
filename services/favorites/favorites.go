// File: services/favorites/favorites.go
package favorites

import (
	"context"
	"errors"
	"fmt"

	"hobyhub/database/localstore"
	"hobyhub/models"
	"hobyhub/utils"

	"go.uber.org/zap"
)

// DefaultFavoritesService is the production implementation.
type DefaultFavoritesService struct {
	Store localstore.Store
}

// load reads the favorites map fresh from the store. It must not be served
// from memory: another tab may have toggled since we last looked.
func (s *DefaultFavoritesService) load(ctx context.Context, sessionID string) (models.FavoritesMap, error) {
	favorites := models.FavoritesMap{}
	err := s.Store.Get(ctx, localstore.Key(localstore.KeyFavorites, sessionID), &favorites)
	if err != nil && !errors.Is(err, localstore.ErrNotFound) {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	return favorites, nil
}

func (s *DefaultFavoritesService) Toggle(ctx context.Context, sessionID string, activity models.Activity) (bool, error) {
	if activity.ID == "" {
		return false, fmt.Errorf("activity has no id")
	}

	favorites, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}

	_, present := favorites[activity.ID]
	if present {
		delete(favorites, activity.ID)
	} else {
		favorites[activity.ID] = activity
	}

	if err := s.Store.Set(ctx, localstore.Key(localstore.KeyFavorites, sessionID), favorites); err != nil {
		return present, fmt.Errorf("failed to persist favorites: %w", err)
	}

	utils.GetLogger().Debug("Toggled favorite",
		zap.String("session", sessionID),
		zap.String("activity", activity.ID),
		zap.Bool("favorited", !present))
	return !present, nil
}

func (s *DefaultFavoritesService) IsFavorited(ctx context.Context, sessionID, activityID string) (bool, error) {
	favorites, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	_, present := favorites[activityID]
	return present, nil
}

func (s *DefaultFavoritesService) List(ctx context.Context, sessionID string) (models.FavoritesMap, error) {
	return s.load(ctx, sessionID)
}
