package favorites

import (
	"context"

	"hobyhub/models"
)

// FavoritesService maintains a session's liked activities, persisted in the
// local store for the lifetime of that store.
type FavoritesService interface {
	// Toggle removes the activity if it is already favorited, otherwise
	// stores its full snapshot. Returns whether the activity is favorited
	// after the call.
	Toggle(ctx context.Context, sessionID string, activity models.Activity) (bool, error)
	IsFavorited(ctx context.Context, sessionID, activityID string) (bool, error)
	List(ctx context.Context, sessionID string) (models.FavoritesMap, error)
}
