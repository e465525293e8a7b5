package models

// FavoritesMap stores full activity snapshots keyed by activity ID.
// Snapshots can go stale if the listing is edited or removed upstream;
// that is accepted, there is no invalidation path.
type FavoritesMap map[string]Activity
