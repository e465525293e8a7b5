// Package localstore is a typed repository over the persisted key-value
// store. It is the server-side analog of the browser's local storage: auth
// token, cached profile, favorites map and last-viewed activity snapshots
// all live behind it, so nothing else in the system touches raw keys.
package localstore

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.New("localstore: key not found")

// Well-known key name segments. Full keys are scoped per session:
// "<name>:<sessionID>".
const (
	KeyAuthToken    = "authToken"
	KeyUserProfile  = "userProfile"
	KeyFavorites    = "favorites"
	KeyLastActivity = "lastActivity"
	KeyVendorWizard = "vendorWizard"
)

// SchemaVersionKey records the store's schema version for migrations.
const SchemaVersionKey = "schemaVersion"

// CurrentSchemaVersion is the version Migrate upgrades to.
const CurrentSchemaVersion = 1

// ensureSupportedSchema rejects data written by a newer build. Migrations
// only run forward; a store ahead of this binary must not be silently
// downgraded.
func ensureSupportedSchema(version int) error {
	if version > CurrentSchemaVersion {
		return fmt.Errorf("localstore: stored schema v%d is newer than supported v%d", version, CurrentSchemaVersion)
	}
	return nil
}

// Key composes a scoped store key.
func Key(name, sessionID string) string {
	return name + ":" + sessionID
}

// Store is the typed persistence interface. Values are JSON-serialized;
// Get decodes into dest and returns ErrNotFound for missing keys.
type Store interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, val any) error
	SetTTL(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// Migrate upgrades persisted data written by earlier schema versions.
	Migrate(ctx context.Context) error
}
