// File: utils/constants.go
package utils

import "time"

// SessionHandoffPrefix is the prefix used for session handoff cache keys.
const SessionHandoffPrefix = "handoff:"

// SessionHandoffTTL is the time-to-live for session handoff entries.
const SessionHandoffTTL = 30 * time.Minute

// SessionIDHeader carries the client session identifier.
const SessionIDHeader = "X-Session-ID"
