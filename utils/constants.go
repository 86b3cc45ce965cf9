// File: utils/constants.go
package utils

// SessionPrefix is the prefix used for Redis session keys.
const SessionPrefix = "session:"
