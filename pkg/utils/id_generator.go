// Package utils holds the small helpers shared by the domain and the
// dispatcher: commission arithmetic and request identifiers.
//
// Go Learning Note — "pkg/" Directory Convention:
// Code under pkg/ is meant to be importable from outside the module, unlike
// internal/, which the compiler keeps private. The split is a community
// convention rather than a language rule.
package utils

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a random UUID v4 string. The dispatcher stamps
// one on every call so all log lines of a single request can be grouped.
// Entity IDs stay plain positive integers; this ID never leaves the logs.
func GenerateRequestID() string {
	return uuid.New().String()
}
