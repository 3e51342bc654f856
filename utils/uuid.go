package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string, used for offline
// delivery receipts
func GenerateID() string {
	return uuid.New().String()
}
