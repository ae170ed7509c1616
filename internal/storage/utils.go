package storage

import (
	"github.com/google/uuid"
)

// GenerateFileName generates a new stored file name based on the file
// extension. It creates a UUID-based filename with the provided extension.
func GenerateFileName(extension string) string {
	newUUID := uuid.New().String()
	// Ensure extension starts with a dot if it doesn't already
	if extension != "" && extension[0] != '.' {
		return newUUID + "." + extension
	}
	return newUUID + extension
}
