package utils

import "github.com/google/uuid"

// GenerateUUID returns a time-ordered UUID, falling back to a random one
// if v7 generation fails.
func GenerateUUID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
