package utils

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// Slugify converts a listing title into a URL-safe slug
func Slugify(title string) string {
	return slug.Make(title)
}
