package model

import (
	"time"

	"github.com/google/uuid"
)

type News struct {
	Id          uuid.UUID
	Title       string
	Description string
	CreatedAt   time.Time
	Images      []NewsImage
}

// NewsImage is embedded in News; it never exists as a standalone row.
type NewsImage struct {
	Url         string `json:"url"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type NewsCreateRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Images      []NewsImage `json:"images"`
	CreatedAt   *time.Time  `json:"created_at"`
}

type NewsResponse struct {
	Id          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	Images      []NewsImage `json:"images"`
}
