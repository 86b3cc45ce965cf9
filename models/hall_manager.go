package models

import (
	"io"
	"time"
)

// HallManager owns exactly one wedding hall listing.
type HallManager struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	HallName        string    `bson:"hallName" json:"hallName"`
	HallAddress     string    `bson:"hallAddress" json:"hallAddress"`
	HallDescription string    `bson:"hallDescription" json:"hallDescription"`
	HallCapacity    int       `bson:"hallCapacity" json:"hallCapacity"`
	HallPrice       Money     `bson:"hallPrice" json:"hallPrice"`
	HallPhone       string    `bson:"hallPhone" json:"hallPhone"`
	Images          []string  `bson:"images" json:"images"`
	Status          Status    `bson:"status" json:"status"`
	PasswordHash    string    `bson:"passwordHash,omitempty" json:"-"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HallManagerEdit is the admin edit form. Capacity and price arrive as raw form text.
type HallManagerEdit struct {
	Name            string `json:"name"`
	Email           string `json:"email" binding:"omitempty,email"`
	HallName        string `json:"hallName"`
	HallAddress     string `json:"hallAddress"`
	HallDescription string `json:"hallDescription"`
	HallCapacity    string `json:"hallCapacity"`
	HallPrice       string `json:"hallPrice"`
	HallPhone       string `json:"hallPhone"`
	Status          Status `json:"status"`
}

// ImageUpload is one file selected in the hall edit dialog.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// HallEdit is the hall manager's own edit form: profile, hall fields and image changes.
// DeleteIndices refer to positions in the hall's current image list.
type HallEdit struct {
	FullName        string
	HallName        string
	HallAddress     string
	HallDescription string
	HallCapacity    string
	HallPrice       string
	HallPhone       string
	NewImages       []ImageUpload
	DeleteIndices   []int
}
