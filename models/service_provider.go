package models

import (
	"strings"
	"time"
)

// ServiceProvider is a vendor (photographer, caterer, decorator...) listed on the marketplace.
type ServiceProvider struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	Address      string    `bson:"address" json:"address"`
	Services     []string  `bson:"services" json:"services"`
	Status       Status    `bson:"status" json:"status"`
	PasswordHash string    `bson:"passwordHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceProviderEdit carries the fields an admin may change on a provider.
type ServiceProviderEdit struct {
	Name     string   `json:"name"`
	Email    string   `json:"email" binding:"omitempty,email"`
	Phone    string   `json:"phone"`
	Services []string `json:"services"`
	Status   Status   `json:"status"`
}

// ProfileEdit carries the fields a provider may change on its own profile.
type ProfileEdit struct {
	Name     string   `json:"name" binding:"required"`
	Phone    string   `json:"phone"`
	Address  string   `json:"address"`
	Services []string `json:"services"`
}

// NormalizeServices trims the offered services, drops blanks and keeps the first
// occurrence of each name, preserving order.
func NormalizeServices(services []string) []string {
	seen := make(map[string]struct{}, len(services))
	out := make([]string, 0, len(services))
	for _, s := range services {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[strings.ToLower(s)]; dup {
			continue
		}
		seen[strings.ToLower(s)] = struct{}{}
		out = append(out, s)
	}
	return out
}
