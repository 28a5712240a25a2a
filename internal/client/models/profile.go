// Package models contains the records the client persists and passes
// between layers.
package models

import (
	"encoding/json"
	"strings"
	"time"
)

// UserProfile is the identity and progress record of one account.
// ID is assigned at signup and never changes afterwards.
type UserProfile struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	CreatedAt       time.Time `json:"createdAt"`
	TotalInterviews int       `json:"totalInterviews"`
	AverageScore    float64   `json:"averageScore"`
	StreakDays      int       `json:"streakDays"`
	Badges          []string  `json:"badges"`
}

// MarshalJSON keeps "badges" an array even when the slice is nil.
func (p UserProfile) MarshalJSON() ([]byte, error) {
	type plain UserProfile
	if p.Badges == nil {
		p.Badges = []string{}
	}
	return json.Marshal(plain(p))
}

// Clone returns a copy that shares no slices with p.
func (p UserProfile) Clone() UserProfile {
	c := p
	c.Badges = append([]string{}, p.Badges...)
	return c
}

// CredentialRecord pairs the stored password form with the profile.
// Records are keyed by normalized email.
type CredentialRecord struct {
	Password string      `json:"password"`
	Profile  UserProfile `json:"profile"`
}

// ProfileUpdate is a partial profile. Nil fields are left untouched by Apply;
// the identifier cannot be changed.
type ProfileUpdate struct {
	Email           *string
	Name            *string
	CreatedAt       *time.Time
	TotalInterviews *int
	AverageScore    *float64
	StreakDays      *int
	Badges          []string
}

// IsEmpty reports whether the update carries no fields.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Email == nil && u.Name == nil && u.CreatedAt == nil &&
		u.TotalInterviews == nil && u.AverageScore == nil &&
		u.StreakDays == nil && u.Badges == nil
}

// Apply returns p with the fields present in u overwritten (shallow merge).
func (u ProfileUpdate) Apply(p UserProfile) UserProfile {
	out := p.Clone()
	if u.Email != nil {
		out.Email = *u.Email
	}
	if u.Name != nil {
		out.Name = *u.Name
	}
	if u.CreatedAt != nil {
		out.CreatedAt = *u.CreatedAt
	}
	if u.TotalInterviews != nil {
		out.TotalInterviews = *u.TotalInterviews
	}
	if u.AverageScore != nil {
		out.AverageScore = *u.AverageScore
	}
	if u.StreakDays != nil {
		out.StreakDays = *u.StreakDays
	}
	if u.Badges != nil {
		out.Badges = append([]string{}, u.Badges...)
	}
	return out
}

// NormalizeEmail lower-cases an address for use as a lookup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}
