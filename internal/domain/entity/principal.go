package entity

import (
	"log/slog"

	"github.com/google/uuid"
)

// Principal is the minimal authenticated identity carried across requests.
// It is the only user state that may be placed into a session or appear in
// logs; credential material never leaves the User entity.
type Principal struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	IsAdmin bool      `json:"isAdmin"`
}

// NewPrincipal materializes a Principal from a full User record, stripping
// everything except id, name and the admin flag.
func NewPrincipal(user *User) *Principal {
	if user == nil {
		return nil
	}

	return &Principal{
		ID:      user.ID,
		Name:    user.Name,
		IsAdmin: user.IsAdmin,
	}
}

// LogValue implements slog.LogValuer so a Principal logged as an attribute
// exposes exactly the session-safe fields.
func (p *Principal) LogValue() slog.Value {
	if p == nil {
		return slog.Value{}
	}

	return slog.GroupValue(
		slog.String("id", p.ID.String()),
		slog.String("name", p.Name),
		slog.Bool("isAdmin", p.IsAdmin),
	)
}
