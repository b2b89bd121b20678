package service

import (
	"time"

	"libris/internal/domain/entity"
)

// SessionCodec serializes a Principal into the opaque session token carried
// between requests and restores it later. Decode trusts the token's own
// integrity (its signature); it performs no store lookup, so a session stays
// valid for its lifetime once established. Confidentiality and delivery of
// the token (cookie, header) are the transport's concern.
type SessionCodec interface {
	// Encode serializes a Principal into a signed session token.
	Encode(principal *entity.Principal) (string, error)

	// Decode verifies a session token and restores the Principal it carries.
	Decode(token string) (*entity.Principal, error)

	// TTL returns the session lifetime baked into issued tokens.
	TTL() time.Duration
}
