package auth

import (
	"time"

	"libris/config"
	"libris/internal/domain/entity"
	"libris/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtSessionCodec is a concrete implementation of the SessionCodec interface
// using signed JWTs. The token carries exactly the Principal fields and
// nothing else; restoring a session is a signature check plus a claim read,
// never a store lookup.
type jwtSessionCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTSessionCodec is the constructor for jwtSessionCodec.
func NewJWTSessionCodec(cfg *config.Config) (service.SessionCodec, error) {
	if cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtSessionCodec{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.TTL,
	}, nil
}

// Encode serializes a Principal into a signed session token.
func (s *jwtSessionCodec) Encode(principal *entity.Principal) (string, error) {
	if principal == nil {
		return "", errors.New("cannot encode nil principal")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   principal.ID.String(), // Subject (who the session belongs to)
		"name":  principal.Name,
		"admin": principal.IsAdmin,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Decode verifies a session token and restores the Principal it carries.
func (s *jwtSessionCodec) Decode(tokenString string) (*entity.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected session claims type")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("session token missing subject")
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in session token")
	}

	name, _ := claims["name"].(string)
	isAdmin, _ := claims["admin"].(bool)

	return &entity.Principal{
		ID:      id,
		Name:    name,
		IsAdmin: isAdmin,
	}, nil
}

// TTL returns the session lifetime baked into issued tokens.
func (s *jwtSessionCodec) TTL() time.Duration {
	return s.ttl
}
