package auth

import (
	"testing"
	"time"

	"libris/config"
	"libris/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodecConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{
		Secret: secret,
		TTL:    time.Hour,
	}

	return cfg
}

func TestJWTSessionCodec_RequiresSecret(t *testing.T) {
	_, err := NewJWTSessionCodec(&config.Config{})
	assert.Error(t, err)
}

func TestJWTSessionCodec_RoundTrip(t *testing.T) {
	codec, err := NewJWTSessionCodec(newTestCodecConfig("test-secret"))
	require.NoError(t, err)

	principal := &entity.Principal{
		ID:      uuid.New(),
		Name:    "Alice",
		IsAdmin: true,
	}

	token, err := codec.Encode(principal)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	restored, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, principal, restored)
}

func TestJWTSessionCodec_EncodeNilPrincipal(t *testing.T) {
	codec, err := NewJWTSessionCodec(newTestCodecConfig("test-secret"))
	require.NoError(t, err)

	_, err = codec.Encode(nil)
	assert.Error(t, err)
}

func TestJWTSessionCodec_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTSessionCodec(newTestCodecConfig("issuer-secret"))
	require.NoError(t, err)
	verifier, err := NewJWTSessionCodec(newTestCodecConfig("other-secret"))
	require.NoError(t, err)

	token, err := issuer.Encode(&entity.Principal{ID: uuid.New(), Name: "Mallory"})
	require.NoError(t, err)

	_, err = verifier.Decode(token)
	assert.Error(t, err)
}

func TestJWTSessionCodec_RejectsGarbage(t *testing.T) {
	codec, err := NewJWTSessionCodec(newTestCodecConfig("test-secret"))
	require.NoError(t, err)

	_, err = codec.Decode("not-a-token")
	assert.Error(t, err)
}

func TestJWTSessionCodec_RejectsExpired(t *testing.T) {
	cfg := newTestCodecConfig("test-secret")
	cfg.Session.TTL = -time.Minute

	codec, err := NewJWTSessionCodec(cfg)
	require.NoError(t, err)

	token, err := codec.Encode(&entity.Principal{ID: uuid.New(), Name: "Alice"})
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.Error(t, err)
}
