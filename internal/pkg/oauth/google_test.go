package oauth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatePayloadRoundTrip(t *testing.T) {
	svc := NewGoogleService("client-id", "client-secret", "http://localhost/callback", []string{"email"})

	state := svc.GenerateState("faculty")
	require.NotEmpty(t, state)

	payload, err := StatePayload(state)
	require.NoError(t, err)
	assert.Equal(t, "faculty", payload)
}

func TestStatePayloadMalformed(t *testing.T) {
	_, err := StatePayload("not-base64!!")
	assert.Error(t, err)

	// Valid base64 but no payload separator
	forged := base64.URLEncoding.EncodeToString([]byte("nonce-without-payload"))
	_, err = StatePayload(forged)
	assert.Error(t, err)
}

func TestGenerateStateUnique(t *testing.T) {
	svc := NewGoogleService("client-id", "client-secret", "http://localhost/callback", []string{"email"})

	assert.NotEqual(t, svc.GenerateState("hod"), svc.GenerateState("hod"))
}
