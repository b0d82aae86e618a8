package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerMessage(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"detail string", 404, `{"detail":"Not found here"}`, "Not found here"},
		{"message field", 400, `{"message":"Bad input"}`, "Bad input"},
		{"detail preferred over message", 400, `{"detail":"from detail","message":"from message"}`, "from detail"},
		{"validation detail array falls back", 422, `{"detail":[{"loc":["body","email"],"msg":"invalid"}]}`, "HTTP 422: Unprocessable Entity"},
		{"empty body falls back", 500, ``, "HTTP 500: Internal Server Error"},
		{"non-json body falls back", 502, `upstream exploded`, "HTTP 502: Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serverMessage(tt.status, []byte(tt.body)))
		})
	}
}

func TestEnvelopeErr(t *testing.T) {
	assert.NoError(t, Envelope{Success: true}.Err())

	err := failure("boom").Err()
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
}

func TestFailureDefaultsMessage(t *testing.T) {
	env := failure("")
	assert.False(t, env.Success)
	assert.Equal(t, "Unknown error occurred", env.Message)
}

func TestDecode(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	var out payload
	err := decode(Envelope{Success: true, Data: json.RawMessage(`{"name":"x"}`)}, &out)
	require.NoError(t, err)
	assert.Equal(t, "x", out.Name)

	// Failure envelopes surface their message.
	err = decode(failure("nope"), &out)
	require.Error(t, err)
	assert.Equal(t, "nope", err.Error())

	// Empty data is valid for void operations.
	assert.NoError(t, decode(Envelope{Success: true}, &out))

	// Shape mismatch is an error, not a panic.
	err = decode(Envelope{Success: true, Data: json.RawMessage(`[1,2]`)}, &out)
	assert.Error(t, err)
}
