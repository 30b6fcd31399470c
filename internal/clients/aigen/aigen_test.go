package aigen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyforge/launchpad-backend/internal/apperr"
)

func chatServer(t *testing.T, status int, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")

		w.WriteHeader(status)
		if status == http.StatusOK {
			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]string{"role": "assistant", "content": reply}},
				},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limited"},
		})
	}))
}

func TestCompletePrimarySucceeds(t *testing.T) {
	primary := chatServer(t, http.StatusOK, "primary idea")
	defer primary.Close()

	c := New(Provider{Name: "primary", BaseURL: primary.URL, Model: "m", APIKey: "k"})

	text, provider, err := c.Complete(context.Background(),
		[]Message{{Role: "user", Content: "hi"}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "primary idea", text)
	assert.Equal(t, "primary", provider)
}

func TestCompleteFailsOverToSecondary(t *testing.T) {
	primary := chatServer(t, http.StatusTooManyRequests, "")
	defer primary.Close()
	secondary := chatServer(t, http.StatusOK, "fallback idea")
	defer secondary.Close()

	c := New(
		Provider{Name: "primary", BaseURL: primary.URL, Model: "m", APIKey: "k"},
		Provider{Name: "secondary", BaseURL: secondary.URL, Model: "m", APIKey: "k"},
	)

	text, provider, err := c.Complete(context.Background(),
		[]Message{{Role: "user", Content: "hi"}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "fallback idea", text)
	assert.Equal(t, "secondary", provider)
}

func TestCompleteSkipsUnconfiguredProviders(t *testing.T) {
	secondary := chatServer(t, http.StatusOK, "only configured")
	defer secondary.Close()

	c := New(
		Provider{Name: "primary", BaseURL: "http://unused.invalid", Model: "m", APIKey: ""},
		Provider{Name: "secondary", BaseURL: secondary.URL, Model: "m", APIKey: "k"},
	)

	text, provider, err := c.Complete(context.Background(),
		[]Message{{Role: "user", Content: "hi"}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "only configured", text)
	assert.Equal(t, "secondary", provider)
}

func TestCompleteAllProvidersFail(t *testing.T) {
	bad := chatServer(t, http.StatusInternalServerError, "")
	defer bad.Close()

	c := New(Provider{Name: "only", BaseURL: bad.URL, Model: "m", APIKey: "k"})

	_, _, err := c.Complete(context.Background(),
		[]Message{{Role: "user", Content: "hi"}}, Options{})
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestCompleteNoProvidersConfigured(t *testing.T) {
	c := New(Provider{Name: "only", BaseURL: "http://unused.invalid", Model: "m", APIKey: ""})

	_, _, err := c.Complete(context.Background(),
		[]Message{{Role: "user", Content: "hi"}}, Options{})
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}
