package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewaySender_Send(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sender := NewGatewaySender(srv.Client(), srv.URL, "key-1", "ESTATE")
	require.NoError(t, sender.Send(context.Background(), "+919812345678", "Your code is 482913"))

	assert.Equal(t, "+919812345678", got.To)
	assert.Equal(t, "ESTATE", got.From)
	assert.Equal(t, "Your code is 482913", got.Message)
}

func TestGatewaySender_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid number", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	err := NewGatewaySender(srv.Client(), srv.URL, "k", "").Send(context.Background(), "123", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}
