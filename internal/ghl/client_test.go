// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Propflow Authors

package ghl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	return NewClient(Config{
		BaseURL:    serverURL,
		APIKey:     "test-api-key",
		LocationID: "loc-1",
	})
}

func TestPipelines_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/pipelines/", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"pipelines": [
				{
					"id": "pipe-1",
					"name": "Wholesale Deals",
					"stages": [
						{"id": "stage-1", "name": "New Lead"},
						{"id": "stage-2", "name": "Under Contract"}
					]
				}
			]
		}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	pipelines, err := c.Pipelines(context.Background())

	require.NoError(t, err)
	require.Len(t, pipelines, 1)
	assert.Equal(t, "pipe-1", pipelines[0].ID)
	assert.Equal(t, "Wholesale Deals", pipelines[0].Name)
	require.Len(t, pipelines[0].Stages, 2)
	assert.Equal(t, "stage-2", pipelines[0].Stages[1].ID)
}

func TestPipelines_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid api key"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Pipelines(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPipelines_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Pipelines(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 500")
}

func TestPipelines_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"pipelines": [`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Pipelines(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode pipelines response")
}

func TestPing_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"pipelines": []}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	assert.NoError(t, c.Ping(context.Background()))
}

func TestPing_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnauthorized)
}
