/*
 * Zone operation tests.
 *
 * Copyright 2026 The hetzner-dns-api authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package hetzner

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newZoneFixture spins up a mock zone API and a client pointed at it.
func newZoneFixture(t *testing.T) *Client {
	t.Helper()

	writeZone := func(w http.ResponseWriter, zone Zone) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ZoneResponse{Zone: zone})
	}

	r := chi.NewRouter()
	r.Get("/zones", func(w http.ResponseWriter, req *http.Request) {
		query := req.URL.Query()
		var zones []Zone
		switch {
		case query.Get("name") == "present.example":
			zone := makeZone(1)
			zone.Name = "present.example"
			zones = []Zone{zone}
		case query.Get("name") != "":
			zones = []Zone{}
		default:
			zones = makeZones(2)
		}
		resp := ZonesResponse{
			Zones: zones,
			Meta:  &Meta{Pagination: &Pagination{Page: 1, PerPage: 100, LastPage: 1, TotalEntries: len(zones)}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})
	r.Post("/zones", func(w http.ResponseWriter, req *http.Request) {
		var opts ZoneCreateOpts
		require.NoError(t, json.NewDecoder(req.Body).Decode(&opts))
		zone := makeZone(7)
		zone.Name = opts.Name
		zone.TTL = opts.TTL
		w.WriteHeader(http.StatusCreated)
		writeZone(w, zone)
	})
	r.Get("/zones/{id}", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "id") == "missing" {
			http.Error(w, `{"error":{"message":"zone not found"}}`, http.StatusNotFound)
			return
		}
		zone := makeZone(3)
		zone.ID = chi.URLParam(req, "id")
		zone.RecordsCount = 12
		writeZone(w, zone)
	})
	r.Put("/zones/{id}", func(w http.ResponseWriter, req *http.Request) {
		var opts ZoneUpdateOpts
		require.NoError(t, json.NewDecoder(req.Body).Decode(&opts))
		zone := makeZone(3)
		zone.ID = chi.URLParam(req, "id")
		zone.Name = opts.Name
		zone.TTL = opts.TTL
		writeZone(w, zone)
	})
	r.Delete("/zones/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/zones/{id}/import", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "text/plain", req.Header.Get("Content-Type"))
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "SOA")
		zone := makeZone(3)
		zone.ID = chi.URLParam(req, "id")
		writeZone(w, zone)
	})
	r.Get("/zones/{id}/export", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("$ORIGIN example.com.\nwww IN A 192.0.2.1\n"))
	})
	r.Post("/zones/{id}/validate", func(w http.ResponseWriter, req *http.Request) {
		resp := ZoneValidation{
			ParsedRecords: 2,
			ValidRecords:  []Record{{ID: "r1", Type: RecordTypeA, Name: "www", Value: "192.0.2.1", ZoneID: chi.URLParam(req, "id"), Created: testTime, Modified: testTime}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return NewClient("test-token", WithEndpoint(srv.URL))
}

func Test_ZoneClient_Get(t *testing.T) {
	client := newZoneFixture(t)

	zone, err := client.Zone.Get(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", zone.ID)
}

func Test_ZoneClient_GetID(t *testing.T) {
	client := newZoneFixture(t)
	ctx := context.Background()

	t.Run("present", func(t *testing.T) {
		id, err := client.Zone.GetID(ctx, "present.example")
		require.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("absent resolves to empty, not error", func(t *testing.T) {
		id, err := client.Zone.GetID(ctx, "absent.example")
		require.NoError(t, err)
		assert.Empty(t, id)
	})
}

func Test_ZoneClient_Count(t *testing.T) {
	client := newZoneFixture(t)

	count, err := client.Zone.Count(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, 12, count)
}

func Test_ZoneClient_Create(t *testing.T) {
	client := newZoneFixture(t)

	zone, err := client.Zone.Create(context.Background(), ZoneCreateOpts{Name: "new.example", TTL: 7200})
	require.NoError(t, err)
	assert.Equal(t, "new.example", zone.Name)
	assert.Equal(t, 7200, zone.TTL)
}

func Test_ZoneClient_Update(t *testing.T) {
	client := newZoneFixture(t)

	zone, err := client.Zone.Update(context.Background(), "abc123", ZoneUpdateOpts{Name: "renamed.example", TTL: 300})
	require.NoError(t, err)
	assert.Equal(t, "abc123", zone.ID)
	assert.Equal(t, "renamed.example", zone.Name)
	assert.Equal(t, 300, zone.TTL)
}

func Test_ZoneClient_Delete(t *testing.T) {
	client := newZoneFixture(t)

	assert.NoError(t, client.Zone.Delete(context.Background(), "abc123"))
}

func Test_ZoneClient_Import(t *testing.T) {
	client := newZoneFixture(t)

	content := "example.com. IN SOA ns1.example.com. admin.example.com. 2025010100 7200 900 1209600 300\n"
	zone, err := client.Zone.Import(context.Background(), "abc123", content)
	require.NoError(t, err)
	assert.Equal(t, "abc123", zone.ID)
}

func Test_ZoneClient_Export(t *testing.T) {
	client := newZoneFixture(t)

	content, err := client.Zone.Export(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Contains(t, content, "www IN A 192.0.2.1")
}

func Test_ZoneClient_Validate(t *testing.T) {
	client := newZoneFixture(t)

	result, err := client.Zone.Validate(context.Background(), "abc123", "www IN A 192.0.2.1\n")
	require.NoError(t, err)
	assert.Equal(t, 2, result.ParsedRecords)
	require.Len(t, result.ValidRecords, 1)
	assert.Equal(t, "abc123", result.ValidRecords[0].ZoneID)
}

func Test_ZoneClient_All_conflictingFilters(t *testing.T) {
	client := newZoneFixture(t)

	_, err := client.Zone.All(context.Background(), ZoneListOpts{Name: "a.example", SearchName: "a"})
	assert.ErrorIs(t, err, ErrConflictingFilters)
}

func Test_Client_statusMapping(t *testing.T) {
	type testCase struct {
		name       string
		status     int
		body       string
		checkError func(t *testing.T, err error)
	}

	run := func(t *testing.T, tc testCase) {
		r := chi.NewRouter()
		r.Get("/zones/{id}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(tc.body))
		})
		srv := httptest.NewServer(r)
		defer srv.Close()

		client := NewClient("test-token", WithEndpoint(srv.URL))
		_, err := client.Zone.Get(context.Background(), "abc123")
		require.Error(t, err)
		tc.checkError(t, err)
	}

	testCases := []testCase{
		{
			name:   "404 is not-found",
			status: http.StatusNotFound,
			body:   "nope",
			checkError: func(t *testing.T, err error) {
				var notFound *NotFoundError
				require.True(t, errors.As(err, &notFound))
				assert.Equal(t, "nope", notFound.Body)
				assert.Contains(t, notFound.Error(), "nope")
			},
		},
		{
			name:   "401 is authorization failure",
			status: http.StatusUnauthorized,
			body:   "bad key",
			checkError: func(t *testing.T, err error) {
				var authErr *AuthorizationError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, "bad key", authErr.Body)
				assert.Contains(t, authErr.Error(), "bad key")
			},
		},
		{
			name:   "500 is a generic API error with the body",
			status: http.StatusInternalServerError,
			body:   "server exploded",
			checkError: func(t *testing.T, err error) {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
				assert.Equal(t, "server exploded", apiErr.Body)
				assert.Contains(t, apiErr.Error(), "server exploded")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}

func Test_Client_authHeader(t *testing.T) {
	var gotToken string
	r := chi.NewRouter()
	r.Get("/zones/{id}", func(w http.ResponseWriter, req *http.Request) {
		gotToken = req.Header.Get("Auth-API-Token")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ZoneResponse{Zone: makeZone(1)})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client := NewClient("secret-token", WithEndpoint(srv.URL))
	_, err := client.Zone.Get(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "secret-token", gotToken)
}
