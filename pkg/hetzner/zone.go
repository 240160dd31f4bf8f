/*
 * Zone - zone operations of the Hetzner DNS API.
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
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

const (
	actListZones    = "list_zones"
	actGetZone      = "get_zone"
	actCreateZone   = "create_zone"
	actUpdateZone   = "update_zone"
	actDeleteZone   = "delete_zone"
	actImportZone   = "import_zone"
	actExportZone   = "export_zone"
	actValidateZone = "validate_zone"
)

// ErrConflictingFilters is returned when a zone listing sets both the exact
// name filter and the name search filter.
var ErrConflictingFilters = errors.New("zone list filters name and search_name are mutually exclusive")

// ZoneClient handles the zone operations.
type ZoneClient struct {
	client *Client
}

// All lists zones matching opts and returns an iterator over the full,
// possibly multi-page result. The first page is fetched eagerly so that
// request errors surface here instead of on the first Next call.
func (z *ZoneClient) All(ctx context.Context, opts ZoneListOpts) (*ZoneIterator, error) {
	if opts.Name != "" && opts.SearchName != "" {
		return nil, ErrConflictingFilters
	}
	query := url.Values{}
	if opts.Name != "" {
		query.Set("name", opts.Name)
	}
	if opts.SearchName != "" {
		query.Set("search_name", opts.SearchName)
	}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(opts.PerPage))
	}

	resp, err := z.client.do(ctx, actListZones, http.MethodGet, "/zones", query, "", nil)
	if err != nil {
		return nil, err
	}
	first, err := decodeResponse[ZonesResponse](resp.body)
	if err != nil {
		return nil, err
	}
	return newZoneIterator(z.client, "/zones", query, first), nil
}

// Get returns a single zone by ID.
func (z *ZoneClient) Get(ctx context.Context, zoneID string) (*Zone, error) {
	resp, err := z.client.do(ctx, actGetZone, http.MethodGet, "/zones/"+zoneID, nil, "", nil)
	if err != nil {
		return nil, err
	}
	data, err := decodeResponse[ZoneResponse](resp.body)
	if err != nil {
		return nil, err
	}
	return &data.Zone, nil
}

// GetID resolves a zone name to its ID via an exact-match listing. A name
// that resolves to nothing returns an empty ID, not an error.
func (z *ZoneClient) GetID(ctx context.Context, name string) (string, error) {
	query := url.Values{}
	query.Set("name", name)
	resp, err := z.client.do(ctx, actListZones, http.MethodGet, "/zones", query, "", nil)
	if err != nil {
		return "", err
	}
	zones, err := decodeResponse[ZonesResponse](resp.body)
	if err != nil {
		return "", err
	}
	if len(zones.Zones) == 0 {
		return "", nil
	}
	return zones.Zones[0].ID, nil
}

// Count returns the number of records in a zone.
func (z *ZoneClient) Count(ctx context.Context, zoneID string) (int, error) {
	zone, err := z.Get(ctx, zoneID)
	if err != nil {
		return 0, err
	}
	return zone.RecordsCount, nil
}

// Create creates a zone.
func (z *ZoneClient) Create(ctx context.Context, opts ZoneCreateOpts) (*Zone, error) {
	body, err := encodeRequest(opts)
	if err != nil {
		return nil, err
	}
	resp, err := z.client.do(ctx, actCreateZone, http.MethodPost, "/zones", nil, "application/json", body)
	if err != nil {
		return nil, err
	}
	data, err := decodeResponse[ZoneResponse](resp.body)
	if err != nil {
		return nil, err
	}
	return &data.Zone, nil
}

// Update updates a zone.
func (z *ZoneClient) Update(ctx context.Context, zoneID string, opts ZoneUpdateOpts) (*Zone, error) {
	body, err := encodeRequest(opts)
	if err != nil {
		return nil, err
	}
	resp, err := z.client.do(ctx, actUpdateZone, http.MethodPut, "/zones/"+zoneID, nil, "application/json", body)
	if err != nil {
		return nil, err
	}
	data, err := decodeResponse[ZoneResponse](resp.body)
	if err != nil {
		return nil, err
	}
	return &data.Zone, nil
}

// Delete deletes a zone.
func (z *ZoneClient) Delete(ctx context.Context, zoneID string) error {
	_, err := z.client.do(ctx, actDeleteZone, http.MethodDelete, "/zones/"+zoneID, nil, "", nil)
	return err
}

// Import replaces the contents of a zone with the given zone file text.
func (z *ZoneClient) Import(ctx context.Context, zoneID, zonefile string) (*Zone, error) {
	resp, err := z.client.do(ctx, actImportZone, http.MethodPost, "/zones/"+zoneID+"/import", nil, "text/plain", []byte(zonefile))
	if err != nil {
		return nil, err
	}
	data, err := decodeResponse[ZoneResponse](resp.body)
	if err != nil {
		return nil, err
	}
	return &data.Zone, nil
}

// Export returns the zone as zone file text.
func (z *ZoneClient) Export(ctx context.Context, zoneID string) (string, error) {
	resp, err := z.client.do(ctx, actExportZone, http.MethodGet, "/zones/"+zoneID+"/export", nil, "", nil)
	if err != nil {
		return "", err
	}
	return string(resp.body), nil
}

// Validate submits zone file text for validation without applying it.
func (z *ZoneClient) Validate(ctx context.Context, zoneID, zonefile string) (*ZoneValidation, error) {
	resp, err := z.client.do(ctx, actValidateZone, http.MethodPost, "/zones/"+zoneID+"/validate", nil, "text/plain", []byte(zonefile))
	if err != nil {
		return nil, err
	}
	data, err := decodeResponse[ZoneValidation](resp.body)
	if err != nil {
		return nil, err
	}
	return &data, nil
}
