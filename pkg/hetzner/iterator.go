/*
 * Iterator - lazy page cursor over the zone list endpoint.
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
	"net/http"
	"net/url"
	"strconv"
)

// ZoneIterator walks a paginated zone listing as a single lazy sequence,
// fetching follow-up pages on demand. It is one-pass and forward-only: a new
// listing requires a fresh iterator. Not safe for concurrent use.
//
//	it, err := client.Zone.All(ctx, hetzner.ZoneListOpts{})
//	if err != nil { ... }
//	for it.Next(ctx) {
//		zone := it.Zone()
//	}
//	if err := it.Err(); err != nil { ... }
type ZoneIterator struct {
	client  *Client
	path    string
	query   url.Values
	meta    *Meta
	pending []Zone
	current Zone
	err     error
	done    bool
}

// newZoneIterator builds an iterator from the first page of a listing. The
// query is carried forward so that filters apply to every follow-up page.
func newZoneIterator(client *Client, path string, query url.Values, first ZonesResponse) *ZoneIterator {
	return &ZoneIterator{
		client:  client,
		path:    path,
		query:   query,
		meta:    first.Meta,
		pending: first.Zones,
	}
}

// Next advances the iterator to the next zone, fetching the next page when
// the current one is consumed. It returns false when the sequence is
// exhausted or a fetch failed; Err tells the two apart. Calling Next after
// exhaustion keeps returning false.
func (it *ZoneIterator) Next(ctx context.Context) bool {
	if it.err != nil {
		return false
	}
	if len(it.pending) == 0 {
		if !it.advance(ctx) {
			return false
		}
	}
	it.current = it.pending[0]
	it.pending = it.pending[1:]
	return true
}

// Zone returns the zone produced by the last successful call to Next.
func (it *ZoneIterator) Zone() Zone {
	return it.current
}

// Err returns the first error encountered while fetching pages. Exhaustion
// is not an error.
func (it *ZoneIterator) Err() error {
	return it.err
}

// advance fetches the next page, if any. Missing or incomplete pagination
// metadata ends the sequence instead of failing it, so a malformed trailing
// page cannot erase entities already yielded.
func (it *ZoneIterator) advance(ctx context.Context) bool {
	if it.done {
		return false
	}
	if it.meta == nil || it.meta.Pagination == nil || it.meta.Pagination.Page >= it.meta.Pagination.LastPage {
		it.done = true
		return false
	}

	next := 2
	if p := it.query.Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			next = n + 1
		}
	}
	query := cloneQuery(it.query)
	query.Set("page", strconv.Itoa(next))
	it.query = query

	resp, err := it.client.do(ctx, actListZones, http.MethodGet, it.path, query, "", nil)
	if err != nil {
		it.err = err
		it.done = true
		return false
	}
	page, err := decodeResponse[ZonesResponse](resp.body)
	if err != nil {
		it.err = err
		it.done = true
		return false
	}
	it.pending = page.Zones
	it.meta = page.Meta
	if len(it.pending) == 0 {
		it.done = true
		return false
	}
	return true
}

// cloneQuery copies query values so that a page advance never mutates the
// values the caller handed in.
func cloneQuery(query url.Values) url.Values {
	out := make(url.Values, len(query))
	for k, vs := range query {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
