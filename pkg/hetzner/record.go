/*
 * Record - record operations of the Hetzner DNS API.
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
	"fmt"
	"net/http"
	"net/url"
)

const (
	actListRecords       = "list_records"
	actGetRecord         = "get_record"
	actCreateRecord      = "create_record"
	actUpdateRecord      = "update_record"
	actDeleteRecord      = "delete_record"
	actBulkCreateRecords = "bulk_create_records"
	actBulkUpdateRecords = "bulk_update_records"
)

// RecordClient handles the record operations.
type RecordClient struct {
	client *Client
}

// All returns the records of a zone. The API returns the full set in one
// response, so unlike zone listing there is no page cursor here.
func (r *RecordClient) All(ctx context.Context, zoneID string) ([]Record, error) {
	query := url.Values{}
	query.Set("zone_id", zoneID)
	resp, err := r.client.do(ctx, actListRecords, http.MethodGet, "/records", query, "", nil)
	if err != nil {
		return nil, err
	}
	data, err := decodeResponse[RecordsResponse](resp.body)
	if err != nil {
		return nil, err
	}
	return data.Records, nil
}

// Get returns a single record by ID.
func (r *RecordClient) Get(ctx context.Context, recordID string) (*Record, error) {
	resp, err := r.client.do(ctx, actGetRecord, http.MethodGet, "/records/"+recordID, nil, "", nil)
	if err != nil {
		return nil, err
	}
	data, err := decodeResponse[RecordResponse](resp.body)
	if err != nil {
		return nil, err
	}
	return &data.Record, nil
}

// Create creates a record.
func (r *RecordClient) Create(ctx context.Context, opts RecordCreateOpts) (*Record, error) {
	if !opts.Type.Creatable() {
		return nil, fmt.Errorf("record type %q cannot be created", opts.Type)
	}
	body, err := encodeRequest(opts)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.do(ctx, actCreateRecord, http.MethodPost, "/records", nil, "application/json", body)
	if err != nil {
		return nil, err
	}
	data, err := decodeResponse[RecordResponse](resp.body)
	if err != nil {
		return nil, err
	}
	return &data.Record, nil
}

// Update updates a record.
func (r *RecordClient) Update(ctx context.Context, recordID string, opts RecordCreateOpts) (*Record, error) {
	if !opts.Type.Creatable() {
		return nil, fmt.Errorf("record type %q cannot be updated", opts.Type)
	}
	body, err := encodeRequest(opts)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.do(ctx, actUpdateRecord, http.MethodPut, "/records/"+recordID, nil, "application/json", body)
	if err != nil {
		return nil, err
	}
	data, err := decodeResponse[RecordResponse](resp.body)
	if err != nil {
		return nil, err
	}
	return &data.Record, nil
}

// Delete deletes a record.
func (r *RecordClient) Delete(ctx context.Context, recordID string) error {
	_, err := r.client.do(ctx, actDeleteRecord, http.MethodDelete, "/records/"+recordID, nil, "", nil)
	return err
}

// BulkCreate starts a bulk record creation. Records are collected with Add
// and sent with a single Submit call; the builder is not reusable afterwards.
func (r *RecordClient) BulkCreate() *BulkCreateBuilder {
	return &BulkCreateBuilder{client: r.client}
}

// BulkUpdate starts a bulk record update.
func (r *RecordClient) BulkUpdate() *BulkUpdateBuilder {
	return &BulkUpdateBuilder{client: r.client}
}

// BulkCreateBuilder collects records for a single bulk create submission.
type BulkCreateBuilder struct {
	client  *Client
	records []RecordCreateOpts
}

// Add queues a record for creation.
func (b *BulkCreateBuilder) Add(opts RecordCreateOpts) error {
	if !opts.Type.Creatable() {
		return fmt.Errorf("record type %q cannot be created", opts.Type)
	}
	b.records = append(b.records, opts)
	return nil
}

// Len returns the number of queued records.
func (b *BulkCreateBuilder) Len() int {
	return len(b.records)
}

// Submit sends the queued records in one request. Per-record failures come
// back inside the result partition, not as an error.
func (b *BulkCreateBuilder) Submit(ctx context.Context) (*BulkCreateRecordsResponse, error) {
	body, err := encodeRequest(bulkCreateRequest{Records: b.records})
	if err != nil {
		return nil, err
	}
	resp, err := b.client.do(ctx, actBulkCreateRecords, http.MethodPost, "/records/bulk", nil, "application/json", body)
	if err != nil {
		return nil, err
	}
	data, err := decodeResponse[BulkCreateRecordsResponse](resp.body)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// BulkUpdateBuilder collects records for a single bulk update submission.
type BulkUpdateBuilder struct {
	client  *Client
	records []RecordUpdateOpts
}

// Add queues a record for update.
func (b *BulkUpdateBuilder) Add(opts RecordUpdateOpts) error {
	if !opts.Type.Creatable() {
		return fmt.Errorf("record type %q cannot be updated", opts.Type)
	}
	b.records = append(b.records, opts)
	return nil
}

// Len returns the number of queued records.
func (b *BulkUpdateBuilder) Len() int {
	return len(b.records)
}

// Submit sends the queued records in one request.
func (b *BulkUpdateBuilder) Submit(ctx context.Context) (*BulkUpdateRecordsResponse, error) {
	body, err := encodeRequest(bulkUpdateRequest{Records: b.records})
	if err != nil {
		return nil, err
	}
	resp, err := b.client.do(ctx, actBulkUpdateRecords, http.MethodPut, "/records/bulk", nil, "application/json", body)
	if err != nil {
		return nil, err
	}
	data, err := decodeResponse[BulkUpdateRecordsResponse](resp.body)
	if err != nil {
		return nil, err
	}
	return &data, nil
}
