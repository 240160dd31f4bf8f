/*
 * Schema - wire types for the Hetzner DNS API.
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

import "errors"

// ZoneStatus is the verification status of a zone.
type ZoneStatus string

// Zone statuses.
const (
	ZoneStatusVerified ZoneStatus = "verified"
	ZoneStatusFailed   ZoneStatus = "failed"
	ZoneStatusPending  ZoneStatus = "pending"
)

// RecordType is a DNS record type.
type RecordType string

// DNS record types.
const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypePTR   RecordType = "PTR"
	RecordTypeNS    RecordType = "NS"
	RecordTypeMX    RecordType = "MX"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeRP    RecordType = "RP"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeSOA   RecordType = "SOA"
	RecordTypeHINFO RecordType = "HINFO"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeDANE  RecordType = "DANE"
	RecordTypeTLSA  RecordType = "TLSA"
	RecordTypeDS    RecordType = "DS"
	RecordTypeCAA   RecordType = "CAA"
)

// recordTypes holds all types the API can return.
var recordTypes = map[RecordType]bool{
	RecordTypeA: true, RecordTypeAAAA: true, RecordTypePTR: true,
	RecordTypeNS: true, RecordTypeMX: true, RecordTypeCNAME: true,
	RecordTypeRP: true, RecordTypeTXT: true, RecordTypeSOA: true,
	RecordTypeHINFO: true, RecordTypeSRV: true, RecordTypeDANE: true,
	RecordTypeTLSA: true, RecordTypeDS: true, RecordTypeCAA: true,
}

// Valid reports whether t is a record type known to the API.
func (t RecordType) Valid() bool {
	return recordTypes[t]
}

// Creatable reports whether records of this type can be created through the
// API. PTR records are returned by the API but cannot be created.
func (t RecordType) Creatable() bool {
	return t.Valid() && t != RecordTypePTR
}

// TXTVerification is the TXT record used to verify a zone.
type TXTVerification struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// Zone represents a DNS zone.
type Zone struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Created         Time             `json:"created"`
	Modified        Time             `json:"modified"`
	LegacyDNSHost   string           `json:"legacy_dns_host"`
	LegacyNS        []string         `json:"legacy_ns"`
	NS              []string         `json:"ns"`
	Owner           string           `json:"owner"`
	Paused          bool             `json:"paused"`
	Permission      string           `json:"permission"`
	Project         string           `json:"project"`
	Registrar       string           `json:"registrar"`
	Status          ZoneStatus       `json:"status"`
	TTL             int              `json:"ttl"`
	Verified        VerifiedTime     `json:"verified"`
	RecordsCount    int              `json:"records_count"`
	IsSecondaryDNS  bool             `json:"is_secondary_dns"`
	TXTVerification *TXTVerification `json:"txt_verification"`
}

// Record represents a DNS record.
type Record struct {
	ID       string     `json:"id"`
	Type     RecordType `json:"type"`
	Name     string     `json:"name"`
	Value    string     `json:"value"`
	ZoneID   string     `json:"zone_id"`
	Created  Time       `json:"created"`
	Modified Time       `json:"modified"`
	TTL      int        `json:"ttl,omitempty"`
}

// Pagination is the paging metadata attached to list responses.
type Pagination struct {
	Page         int `json:"page"`
	PerPage      int `json:"per_page"`
	LastPage     int `json:"last_page"`
	TotalEntries int `json:"total_entries"`
}

// Meta wraps the pagination metadata.
type Meta struct {
	Pagination *Pagination `json:"pagination"`
}

// ZoneListOpts are the filters for zone listing. Name matches a zone name
// exactly; SearchName matches partially. Setting both is a caller error.
type ZoneListOpts struct {
	Name       string
	SearchName string
	Page       int
	PerPage    int
}

// ZoneCreateOpts are the options for zone creation.
type ZoneCreateOpts struct {
	Name string `json:"name"`
	TTL  int    `json:"ttl,omitempty"`
}

// ZoneUpdateOpts are the options for a zone update.
type ZoneUpdateOpts struct {
	Name string `json:"name"`
	TTL  int    `json:"ttl,omitempty"`
}

// RecordCreateOpts describe a record to create. The same shape is sent for
// single-record updates, where the record ID travels in the URL instead.
type RecordCreateOpts struct {
	ZoneID string     `json:"zone_id"`
	Name   string     `json:"name"`
	Type   RecordType `json:"type"`
	Value  string     `json:"value"`
	TTL    int        `json:"ttl,omitempty"`
}

// RecordUpdateOpts describe a record in a bulk update, which carries the
// record ID in the payload.
type RecordUpdateOpts struct {
	ID     string     `json:"id"`
	ZoneID string     `json:"zone_id"`
	Name   string     `json:"name"`
	Type   RecordType `json:"type"`
	Value  string     `json:"value"`
	TTL    int        `json:"ttl,omitempty"`
}

// ZoneResponse is the envelope of a single-zone response.
type ZoneResponse struct {
	Zone Zone `json:"zone"`
}

// ZonesResponse is the envelope of a zone list response.
type ZonesResponse struct {
	Zones []Zone `json:"zones"`
	Meta  *Meta  `json:"meta"`
}

// RecordResponse is the envelope of a single-record response.
type RecordResponse struct {
	Record Record `json:"record"`
}

// RecordsResponse is the envelope of a record list response.
type RecordsResponse struct {
	Records []Record `json:"records"`
}

// BulkCreateRecordsResponse is the envelope of a bulk create response. The
// API partitions the submitted records into valid and invalid entries within
// a successful response; partial failure is data here, not an error.
type BulkCreateRecordsResponse struct {
	Records        []Record           `json:"records"`
	ValidRecords   []RecordCreateOpts `json:"valid_records"`
	InvalidRecords []RecordCreateOpts `json:"invalid_records"`
}

// BulkUpdateRecordsResponse is the envelope of a bulk update response.
type BulkUpdateRecordsResponse struct {
	Records       []Record           `json:"records"`
	FailedRecords []RecordUpdateOpts `json:"failed_records"`
}

// ZoneValidation is the envelope of a zone file validation response.
type ZoneValidation struct {
	ParsedRecords int      `json:"parsed_records"`
	ValidRecords  []Record `json:"valid_records"`
}

// bulkCreateRequest is the payload of a bulk create submission.
type bulkCreateRequest struct {
	Records []RecordCreateOpts `json:"records"`
}

// bulkUpdateRequest is the payload of a bulk update submission.
type bulkUpdateRequest struct {
	Records []RecordUpdateOpts `json:"records"`
}

// validate checks that the payload carried a zone object.
func (r ZoneResponse) validate() error {
	if r.Zone.ID == "" {
		return errors.New("missing or incomplete field: zone")
	}
	return nil
}

// validate checks that the payload carried a zone list. Pagination metadata
// is optional here: the page cursor treats its absence as terminal.
func (r ZonesResponse) validate() error {
	if r.Zones == nil {
		return errors.New("missing field: zones")
	}
	return nil
}

// validate checks that the payload carried a record object.
func (r RecordResponse) validate() error {
	if r.Record.ID == "" {
		return errors.New("missing or incomplete field: record")
	}
	return nil
}

// validate checks that the payload carried a record list.
func (r RecordsResponse) validate() error {
	if r.Records == nil {
		return errors.New("missing field: records")
	}
	return nil
}

// validate checks that the payload carried the bulk create partition.
func (r BulkCreateRecordsResponse) validate() error {
	if r.Records == nil {
		return errors.New("missing field: records")
	}
	return nil
}

// validate checks that the payload carried the bulk update partition.
func (r BulkUpdateRecordsResponse) validate() error {
	if r.Records == nil {
		return errors.New("missing field: records")
	}
	return nil
}

// validate checks that the payload carried the validation result.
func (r ZoneValidation) validate() error {
	if r.ValidRecords == nil {
		return errors.New("missing field: valid_records")
	}
	return nil
}
