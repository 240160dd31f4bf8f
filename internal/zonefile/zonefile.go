/*
 * Zonefile - local zone file parsing for import and validation.
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
package zonefile

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"codeberg.org/miekg/dns"
)

// Zonefile holds the parsed contents of a local zone file, ready to be
// inspected or re-rendered before an upload to the API.
type Zonefile struct {
	zoneName string
	origin   string
	ttl      int
	soa      *dns.SOA
	records  []dns.RR
}

// Parse reads a zone file for the given zone name. A non-positive ttl falls
// back to the SOA minimum TTL at render time.
func Parse(r io.Reader, zoneName string, ttl int) (*Zonefile, error) {
	origin := zoneName + "."
	zp := dns.NewZoneParser(r, origin, zoneName+".zone")

	var soa *dns.SOA
	var records []dns.RR
	for rr, ok := zp.Next(); ok; rr, ok = zp.Next() {
		if s, isSOA := rr.(*dns.SOA); isSOA {
			if soa != nil {
				return nil, fmt.Errorf("zone %s contains more than one SOA record", zoneName)
			}
			soa = s
			continue
		}
		records = append(records, rr)
	}
	// Next returns false both at EOF and on a syntax error. Without this
	// check a file that breaks halfway would come back as a truncated zone.
	if err := zp.Err(); err != nil {
		return nil, fmt.Errorf("cannot parse zone %s: %w", zoneName, err)
	}
	if soa == nil && len(records) == 0 {
		return nil, fmt.Errorf("cannot read any records for zone %s", zoneName)
	}

	return &Zonefile{
		zoneName: zoneName,
		origin:   origin,
		ttl:      ttl,
		soa:      soa,
		records:  records,
	}, nil
}

// Origin returns the zone origin.
func (z Zonefile) Origin() string {
	return z.origin
}

// Summary counts the parsed records per type, SOA included.
func (z Zonefile) Summary() map[string]int {
	counts := make(map[string]int)
	if z.soa != nil {
		counts[typeName(z.soa)]++
	}
	for _, rr := range z.records {
		counts[typeName(rr)]++
	}
	return counts
}

// Len returns the number of parsed records, SOA included.
func (z Zonefile) Len() int {
	n := len(z.records)
	if z.soa != nil {
		n++
	}
	return n
}

// BumpSerial refreshes the SOA serial number. A serial in the date+version
// scheme is incremented; anything else is replaced with a fresh serial for
// today.
func (z *Zonefile) BumpSerial() error {
	if z.soa == nil {
		return errors.New("zone has no SOA record")
	}
	sn, err := ParseSerial(fmt.Sprintf("%d", z.soa.Serial))
	if err != nil {
		z.soa.Serial = TodaySerial().Uint32()
		return nil
	}
	if err := sn.Inc(); err != nil {
		return err
	}
	z.soa.Serial = sn.Uint32()
	return nil
}

// Render builds the zone file text, SOA first.
func (z Zonefile) Render() (string, error) {
	ttl := z.ttl
	var out strings.Builder
	fmt.Fprintf(&out, "$ORIGIN %s\n", z.origin)
	if z.soa != nil {
		if ttl <= 0 {
			ttl = int(z.soa.Minttl)
		}
		fmt.Fprintf(&out, "$TTL %d\n", ttl)
		fmt.Fprintf(&out, "%s\n", z.soa.String())
	} else if ttl > 0 {
		fmt.Fprintf(&out, "$TTL %d\n", ttl)
	}
	for _, rr := range z.records {
		fmt.Fprintf(&out, "%s\n", rr.String())
	}
	return out.String(), nil
}

// typeName renders a record type for the summary.
func typeName(rr dns.RR) string {
	switch dns.RRToType(rr) {
	case dns.TypeSOA:
		return "SOA"
	case dns.TypeA:
		return "A"
	case dns.TypeAAAA:
		return "AAAA"
	case dns.TypeCNAME:
		return "CNAME"
	case dns.TypeNS:
		return "NS"
	case dns.TypeMX:
		return "MX"
	case dns.TypeSRV:
		return "SRV"
	case dns.TypeTXT:
		return "TXT"
	default:
		return fmt.Sprintf("TYPE%d", dns.RRToType(rr))
	}
}
