/*
 * Serial - SOA serial numbers in the date+version scheme.
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
	"strconv"
	"time"
)

// format of the date part of the serial number
const fmtSerialDate = "20060102"

// Serial represents a SOA serial number of the form YYYYMMDDVV.
type Serial struct {
	date    string
	version int
}

// ParseSerial parses a serial number in the date+version scheme. Serials
// with a different shape, or a date part in the future, are rejected.
func ParseSerial(sn string) (*Serial, error) {
	if len(sn) != 10 {
		return nil, fmt.Errorf("serial number %q is not in the date+version scheme", sn)
	}
	datePart := sn[:8]
	date, err := time.Parse(fmtSerialDate, datePart)
	if err != nil {
		return nil, fmt.Errorf("cannot parse date in serial number %q", sn)
	}
	today := time.Now().Format(fmtSerialDate)
	if date.Format(fmtSerialDate) > today {
		return nil, fmt.Errorf("date part %q of serial number is in the future", datePart)
	}
	version, err := strconv.Atoi(sn[8:])
	if err != nil {
		return nil, fmt.Errorf("cannot parse version in serial number %q: %w", sn, err)
	}
	if version < 0 || version > 99 {
		return nil, fmt.Errorf("version %d is not supported", version)
	}
	return &Serial{date: datePart, version: version}, nil
}

// TodaySerial creates a new serial number for today, version zero.
func TodaySerial() *Serial {
	return &Serial{
		date:    time.Now().Format(fmtSerialDate),
		version: 0,
	}
}

// Inc increments the serial. Crossing into a new day resets the version.
func (s *Serial) Inc() error {
	today := time.Now().Format(fmtSerialDate)
	if today != s.date {
		s.date = today
		s.version = 0
		return nil
	}
	if s.version == 99 {
		return errors.New("cannot increment serial version past 99")
	}
	s.version++
	return nil
}

// String returns the YYYYMMDDVV representation.
func (s Serial) String() string {
	return fmt.Sprintf("%s%02d", s.date, s.version)
}

// Uint32 returns the serial as the SOA wire value.
func (s Serial) Uint32() uint32 {
	n, err := strconv.Atoi(s.String())
	if err != nil {
		panic(fmt.Sprintf("wrong internal conversion on %q: %v", s.String(), err))
	}
	return uint32(n)
}
