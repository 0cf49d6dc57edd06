//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package stamp

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// IDSize is length of sequential identifier in bytes
const IDSize = 16

// epoch of day-count ⟨𝒅⟩
var epoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// milliseconds per tick, 1/300 second is native resolution of SQL Server datetime
const msPerTick = 3.333333

/*
ID is sequentially ordered 128-bit identifier, so called "comb".

	  2 byte    4 byte           10 byte
	|-------|-----------|----------------------|
	  ⟨𝒅⟩        ⟨𝒕⟩              ⟨𝒓⟩

↣ ⟨𝒅⟩ low 2 bytes of days since 1900-01-01, big-endian. The value wraps
after 65535 days, on 2079-06-07.

↣ ⟨𝒕⟩ low 4 bytes of time of day in 1/300 second ticks, big-endian.

↣ ⟨𝒓⟩ first 10 bytes of random 128-bit value.

Identifiers sort chronologically when compared as big-endian bytes (e.g.
binary(16) column). Note that SQL Server uniqueidentifier sorts by the last
6 bytes first, the value shall not be stored in such column.
*/
type ID [IDSize]byte

// NewID generates sequentially ordered identifier. It fails with
// ErrClockRegression if clock is before 1900-01-01.
func NewID(clock Chronos) (ID, error) {
	r := clock.R()
	t := clock.T()

	days, err := daysSinceEpoch(t)
	if err != nil {
		return ID{}, err
	}

	var id ID
	copy(id[6:], r[:10])
	binary.BigEndian.PutUint16(id[0:2], uint16(days))
	binary.BigEndian.PutUint32(id[2:6], uint32(ticksOfDay(t)))

	return id, nil
}

// MustID generates identifier, it panics on error
func MustID(clock Chronos) ID {
	id, err := NewID(clock)
	if err != nil {
		panic(err)
	}
	return id
}

// whole days between epoch and date of t, time of day is truncated
func daysSinceEpoch(t time.Time) (int64, error) {
	y, m, d := t.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	days := (date.Unix() - epoch.Unix()) / 86400
	if days < 0 {
		return 0, errors.Wrapf(ErrClockRegression, "%s", t.Format(time.RFC3339))
	}

	return days, nil
}

// wall clock time of day in 1/300 second ticks
func ticksOfDay(t time.Time) int64 {
	h, m, s := t.Clock()
	ns := int64(h*3600+m*60+s)*int64(time.Second) + int64(t.Nanosecond())
	ms := float64(ns) / float64(time.Millisecond)

	return int64(ms / msPerTick)
}

/*******************************************************************************

Lenses of ID

*******************************************************************************/

// Days returns ⟨𝒅⟩ fraction, days since 1900-01-01 modulo 65536
func (id ID) Days() uint16 {
	return binary.BigEndian.Uint16(id[0:2])
}

// Ticks returns ⟨𝒕⟩ fraction, 1/300 second ticks since midnight
func (id ID) Ticks() uint32 {
	return binary.BigEndian.Uint32(id[2:6])
}

// Time approximates the instant of identifier at the given location.
// Ticks are wall clock time of day, the instant is built from wall clock
// components. It assumes the day-count has not wrapped.
func (id ID) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}

	y, m, d := epoch.AddDate(0, 0, int(id.Days())).Date()
	ns := int64(float64(id.Ticks()) * msPerTick * float64(time.Millisecond))

	sec := ns / int64(time.Second)
	return time.Date(y, m, d,
		int(sec/3600), int(sec/60%60), int(sec%60), int(ns%int64(time.Second)),
		loc,
	)
}

// Bytes returns copy of identifier bytes
func (id ID) Bytes() []byte {
	b := make([]byte, IDSize)
	copy(b, id[:])
	return b
}

// UUID casts identifier to UUID, bytes are kept in order
func (id ID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

/*******************************************************************************

ID "Algebra"

*******************************************************************************/

// Equal compares identifiers, returns true if values are equal
func Equal(a, b ID) bool {
	return a == b
}

// Less compares identifiers as big-endian bytes, returns true if a is
// before b
func Less(a, b ID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

/*******************************************************************************

Codecs

*******************************************************************************/

// FromBytes decodes identifier from 16 bytes
func FromBytes(b []byte) (ID, error) {
	if len(b) != IDSize {
		return ID{}, errors.Wrapf(ErrMalformed, "%d bytes", len(b))
	}

	var id ID
	copy(id[:], b)
	return id, nil
}

// ParseID decodes identifier from canonical 8-4-4-4-12 hex form
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, errors.Wrapf(ErrMalformed, "%q: %v", s, err)
	}
	return ID(u), nil
}

// String encodes identifier to canonical 8-4-4-4-12 hex form
func (id ID) String() string {
	return id.UUID().String()
}

// MarshalText encodes identifier to canonical hex form
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText decodes identifier from canonical hex form
func (id *ID) UnmarshalText(b []byte) (err error) {
	*id, err = ParseID(string(b))
	return
}

// Sortable encodes identifier to 22 chars lexicographically sortable string
func (id ID) Sortable() string {
	return encode64(id[:])
}

// FromSortable decodes identifier from lexicographically sortable string
func FromSortable(s string) (ID, error) {
	var id ID
	if err := decode64(s, id[:]); err != nil {
		return ID{}, err
	}
	return id, nil
}
