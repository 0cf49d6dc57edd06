/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

/*
Package stamp implements bit-packed calendar timestamps and time-ordered
identifiers for Golang applications.

# Packed timestamp

A calendar timestamp with millisecond precision is packed into 64-bit
unsigned integer, each component occupies own bit field

	  16 bit     12 bit  4 bit  5 bit  5 bit  6 bit  6 bit   10 bit
	|---------|--------|------|------|------|------|------|----------|
	   zero      ⟨𝒀⟩     ⟨𝑴⟩    ⟨𝑫⟩    ⟨𝒉⟩    ⟨𝒎⟩    ⟨𝒔⟩      ⟨𝒎𝒔⟩

Packed values compare as the timestamps do. Encode does not validate its
input, components outside of field width are representable but
meaningless. Decode validates the calendar and fails with
ErrInvalidCalendarFields instead.

# Sequential identifier

ID is 128-bit "comb" identifier: random UUID with the leading 6 bytes
replaced by day-count since 1900-01-01 and time of day in 1/300 second ticks.

	  2 byte    4 byte           10 byte
	|-------|-----------|----------------------|
	  ⟨𝒅⟩        ⟨𝒕⟩              ⟨𝒓⟩

Identifiers sort chronologically as big-endian bytes, which keeps indexes
of relational databases append-only.

# Identity code

Code is packed timestamp of allocation instant. The allocation pauses the
calling goroutine for 1 millisecond, codes from the same goroutine are
strictly increasing. Global uniqueness is not guaranteed.

# Clock

Both identifiers read wall clock and entropy through Chronos. The default
Clock uses local time and crypto/rand, NewClockMock and Config options
make the generators deterministic.
*/
package stamp
