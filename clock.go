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
	"crypto/rand"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

// Chronos is an abstraction of wall clock and entropy used by library.
type Chronos interface {
	// Wall clock instant ⟨𝒕⟩ at the clock's location
	T() time.Time
	// Random 128-bit base ⟨𝒓⟩ of identifier
	R() [16]byte
}

// Clock is global default instance of clock
//
// If the application needs own default clock e.g. UTC one, it declares own
// clock and passes it to NewID & NewCode functions.
var Clock Chronos = NewClock()

// Wall Clock Type, the default one
type clock struct {
	location *time.Location
	ticker   func() time.Time
	entropy  func() [16]byte
}

func (clock clock) T() time.Time { return clock.ticker().In(clock.location) }
func (clock clock) R() [16]byte  { return clock.entropy() }

// Creates instance of clock
func NewClock(opts ...Config) Chronos {
	clock := &clock{}
	defopt := []Config{WithClockLocal(), WithRandom(rand.Reader)}

	for _, opt := range append(defopt, opts...) {
		opt(clock)
	}
	return clock
}

// Create mock instance of clock, it is frozen at the epoch 1900-01-01 UTC
// and returns zero entropy.
func NewClockMock(opts ...Config) Chronos {
	clock := &clock{
		location: time.UTC,
		ticker:   func() time.Time { return epoch },
		entropy:  func() [16]byte { return [16]byte{} },
	}

	for _, opt := range opts {
		opt(clock)
	}
	return clock
}

// Config option of default clock behavior.
// Config options allows to define custom strategies to generate
// ⟨𝒕⟩ timestamp or ⟨𝒓⟩ random base.
type Config func(*clock)

// WithClock configures a custom wall clock function
func WithClock(ticker func() time.Time) Config {
	return func(clock *clock) {
		clock.ticker = ticker
	}
}

// WithClockLocal configures time.Now() at local time zone as wall clock
func WithClockLocal() Config {
	return func(clock *clock) {
		clock.ticker = time.Now
		clock.location = time.Local
	}
}

// WithLocation configures time zone used to derive calendar components
func WithLocation(loc *time.Location) Config {
	return func(clock *clock) {
		if loc != nil {
			clock.location = loc
		}
	}
}

// WithLocationFromEnv configures time zone using env variable.
//
// CONFIG_STAMP_TZ - defines IANA time zone name, e.g. Asia/Shanghai.
// Unknown or empty name leaves location unchanged.
func WithLocationFromEnv() Config {
	return func(clock *clock) {
		name := os.Getenv("CONFIG_STAMP_TZ")
		if name == "" {
			return
		}

		if loc, err := time.LoadLocation(name); err == nil {
			clock.location = loc
		}
	}
}

// WithRandom configures random version 4 UUID drawn from the reader as
// ⟨𝒓⟩ random base. The clock panics if reader fails.
func WithRandom(r io.Reader) Config {
	return func(clock *clock) {
		clock.entropy = func() [16]byte {
			id, err := uuid.NewRandomFromReader(r)
			if err != nil {
				panic(err.Error())
			}
			return id
		}
	}
}

// WithEntropy configures a custom generator of ⟨𝒓⟩ random base
func WithEntropy(entropy func() [16]byte) Config {
	return func(clock *clock) {
		clock.entropy = entropy
	}
}
