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
	"time"

	"github.com/pkg/errors"
)

// Timestamp is calendar timestamp with millisecond precision
type Timestamp struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// FromTime converts time to calendar components in the time's location
func FromTime(t time.Time) Timestamp {
	return Timestamp{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}
}

// Time builds time in the given location. It fails with
// ErrInvalidCalendarFields if components are not a real calendar date.
// A wall clock time skipped by a daylight saving transition in loc (e.g.
// 02:30 on a spring-forward day) is not an error, time.Date shifts it.
func (t Timestamp) Time(loc *time.Location) (time.Time, error) {
	if err := t.validate(); err != nil {
		return time.Time{}, err
	}

	if loc == nil {
		loc = time.Local
	}

	return time.Date(
		t.Year, time.Month(t.Month), t.Day,
		t.Hour, t.Minute, t.Second, t.Millisecond*int(time.Millisecond),
		loc,
	), nil
}

func (t Timestamp) validate() error {
	switch {
	case t.Year < 0 || uint64(t.Year) > Year.Max():
		return errors.Wrapf(ErrInvalidCalendarFields, "year %d", t.Year)
	case t.Month < 1 || t.Month > 12:
		return errors.Wrapf(ErrInvalidCalendarFields, "month %d", t.Month)
	case t.Day < 1 || t.Day > daysIn(t.Year, t.Month):
		return errors.Wrapf(ErrInvalidCalendarFields, "day %d of %04d-%02d", t.Day, t.Year, t.Month)
	case t.Hour < 0 || t.Hour > 23:
		return errors.Wrapf(ErrInvalidCalendarFields, "hour %d", t.Hour)
	case t.Minute < 0 || t.Minute > 59:
		return errors.Wrapf(ErrInvalidCalendarFields, "minute %d", t.Minute)
	case t.Second < 0 || t.Second > 59:
		return errors.Wrapf(ErrInvalidCalendarFields, "second %d", t.Second)
	case t.Millisecond < 0 || t.Millisecond > 999:
		return errors.Wrapf(ErrInvalidCalendarFields, "millisecond %d", t.Millisecond)
	}
	return nil
}

// day 0 of the next month is the last day of this one
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Encode packs calendar timestamp into 64-bit integer.
//
// Components are not validated. Each one is shifted into its field and
// OR-ed into the result, a value wider than its field overflows into
// neighbour fields. Such values are representable but meaningless,
// Decode reports them as ErrInvalidCalendarFields.
func Encode(t Timestamp) uint64 {
	return Year.Put(uint64(t.Year)) |
		Month.Put(uint64(t.Month)) |
		Day.Put(uint64(t.Day)) |
		Hour.Put(uint64(t.Hour)) |
		Minute.Put(uint64(t.Minute)) |
		Second.Put(uint64(t.Second)) |
		Millisecond.Put(uint64(t.Millisecond))
}

// EncodeTime packs time using its calendar components in own location
func EncodeTime(t time.Time) uint64 {
	return Encode(FromTime(t))
}

// Decode unpacks 64-bit integer into calendar timestamp. Bits 48..63 are
// ignored.
func Decode(v uint64) (Timestamp, error) {
	t := Timestamp{
		Year:        int(Year.Get(v)),
		Month:       int(Month.Get(v)),
		Day:         int(Day.Get(v)),
		Hour:        int(Hour.Get(v)),
		Minute:      int(Minute.Get(v)),
		Second:      int(Second.Get(v)),
		Millisecond: int(Millisecond.Get(v)),
	}

	if err := t.validate(); err != nil {
		return Timestamp{}, errors.WithMessagef(err, "decode %#x", v)
	}

	return t, nil
}

// DecodeTime unpacks 64-bit integer into time at the given location.
// Wall clock times that do not exist in loc are shifted as Timestamp.Time
// does.
func DecodeTime(v uint64, loc *time.Location) (time.Time, error) {
	t, err := Decode(v)
	if err != nil {
		return time.Time{}, err
	}

	return t.Time(loc)
}
