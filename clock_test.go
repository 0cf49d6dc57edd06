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

package stamp_test

import (
	"bytes"
	"os"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/stamp"
)

func TestWithClock(t *testing.T) {
	tm := time.Date(2023, time.June, 15, 10, 30, 45, 0, time.UTC)
	c := stamp.NewClock(
		stamp.WithClock(func() time.Time { return tm }),
	)

	it.Then(t).Should(
		it.True(c.T().Equal(tm)),
	)
}

func TestWithClockLocal(t *testing.T) {
	c := stamp.NewClock(
		stamp.WithClockLocal(),
	)
	a := c.T()
	time.Sleep(2 * time.Millisecond)
	b := c.T()

	it.Then(t).Should(
		it.True(a.Before(b)),
		it.Equal(a.Location(), time.Local),
	)
}

func TestWithLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	c := stamp.NewClock(
		stamp.WithLocation(loc),
	)

	it.Then(t).Should(
		it.Equal(c.T().Location(), loc),
	)
}

func TestWithLocationFromEnv(t *testing.T) {
	os.Setenv("CONFIG_STAMP_TZ", "Asia/Shanghai")
	defer os.Unsetenv("CONFIG_STAMP_TZ")

	c := stamp.NewClock(
		stamp.WithLocationFromEnv(),
	)

	it.Then(t).Should(
		it.Equal(c.T().Location().String(), "Asia/Shanghai"),
	)
}

func TestWithLocationFromEnvUnknown(t *testing.T) {
	os.Setenv("CONFIG_STAMP_TZ", "Nowhere/Atlantis")
	defer os.Unsetenv("CONFIG_STAMP_TZ")

	c := stamp.NewClock(
		stamp.WithLocation(time.UTC),
		stamp.WithLocationFromEnv(),
	)

	it.Then(t).Should(
		it.Equal(c.T().Location(), time.UTC),
	)
}

func TestWithRandom(t *testing.T) {
	c := stamp.NewClock()
	a := c.R()
	b := c.R()

	it.Then(t).Should(
		it.True(a != b),
		it.Equal(a[6]>>4, 4),
		it.Equal(a[8]>>6, 2),
	)
}

func TestWithRandomReader(t *testing.T) {
	c := stamp.NewClock(
		stamp.WithRandom(bytes.NewReader(entropy)),
	)
	r := c.R()

	it.Then(t).Should(
		it.True(bytes.Equal(r[:], entropy)),
	)
}

func TestWithRandomFailure(t *testing.T) {
	c := stamp.NewClock(
		stamp.WithRandom(bytes.NewReader(nil)),
	)

	defer func() {
		it.Then(t).ShouldNot(
			it.Nil(recover()),
		)
	}()

	c.R()
}

func TestWithMock(t *testing.T) {
	c := stamp.NewClockMock()
	id, err := stamp.NewID(c)

	it.Then(t).Should(
		it.Nil(err),
		it.True(c.T().Equal(time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC))),
		it.Equal(c.R(), [16]byte{}),
		it.Equal(id, stamp.ID{}),
	)
}
