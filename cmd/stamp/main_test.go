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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/stamp"
	"github.com/pkg/errors"
)

func run(args ...string) (string, string, error) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEncode(t *testing.T) {
	out, _, err := run("encode", "--tz", "UTC", "2023-06-15T10:30:45.5Z")

	it.Then(t).Should(
		it.Nil(err),
		it.Equal(out, "139047328462324 0x7E767A9EB5F4\n"),
	)
}

func TestDecode(t *testing.T) {
	for _, v := range []string{"139047328462324", "0x7E767A9EB5F4"} {
		out, _, err := run("decode", "--tz", "UTC", v)

		it.Then(t).Should(
			it.Nil(err),
			it.Equal(out, "2023-06-15T10:30:45.500Z\n"),
		)
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, log, err := run("decode", "--tz", "UTC", "0")
	_, _, errM := run("decode", "--tz", "UTC", "0xZZ")

	it.Then(t).Should(
		it.True(errors.Is(err, stamp.ErrInvalidCalendarFields)),
		it.True(strings.Contains(log, "command failed")),
		it.True(errors.Is(errM, stamp.ErrMalformed)),
	)
}

func TestID(t *testing.T) {
	out, _, err := run("id", "-n", "3")
	ids := strings.Fields(out)

	it.Then(t).Should(
		it.Nil(err),
		it.Equal(len(ids), 3),
	)

	for _, s := range ids {
		_, err := stamp.ParseID(s)
		it.Then(t).Should(it.Nil(err))
	}
}

func TestIDSortable(t *testing.T) {
	out, _, err := run("id", "--sortable")
	id, errS := stamp.FromSortable(strings.TrimSpace(out))

	it.Then(t).Should(
		it.Nil(err),
		it.Nil(errS),
		it.True(!stamp.Equal(id, stamp.ID{})),
	)
}

func TestCode(t *testing.T) {
	out, _, err := run("code", "-n", "2")
	codes := strings.Fields(out)

	it.Then(t).Should(
		it.Nil(err),
		it.Equal(len(codes), 2),
	)

	a, errA := stamp.ParseCode(codes[0])
	b, errB := stamp.ParseCode(codes[1])

	it.Then(t).Should(
		it.Nil(errA),
		it.Nil(errB),
		it.True(a < b),
	)
}

func TestUnknownTimeZone(t *testing.T) {
	_, _, err := run("code", "--tz", "Nowhere/Atlantis")

	it.Then(t).ShouldNot(
		it.Nil(err),
	)
}
