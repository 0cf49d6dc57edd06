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
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Code is coarse 64-bit identity code, packed timestamp of its allocation
type Code uint64

// minimal pause between codes allocated by same goroutine
const codePause = time.Millisecond

// NewCode allocates identity code. The calling goroutine sleeps at least
// 1 millisecond before reading the clock, so that successive codes from
// the same goroutine land into distinct milliseconds. Codes allocated by
// concurrent goroutines may collide.
func NewCode(clock Chronos) Code {
	time.Sleep(codePause)
	return Code(EncodeTime(clock.T()))
}

// ParseCode decodes identity code from hexadecimal string
func ParseCode(s string) (Code, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "%q: %v", s, err)
	}
	return Code(v), nil
}

// String encodes code as uppercase hexadecimal, at least 2 digits
func (code Code) String() string {
	return fmt.Sprintf("%02X", uint64(code))
}

// Time decodes the allocation instant of code at the given location
func (code Code) Time(loc *time.Location) (time.Time, error) {
	return DecodeTime(uint64(code), loc)
}
