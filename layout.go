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

// Field is a contiguous run of bits within packed timestamp reserved for
// one calendar component.
type Field struct {
	Name   string
	Offset uint64
	Width  uint64
}

// Packed timestamp layout
//
//	  16 bit     12 bit  4 bit  5 bit  5 bit  6 bit  6 bit   10 bit
//	|---------|--------|------|------|------|------|------|----------|
//	   zero      ⟨𝒀⟩     ⟨𝑴⟩    ⟨𝑫⟩    ⟨𝒉⟩    ⟨𝒎⟩    ⟨𝒔⟩      ⟨𝒎𝒔⟩
//	64       48       36     32     27     22     16     10          0
var (
	Year        = Field{Name: "year", Offset: 36, Width: 12}
	Month       = Field{Name: "month", Offset: 32, Width: 4}
	Day         = Field{Name: "day", Offset: 27, Width: 5}
	Hour        = Field{Name: "hour", Offset: 22, Width: 5}
	Minute      = Field{Name: "minute", Offset: 16, Width: 6}
	Second      = Field{Name: "second", Offset: 10, Width: 6}
	Millisecond = Field{Name: "millisecond", Offset: 0, Width: 10}
)

// Layout lists fields from most to least significant
var Layout = []Field{Year, Month, Day, Hour, Minute, Second, Millisecond}

// Mask returns 64-bit constant with Width one-bits positioned at Offset
func (f Field) Mask() uint64 {
	return (uint64(1)<<f.Width - 1) << f.Offset
}

// Max returns the largest value that fits the field
func (f Field) Max() uint64 {
	return uint64(1)<<f.Width - 1
}

// Get extracts the field from packed value
func (f Field) Get(v uint64) uint64 {
	return (v & f.Mask()) >> f.Offset
}

// Put shifts x into field position. The value is not truncated, bits
// above Width overflow into more significant fields.
func (f Field) Put(x uint64) uint64 {
	return x << f.Offset
}
