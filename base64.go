//
//   Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//   Licensed under the Apache License, Version 2.0 (the "License");
//   you may not use this file except in compliance with the License.
//   You may obtain a copy of the License at
//
//       http://www.apache.org/licenses/LICENSE-2.0
//
//   Unless required by applicable law or agreed to in writing, software
//   distributed under the License is distributed on an "AS IS" BASIS,
//   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//   See the License for the specific language governing permissions and
//   limitations under the License.
//

package stamp

import "github.com/pkg/errors"

// alphabet is ordered by ASCII code, encoded strings sort as bytes do
var alphabet []rune = []rune{
	'.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A', 'B', 'C', 'D', 'E',
	'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U',
	'V', 'W', 'X', 'Y', 'Z', '_', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j',
	'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
}

// number of 6-bit cells needed for the bytes, the last cell is zero padded
func size64(n int) int {
	return (n*8 + 5) / 6
}

func encode64(b []byte) string {
	s := make([]rune, size64(len(b)))
	for i := range s {
		s[i] = alphabet[cell(b, i*6)]
	}
	return string(s)
}

// 6 bits starting at bit position at, counting from most significant
func cell(b []byte, at int) byte {
	i := at / 8
	x := uint16(b[i]) << 8
	if i+1 < len(b) {
		x |= uint16(b[i+1])
	}
	return byte(x>>(10-at%8)) & 0x3f
}

func decode64(s string, b []byte) error {
	if len(s) != size64(len(b)) {
		return errors.Wrapf(ErrMalformed, "%q: length %d", s, len(s))
	}

	for i := 0; i < len(s); i++ {
		var v byte
		switch x := s[i]; {
		case x == '.':
			v = 0
		case x >= '0' && x <= '9':
			v = x - '0' + 1
		case x >= 'A' && x <= 'Z':
			v = x - 'A' + 11
		case x == '_':
			v = 37
		case x >= 'a' && x <= 'z':
			v = x - 'a' + 38
		default:
			return errors.Wrapf(ErrMalformed, "%q: invalid char %q", s, x)
		}

		at := i * 6
		x := uint16(v) << (10 - at%8)
		b[at/8] |= byte(x >> 8)
		switch {
		case at/8+1 < len(b):
			b[at/8+1] |= byte(x)
		case byte(x) != 0:
			return errors.Wrapf(ErrMalformed, "%q: non-zero padding", s)
		}
	}

	return nil
}
