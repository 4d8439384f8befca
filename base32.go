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

package xid

// alphabet of textual form, ordered as symbol values
const alphabet = "0123456789abcdefghijklmnopqrstuv"

// sentinel of decoding table for bytes outside of alphabet
const invalid = 0xff

var decoding = func() (table [256]byte) {
	for i := range table {
		table[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		table[alphabet[i]] = byte(i)
	}
	return
}()

func encode32(dst []byte, id ID) {
	hi := uint64(id[0])<<24 | uint64(id[1])<<16 | uint64(id[2])<<8 | uint64(id[3])
	lo := uint64(0)
	for _, b := range id[4:] {
		lo = lo<<8 | uint64(b)
	}

	// 96 bits are shifted towards the head, padding is the tail of last symbol
	split(dst, hi<<padBits|lo>>(64-padBits), lo<<padBits, encodedBits, symbolBits)

	for i, x := range dst {
		dst[i] = alphabet[x]
	}
}

// decode32 returns index of first offending byte or -1
func decode32(id *ID, src []byte) int {
	var cells [encodedLen]byte
	for i, c := range src {
		x := decoding[c]
		if x == invalid {
			return i
		}
		cells[i] = x
	}

	hi, lo := fold(cells[:], encodedBits, symbolBits)
	if lo&(1<<padBits-1) != 0 {
		// non canonical form, padding bits are set
		return encodedLen - 1
	}

	hi, lo = hi>>padBits, lo>>padBits|hi<<(64-padBits)

	id[0], id[1], id[2], id[3] = byte(hi>>24), byte(hi>>16), byte(hi>>8), byte(hi)
	for i := rawLen - 1; i >= 4; i-- {
		id[i] = byte(lo)
		lo >>= 8
	}
	return -1
}
