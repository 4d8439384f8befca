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

// split decomposes value hi|lo of given size (in bits) into cells of n bits,
// most significant cell first. The function acts as binary comprehension.
//
//	   size - 64         64
//	|-----------|---------------|
//	^    hi     ^      lo       ^
//	size       64               0
func split(cells []byte, hi, lo, size, n uint64) {
	hilo := uint64(64) // hi | lo division at
	mask := uint64(1<<n) - 1
	i := 0

	for a := size; a >= n; a -= n {
		b := a - n
		switch {
		case b >= hilo:
			cells[i] = byte(hi >> (b - hilo) & mask)
		case a <= hilo:
			cells[i] = byte(lo >> b & mask)
		default:
			suffix := uint64(1<<(a-hilo)) - 1
			cells[i] = byte((hi&suffix)<<(hilo-b) | lo>>b)
		}
		i++
	}
}

// fold composes value hi|lo of given size from cells of n bits.
// The operation is inverse to split.
func fold(cells []byte, size, n uint64) (hi, lo uint64) {
	hilo := uint64(64)
	mask := uint64(1<<n) - 1
	i := 0

	for a := size; a >= n; a -= n {
		b := a - n
		x := uint64(cells[i]) & mask
		switch {
		case b >= hilo:
			hi |= x << (b - hilo)
		case a <= hilo:
			lo |= x << b
		default:
			hi |= x >> (hilo - b)
			lo |= x << b
		}
		i++
	}
	return
}
