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

import (
	"bytes"
	"encoding/binary"
	"sort"
	"time"
)

/*
FromParts packs identifier from its fractions. Only low 16 bits of process
and low 24 bits of counter are used.

	   32 bit         24 bit      16 bit     24 bit
	|-----------|-------------|---------|-------------|
	    ⟨𝒕⟩           ⟨𝒎⟩          ⟨𝒑⟩          ⟨𝒔⟩
*/
func FromParts(ts uint32, machine [3]byte, process uint32, counter uint32) (id ID) {
	binary.BigEndian.PutUint32(id[0:4], ts)

	id[4] = machine[0]
	id[5] = machine[1]
	id[6] = machine[2]

	id[7] = byte(process >> 8)
	id[8] = byte(process)

	id[9] = byte(counter >> 16)
	id[10] = byte(counter >> 8)
	id[11] = byte(counter)

	return
}

// NilID returns "zero" identifier, all bits are 0
func NilID() ID { return ID{} }

// IsNil checks if identifier is "zero"
func (id ID) IsNil() bool { return id == ID{} }

// IsZero is alias of IsNil
func (id ID) IsZero() bool { return id.IsNil() }

/*******************************************************************************

Lenses of identifier

*******************************************************************************/

// Timestamp returns ⟨𝒕⟩ fraction, seconds since Unix epoch
func (id ID) Timestamp() uint32 {
	return binary.BigEndian.Uint32(id[0:4])
}

// Time returns ⟨𝒕⟩ fraction as time with seconds precision
func (id ID) Time() time.Time {
	return time.Unix(int64(id.Timestamp()), 0)
}

// Machine returns ⟨𝒎⟩ machine fingerprint
func (id ID) Machine() [3]byte {
	return [3]byte{id[4], id[5], id[6]}
}

// Process returns ⟨𝒑⟩ process fingerprint
func (id ID) Process() uint16 {
	return binary.BigEndian.Uint16(id[7:9])
}

// Counter returns ⟨𝒔⟩ value of counter at the time of identifier creation
func (id ID) Counter() uint32 {
	return uint32(id[9])<<16 | uint32(id[10])<<8 | uint32(id[11])
}

/*******************************************************************************

Ordering of identifiers

*******************************************************************************/

/*
Compare identifiers, the result is 0 if a == b, -1 if a < b and +1 if a > b.
The order is defined by ⟨𝒕, 𝒎, 𝒑, 𝒔⟩ tuple.
*/
func Compare(a, b ID) int {
	return bytes.Compare(a[:], b[:])
}

// Compare identifier with other one, see Compare
func (id ID) Compare(other ID) int {
	return Compare(id, other)
}

// Equal returns true if identifiers are equal
func Equal(a, b ID) bool {
	return a == b
}

// Before returns true if identifier a is allocated before b
func Before(a, b ID) bool {
	return Compare(a, b) == -1
}

// After returns true if identifier a is allocated after b
func After(a, b ID) bool {
	return Compare(a, b) == 1
}

type sorter []ID

func (s sorter) Len() int           { return len(s) }
func (s sorter) Less(i, j int) bool { return Before(s[i], s[j]) }
func (s sorter) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Sort sorts identifiers in-place by allocation order
func Sort(ids []ID) {
	sort.Sort(sorter(ids))
}
