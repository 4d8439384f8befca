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
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

/*
Encode writes textual form of identifier into dst.
The destination must be exactly 20 bytes, other size is a programming error.
*/
func (id ID) Encode(dst []byte) {
	if len(dst) != encodedLen {
		panic(fmt.Errorf("xid: encode requires %d bytes buffer, got %d", encodedLen, len(dst)))
	}

	encode32(dst, id)
}

/*
Decode reads identifier from its textual form. It fails if the input is not
exactly 20 bytes or contains a character outside of alphabet. The identifier
is not modified on failure.
*/
func (id *ID) Decode(src []byte) error {
	if len(src) != encodedLen {
		return fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(src))
	}

	if at := decode32(id, src); at != -1 {
		return fmt.Errorf("%w: %q at %d", ErrInvalidCharacter, src[at], at)
	}

	return nil
}

// String encodes identifier to lexicographically sortable string
func (id ID) String() string {
	var text [encodedLen]byte
	encode32(text[:], id)
	return string(text[:])
}

// FromString decodes identifier from lexicographically sortable string
func FromString(s string) (id ID, err error) {
	err = id.Decode([]byte(s))
	return
}

// Bytes returns binary form of identifier
func (id ID) Bytes() []byte {
	return id[:]
}

// FromBytes decodes identifier from its binary form
func FromBytes(b []byte) (id ID, err error) {
	if len(b) != rawLen {
		return id, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(b))
	}

	copy(id[:], b)
	return id, nil
}

// MarshalText implements encoding.TextMarshaler
func (id ID) MarshalText() ([]byte, error) {
	text := make([]byte, encodedLen)
	encode32(text, id)
	return text, nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *ID) UnmarshalText(text []byte) error {
	return id.Decode(text)
}

/*
MarshalJSON encodes identifier to lexicographically sortable JSON string.
The nil identifier is encoded as null.
*/
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsNil() {
		return []byte("null"), nil
	}

	text := make([]byte, encodedLen+2)
	text[0], text[encodedLen+1] = '"', '"'
	encode32(text[1:encodedLen+1], id)
	return text, nil
}

// UnmarshalJSON decodes lexicographically sortable JSON string to identifier
func (id *ID) UnmarshalJSON(b []byte) (err error) {
	var val *string
	if err = json.Unmarshal(b, &val); err != nil {
		return
	}

	if val == nil {
		*id = NilID()
		return
	}

	return id.Decode([]byte(*val))
}

// Value implements driver.Valuer, identifier is stored as string
func (id ID) Value() (driver.Value, error) {
	if id.IsNil() {
		return nil, nil
	}

	return id.String(), nil
}

/*
Scan implements sql.Scanner. It accepts textual form as string or bytes,
binary form as 12 bytes and null.
*/
func (id *ID) Scan(value any) error {
	switch val := value.(type) {
	case string:
		return id.Decode([]byte(val))
	case []byte:
		if len(val) == rawLen {
			copy(id[:], val)
			return nil
		}
		return id.Decode(val)
	case nil:
		*id = NilID()
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidID, value)
	}
}
