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

package xid_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/xid"
)

func TestEncode(t *testing.T) {
	for _, tc := range vectors {
		var buf [20]byte
		tc.id.Encode(buf[:])

		it.Then(t).Should(
			it.Equal(string(buf[:]), tc.text),
			it.Equal(tc.id.String(), tc.text),
		)
	}
}

func TestEncodeBufferSize(t *testing.T) {
	for _, size := range []int{0, 12, 19, 21} {
		size := size
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			defer func() {
				it.Then(t).ShouldNot(
					it.True(recover() == nil),
				)
			}()

			xid.NilID().Encode(make([]byte, size))
		})
	}
}

func TestDecode(t *testing.T) {
	for _, tc := range vectors {
		var a xid.ID
		err := a.Decode([]byte(tc.text))
		b, errb := xid.FromString(tc.text)

		it.Then(t).Should(
			it.Nil(err),
			it.Nil(errb),
			it.Equal(a, tc.id),
			it.Equal(b, tc.id),
		)
	}
}

func TestDecodeInvalidCharacter(t *testing.T) {
	for _, text := range []string{
		"9m4e2mr0ui3e8a215n4w",
		"9M4E2MR0UI3E8A215N4G",
		"9m4e2mr0-i3e8a215n4g",
		"9m4e2mr0ui3e8a215n4\x00",
		"\xff0000000000000000000",
		// padding bits are set
		"vvvvvvvvvvvvvvvvvvvv",
		"0000000000000000000h",
	} {
		a := vectors[0].id
		err := a.Decode([]byte(text))

		it.Then(t).Should(
			it.True(errors.Is(err, xid.ErrInvalidCharacter)),
			it.True(errors.Is(err, xid.ErrInvalidID)),
			it.Equal(a, vectors[0].id),
		)
	}
}

func TestDecodeInvalidLength(t *testing.T) {
	for _, text := range []string{"", "9m4e2mr0ui3e8a215n4", "9m4e2mr0ui3e8a215n4g0"} {
		_, err := xid.FromString(text)

		it.Then(t).Should(
			it.True(errors.Is(err, xid.ErrInvalidLength)),
			it.True(errors.Is(err, xid.ErrInvalidID)),
		)
	}
}

func TestBytes(t *testing.T) {
	a := vectors[0].id
	b, err := xid.FromBytes(a.Bytes())
	_, errs := xid.FromBytes([]byte{1, 2, 3})

	it.Then(t).Should(
		it.Nil(err),
		it.Equal(b, a),
		it.Equal(len(a.Bytes()), 12),
		it.True(errors.Is(errs, xid.ErrInvalidLength)),
	)
}

func TestText(t *testing.T) {
	text, err := vectors[0].id.MarshalText()

	var a xid.ID
	erra := a.UnmarshalText(text)

	it.Then(t).Should(
		it.Nil(err),
		it.Nil(erra),
		it.Equal(string(text), vectors[0].text),
		it.Equal(a, vectors[0].id),
	)
}

func TestJSONCodec(t *testing.T) {
	type MyStruct struct {
		ID xid.ID `json:"id"`
	}

	val := MyStruct{vectors[0].id}
	b, err := json.Marshal(val)

	var x MyStruct
	errx := json.Unmarshal(b, &x)

	it.Then(t).Should(
		it.Nil(err),
		it.Nil(errx),
		it.Equal(string(b), `{"id":"9m4e2mr0ui3e8a215n4g"}`),
		it.Equal(x.ID, val.ID),
	)
}

func TestJSONCodecNull(t *testing.T) {
	type MyStruct struct {
		ID xid.ID `json:"id"`
	}

	b, err := json.Marshal(MyStruct{})

	x := MyStruct{vectors[0].id}
	errx := json.Unmarshal([]byte(`{"id":null}`), &x)

	it.Then(t).Should(
		it.Nil(err),
		it.Nil(errx),
		it.Equal(string(b), `{"id":null}`),
		it.True(x.ID.IsNil()),
	)
}

func TestJSONCodecInvalid(t *testing.T) {
	var a xid.ID

	it.Then(t).Should(
		it.True(errors.Is(json.Unmarshal([]byte(`"9m4e2mr0ui3e8a215n4w"`), &a), xid.ErrInvalidCharacter)),
		it.True(json.Unmarshal([]byte(`12`), &a) != nil),
	)
}

func TestSQLValue(t *testing.T) {
	v, err := vectors[0].id.Value()
	z, errz := xid.NilID().Value()

	it.Then(t).Should(
		it.Nil(err),
		it.Nil(errz),
		it.Equal(v.(string), vectors[0].text),
		it.True(z == nil),
	)
}

func TestSQLScan(t *testing.T) {
	for _, val := range []any{
		vectors[0].text,
		[]byte(vectors[0].text),
		vectors[0].id[:],
	} {
		var a xid.ID
		err := a.Scan(val)

		it.Then(t).Should(
			it.Nil(err),
			it.Equal(a, vectors[0].id),
		)
	}

	a := vectors[0].id
	err := a.Scan(nil)
	errx := a.Scan(42)

	it.Then(t).Should(
		it.Nil(err),
		it.True(a.IsNil()),
		it.True(errors.Is(errx, xid.ErrInvalidID)),
	)
}
