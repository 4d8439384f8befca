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
	"errors"
	"fmt"
)

const (
	// size of binary identifier
	rawLen = 12
	// size of textual identifier
	encodedLen = 20

	// bits per symbol of textual form
	symbolBits = 5
	// bits of textual form, 96 bits of value and padding
	encodedBits = encodedLen * symbolBits
	// spare bits at the tail of textual form
	padBits = encodedBits - rawLen*8

	// counter is 24-bit value
	counterMask = 0xffffff
)

/*
ID is globally unique 96-bit identifier

	   32 bit         24 bit      16 bit     24 bit
	|-----------|-------------|---------|-------------|
	    ⟨𝒕⟩           ⟨𝒎⟩          ⟨𝒑⟩          ⟨𝒔⟩
*/
type ID [rawLen]byte

// Errors returned by decoders
var (
	ErrInvalidID        = errors.New("xid: invalid id")
	ErrInvalidLength    = fmt.Errorf("%w: invalid length", ErrInvalidID)
	ErrInvalidCharacter = fmt.Errorf("%w: invalid character", ErrInvalidID)
)
