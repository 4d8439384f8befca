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

/*
Package xid implements globally unique, sortable 96-bit identifiers for Golang
applications. The identifier is allocated without central authority or
coordination with other nodes, it is roughly sortable by allocation time and
it has a compact, fixed-size textual form.

# Identity Schema

A fixed size of 96-bit is used to implement identity schema

	   32 bit         24 bit      16 bit     24 bit
	|-----------|-------------|---------|-------------|
	    ⟨𝒕⟩           ⟨𝒎⟩          ⟨𝒑⟩          ⟨𝒔⟩

↣ ⟨𝒕⟩ is 32-bit timestamp, seconds since Unix epoch. The value wraps in 2106.

↣ ⟨𝒎⟩ is 24-bit machine fingerprint, first 3 bytes of md5 digest of the host
name. Random bytes are used if the host name is not available.

↣ ⟨𝒑⟩ is 16-bit process fingerprint, low bits of the process id. The process
with pid 1 (e.g. container root process) uses crc32 of its cpuset instead.

↣ ⟨𝒔⟩ is 24-bit monotonic counter seeded with random value at startup.
It is incremented atomically for each identifier and wraps silently.

All fields are big-endian, so byte order of identifiers equals the order of
⟨𝒕, 𝒎, 𝒑, 𝒔⟩ tuples.

# Textual Form

The identifier is encoded as 20 characters of the base32 alphabet

	0123456789abcdefghijklmnopqrstuv

Bits are read most-significant first, five at a time; the last character
carries 4 padding bits. The alphabet is ordered, therefore string order of
identifiers equals their binary order. The format is wire compatible with
other xid implementations.

# Usage

	id := xid.New()
	id.String()      // 9m4e2mr0ui3e8a215n4g

	ctx := xid.NewContext(xid.WithMachineFromEnv())
	id = ctx.New()
*/
package xid
