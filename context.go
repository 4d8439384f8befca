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
	"crypto/md5"
	"crypto/rand"
	"hash/crc32"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// EnvMachineID is environment variable used by WithMachineFromEnv
const EnvMachineID = "CONFIG_XID_MACHINE_ID"

// the alternate identity of init process
const cpusetPath = "/proc/1/cpuset"

/*
Context is the identity of identifiers allocator. The machine and process
fingerprints are computed once, when context is created. The counter is the
only mutable state, it is shared by all goroutines using the context.

Application creates the context once and shares it, or uses Default one.
*/
type Context struct {
	machine [3]byte
	process uint32
	counter atomic.Uint32
	clock   func() time.Time
}

// Default is global, lazily created context
var Default = sync.OnceValue(func() *Context { return NewContext() })

// New generates identifier using Default context
func New() ID { return Default().New() }

// NewContext creates a new instance of identity context
func NewContext(opts ...Config) *Context {
	c := &config{
		machine:    machineFromHost,
		process:    processFromOS,
		seed:       seedRandom,
		hostname:   os.Hostname,
		pid:        os.Getpid,
		altProcess: readCpuset,
		random:     rand.Reader,
		clock:      time.Now,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	ctx := &Context{
		machine: c.machine(c),
		process: c.process(c),
		clock:   c.clock,
	}
	ctx.counter.Store(c.seed(c) & counterMask)

	c.logger.Debug("xid context is created",
		zap.Binary("machine", ctx.machine[:]),
		zap.Uint32("process", ctx.process),
	)

	return ctx
}

// Machine returns ⟨𝒎⟩ machine fingerprint
func (ctx *Context) Machine() [3]byte { return ctx.machine }

// Process returns ⟨𝒑⟩ process fingerprint, only low 16 bits are used by identifiers
func (ctx *Context) Process() uint32 { return ctx.process }

// Next increments the counter, returns its 24-bit value
func (ctx *Context) Next() uint32 {
	return ctx.counter.Add(1) & counterMask
}

// New generates identifier at current time
func (ctx *Context) New() ID {
	return ctx.NewWithTime(ctx.clock())
}

// NewWithTime generates identifier at given time
func (ctx *Context) NewWithTime(t time.Time) ID {
	return FromParts(uint32(t.Unix()), ctx.machine, ctx.process, ctx.Next())
}

/*******************************************************************************

Config options of identity context

*******************************************************************************/

type config struct {
	machine func(*config) [3]byte
	process func(*config) uint32
	seed    func(*config) uint32

	hostname   func() (string, error)
	pid        func() int
	altProcess func() ([]byte, error)
	random     io.Reader
	clock      func() time.Time
	logger     *zap.Logger
}

// Config option of identity context. Options define custom strategies to
// derive ⟨𝒎⟩ and ⟨𝒑⟩ fingerprints or inject sources of identity.
type Config func(*config)

// WithMachineID explicitly configures ⟨𝒎⟩ machine fingerprint
func WithMachineID(id [3]byte) Config {
	return func(c *config) {
		c.machine = func(*config) [3]byte { return id }
	}
}

// WithMachineFromHost configures ⟨𝒎⟩ machine fingerprint from host name, default one
func WithMachineFromHost() Config {
	return func(c *config) {
		c.machine = machineFromHost
	}
}

// WithMachineFromEnv configures ⟨𝒎⟩ machine fingerprint using env variable.
//
// CONFIG_XID_MACHINE_ID - defines machine id as a string
func WithMachineFromEnv() Config {
	return func(c *config) {
		c.machine = machineFromEnv
	}
}

// WithHostname configures source of host name
func WithHostname(hostname func() (string, error)) Config {
	return func(c *config) {
		c.hostname = hostname
	}
}

// WithProcessID explicitly configures ⟨𝒑⟩ process fingerprint
func WithProcessID(id uint32) Config {
	return func(c *config) {
		c.process = func(*config) uint32 { return id }
	}
}

// WithPid configures source of process id
func WithPid(pid func() int) Config {
	return func(c *config) {
		c.pid = pid
	}
}

// WithAltProcessIdentity configures alternate identity of process with pid 1.
// The nil source disables it.
func WithAltProcessIdentity(source func() ([]byte, error)) Config {
	return func(c *config) {
		c.altProcess = source
	}
}

// WithCounter explicitly configures initial value of ⟨𝒔⟩ counter
func WithCounter(seed uint32) Config {
	return func(c *config) {
		c.seed = func(*config) uint32 { return seed }
	}
}

// WithRandom configures source of random bytes
func WithRandom(random io.Reader) Config {
	return func(c *config) {
		c.random = random
	}
}

// WithClock configures source of wall-clock time
func WithClock(clock func() time.Time) Config {
	return func(c *config) {
		c.clock = clock
	}
}

// WithLogger configures logger
func WithLogger(logger *zap.Logger) Config {
	return func(c *config) {
		c.logger = logger
	}
}

/*******************************************************************************

Derivation of fingerprints

*******************************************************************************/

func machineFromHost(c *config) (id [3]byte) {
	host, err := c.hostname()
	if err != nil || host == "" {
		c.logger.Warn("host name is not available, machine id is random", zap.Error(err))
		c.randomBytes(id[:])
		return
	}

	return fingerprint(host)
}

func machineFromEnv(c *config) [3]byte {
	val := os.Getenv(EnvMachineID)
	if val == "" {
		c.logger.Debug("machine id is not defined by env", zap.String("env", EnvMachineID))
		return machineFromHost(c)
	}

	return fingerprint(val)
}

func fingerprint(s string) (id [3]byte) {
	hash := md5.Sum([]byte(s))
	copy(id[:], hash[:])
	return
}

func processFromOS(c *config) uint32 {
	pid := uint32(c.pid())
	if pid != 1 || c.altProcess == nil {
		return pid
	}

	// containers runs many processes with pid 1
	alt, err := c.altProcess()
	if err != nil || len(alt) <= 1 {
		c.logger.Debug("alternate identity of process is not available", zap.Error(err))
		return pid
	}

	return crc32.ChecksumIEEE(alt)
}

func readCpuset() ([]byte, error) {
	return os.ReadFile(cpusetPath)
}

func seedRandom(c *config) uint32 {
	var b [3]byte
	c.randomBytes(b[:])
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// randomBytes never fails, it falls back to clock entropy
func (c *config) randomBytes(b []byte) {
	_, err := io.ReadFull(c.random, b)
	if err == nil {
		return
	}

	c.logger.Warn("random source failed, using clock", zap.Error(err))
	seed := uint64(time.Now().UnixNano()) ^ uint64(c.pid())<<32
	for i := range b {
		b[i] = byte(seed >> (8 * (i % 8)))
	}
}
