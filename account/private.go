// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"io"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/receiptd/fault"
	"github.com/bitmark-inc/receiptd/util"
)

// seed text format
//   header ++ 32 byte ed25519 seed ++ first 4 bytes of SHA3-256(header ++ seed)
var seedHeader = []byte{0x5a, 0xfe, 0x02}

const (
	seedLength     = ed25519.SeedSize
	checksumLength = 4
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	privateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh random key
func NewPrivateKey() (*PrivateKey, error) {
	seed := make([]byte, seedLength)
	if _, err := io.ReadFull(rand.Reader, seed); nil != err {
		return nil, err
	}
	return PrivateKeyFromSeed(seed)
}

// PrivateKeyFromSeed - regenerate a key from its 32 byte seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if seedLength != len(seed) {
		return nil, fault.ErrInvalidPrivateKey
	}
	return &PrivateKey{
		privateKey: ed25519.NewKeyFromSeed(seed),
	}, nil
}

// PrivateKeyFromBase58Seed - decode the text form produced by Seed()
func PrivateKeyFromBase58Seed(s string) (*PrivateKey, error) {
	buffer := util.FromBase58(s)
	if len(seedHeader)+seedLength+checksumLength != len(buffer) {
		return nil, fault.ErrInvalidPrivateKey
	}
	if !bytes.Equal(seedHeader, buffer[:len(seedHeader)]) {
		return nil, fault.ErrInvalidPrivateKey
	}

	checksumStart := len(buffer) - checksumLength
	checksum := sha3.Sum256(buffer[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], buffer[checksumStart:]) {
		return nil, fault.ErrInvalidPrivateKey
	}
	return PrivateKeyFromSeed(buffer[len(seedHeader):checksumStart])
}

// Identity - the public half of the key
func (privateKey *PrivateKey) Identity() Identity {
	var identity Identity
	copy(identity[:], privateKey.privateKey.Public().(ed25519.PublicKey))
	return identity
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.privateKey, message)
}

// Seed - checksummed base58 text form of the seed
func (privateKey *PrivateKey) Seed() string {
	buffer := make([]byte, 0, len(seedHeader)+seedLength+checksumLength)
	buffer = append(buffer, seedHeader...)
	buffer = append(buffer, privateKey.privateKey.Seed()...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}
