// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/receiptd/fault"
	"github.com/bitmark-inc/receiptd/util"
)

// IdentityLength - bytes in a packed identity
const IdentityLength = ed25519.PublicKeySize

// Identity - an ed25519 public key naming a principal
//
// stored as the raw 32 bytes in records
// represented as base58 text for JSON encoding
type Identity [IdentityLength]byte

// IdentityFromBytes - copy a byte slice into an identity
func IdentityFromBytes(buffer []byte) (Identity, error) {
	var identity Identity
	if IdentityLength != len(buffer) {
		return identity, fault.ErrInvalidIdentityLength
	}
	copy(identity[:], buffer)
	return identity, nil
}

// IdentityFromBase58 - decode the text form of an identity
func IdentityFromBase58(s string) (Identity, error) {
	buffer := util.FromBase58(s)
	if 0 == len(buffer) {
		return Identity{}, fault.ErrCannotDecodeIdentity
	}
	return IdentityFromBytes(buffer)
}

// Bytes - identity as a byte slice
func (identity Identity) Bytes() []byte {
	return identity[:]
}

// IsZero - true if no identity has been set
func (identity Identity) IsZero() bool {
	return Identity{} == identity
}

// CheckSignature - verify an ed25519 signature made by this identity
func (identity Identity) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(identity[:]), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// String - base58 encoding for use by the fmt package (for %s)
func (identity Identity) String() string {
	return util.ToBase58(identity[:])
}

// GoString - for use by the fmt package (for %#v)
func (identity Identity) GoString() string {
	return "<identity:" + identity.String() + ">"
}

// MarshalText - convert an identity to its base58 JSON form
func (identity Identity) MarshalText() ([]byte, error) {
	return []byte(identity.String()), nil
}

// UnmarshalText - convert base58 JSON text into an identity
func (identity *Identity) UnmarshalText(s []byte) error {
	id, err := IdentityFromBase58(string(s))
	if nil != err {
		return err
	}
	*identity = id
	return nil
}
