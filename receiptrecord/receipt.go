// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receiptrecord

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/bitmark-inc/receiptd/account"
)

// field bounds in bytes
const (
	kindLength         = 8
	identityLength     = account.IdentityLength
	lengthPrefixLength = 4
	timestampLength    = 8

	MaxTxHashLength      = 128
	MaxTitleLength       = 64
	MaxDescriptionLength = 256
	MaxFileNameLength    = 64
	MaxFileHashLength    = 64
	MaxFiles             = 5
)

const (
	maxFileLength = (lengthPrefixLength + MaxFileNameLength) +
		(lengthPrefixLength + MaxFileHashLength)

	maxPackedLength = kindLength +
		identityLength + // creator
		identityLength + // payer
		lengthPrefixLength + MaxTxHashLength +
		lengthPrefixLength + MaxTitleLength +
		lengthPrefixLength + MaxDescriptionLength +
		lengthPrefixLength + MaxFiles*maxFileLength +
		timestampLength
)

// MaxPackedLength - the number of bytes to reserve for any receipt
func MaxPackedLength() int {
	return maxPackedLength
}

// tags written at the start of packed data
var (
	receiptKind = kind("account:Receipt")
	requestKind = kind("request:CreateReceipt")
)

func kind(name string) [kindLength]byte {
	var k [kindLength]byte
	digest := sha256.Sum256([]byte(name))
	copy(k[:], digest[:kindLength])
	return k
}

// Kind - the discriminator that starts every packed receipt
func Kind() []byte {
	k := receiptKind
	return k[:]
}

// File - one attached file descriptor
type File struct {
	Name string `json:"name"`
	Hash string `json:"hash"`
}

// Receipt - the stored record
type Receipt struct {
	Creator     account.Identity `json:"creator"`
	Payer       account.Identity `json:"payer"`
	TxHash      string           `json:"txHash"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Files       []File           `json:"files"`
	Timestamp   int64            `json:"timestamp"`
}

// Packed - packed records are just a byte slice
type Packed []byte

// MarshalText - convert packed data to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	buffer := make([]byte, size)
	hex.Encode(buffer, record)
	return buffer, nil
}

// UnmarshalText - convert hex JSON text to packed data
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	buffer := make([]byte, size)
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*record = buffer[:byteCount]
	return nil
}
