// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receiptrecord

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/receiptd/account"
	"github.com/bitmark-inc/receiptd/fault"
)

// Unpack - turn a byte slice into a receipt
//
// returns the number of bytes consumed; any bytes after the
// timestamp are slot padding and are not examined
func (record Packed) Unpack() (r *Receipt, n int, e error) {

	defer func() {
		if x := recover(); nil != x {
			r = nil
			n = 0
			e = fault.ErrTruncatedRecord
		}
	}()

	if len(record) < kindLength {
		return nil, 0, fault.ErrTruncatedRecord
	}
	if !bytes.Equal(receiptKind[:], record[:kindLength]) {
		return nil, 0, fault.ErrNotReceiptRecord
	}
	n = kindLength

	receipt := &Receipt{}

	creator, err := readIdentity(record, &n)
	if nil != err {
		return nil, 0, err
	}
	receipt.Creator = creator

	payer, err := readIdentity(record, &n)
	if nil != err {
		return nil, 0, err
	}
	receipt.Payer = payer

	if receipt.TxHash, err = readString(record, &n, MaxTxHashLength); nil != err {
		return nil, 0, err
	}
	if receipt.Title, err = readString(record, &n, MaxTitleLength); nil != err {
		return nil, 0, err
	}
	if receipt.Description, err = readString(record, &n, MaxDescriptionLength); nil != err {
		return nil, 0, err
	}

	count, err := readUint32(record, &n)
	if nil != err {
		return nil, 0, err
	}
	if count > MaxFiles {
		return nil, 0, fault.ErrTooManyFilesInRecord
	}
	receipt.Files = make([]File, count)
	for i := range receipt.Files {
		if receipt.Files[i].Name, err = readString(record, &n, MaxFileNameLength); nil != err {
			return nil, 0, err
		}
		if receipt.Files[i].Hash, err = readString(record, &n, MaxFileHashLength); nil != err {
			return nil, 0, err
		}
	}

	if n+timestampLength > len(record) {
		return nil, 0, fault.ErrTruncatedRecord
	}
	receipt.Timestamp = int64(binary.LittleEndian.Uint64(record[n : n+timestampLength]))
	n += timestampLength

	return receipt, n, nil
}

func readIdentity(record Packed, n *int) (account.Identity, error) {
	var identity account.Identity
	if *n+identityLength > len(record) {
		return identity, fault.ErrTruncatedRecord
	}
	copy(identity[:], record[*n:*n+identityLength])
	*n += identityLength
	return identity, nil
}

func readUint32(record Packed, n *int) (uint32, error) {
	if *n+lengthPrefixLength > len(record) {
		return 0, fault.ErrTruncatedRecord
	}
	value := binary.LittleEndian.Uint32(record[*n : *n+lengthPrefixLength])
	*n += lengthPrefixLength
	return value, nil
}

// a length prefixed string that must not exceed maximum bytes
func readString(record Packed, n *int, maximum int) (string, error) {
	length, err := readUint32(record, n)
	if nil != err {
		return "", err
	}
	if length > uint32(maximum) {
		return "", fault.ErrFieldLengthOutOfRange
	}
	end := *n + int(length)
	if end > len(record) {
		return "", fault.ErrTruncatedRecord
	}
	s := record[*n:end]
	if !utf8.Valid(s) {
		return "", fault.ErrInvalidTextInRecord
	}
	*n = end
	return string(s), nil
}
