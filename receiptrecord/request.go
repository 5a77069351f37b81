// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receiptrecord

import (
	"github.com/bitmark-inc/receiptd/account"
)

// Request - the fields a creator signs to authorise a create
type Request struct {
	Slot        Slot
	Creator     account.Identity
	Payer       account.Identity
	TxHash      string
	Title       string
	Description string
	Files       []File
}

// Pack - the canonical message to sign
//
// same field encoding as a receipt with its own kind, the slot
// added and no timestamp
func (request *Request) Pack() (Packed, error) {
	r := Receipt{
		TxHash:      request.TxHash,
		Title:       request.Title,
		Description: request.Description,
		Files:       request.Files,
	}
	if err := r.check(); nil != err {
		return nil, err
	}

	message := make(Packed, 0, kindLength+SlotLength+maxPackedLength)
	message = append(message, requestKind[:]...)
	message = append(message, request.Slot[:]...)
	message = appendIdentity(message, request.Creator)
	message = appendIdentity(message, request.Payer)
	message = appendString(message, request.TxHash)
	message = appendString(message, request.Title)
	message = appendString(message, request.Description)
	return appendFiles(message, request.Files), nil
}
