// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receiptrecord

import (
	"crypto/rand"
	"io"

	"github.com/bitmark-inc/receiptd/fault"
	"github.com/bitmark-inc/receiptd/util"
)

// SlotLength - bytes in a slot address
const SlotLength = 32

// Slot - the address of one stored receipt
type Slot [SlotLength]byte

// NewSlot - a random slot address
func NewSlot() (Slot, error) {
	var slot Slot
	_, err := io.ReadFull(rand.Reader, slot[:])
	return slot, err
}

// SlotFromBytes - copy a byte slice into a slot
func SlotFromBytes(buffer []byte) (Slot, error) {
	var slot Slot
	if SlotLength != len(buffer) {
		return slot, fault.ErrInvalidSlotLength
	}
	copy(slot[:], buffer)
	return slot, nil
}

// SlotFromBase58 - decode the text form of a slot
func SlotFromBase58(s string) (Slot, error) {
	buffer := util.FromBase58(s)
	if 0 == len(buffer) {
		return Slot{}, fault.ErrCannotDecodeSlot
	}
	return SlotFromBytes(buffer)
}

// Bytes - slot as a byte slice
func (slot Slot) Bytes() []byte {
	return slot[:]
}

// String - base58 form for use by the fmt package (for %s)
func (slot Slot) String() string {
	return util.ToBase58(slot[:])
}

// GoString - for use by the fmt package (for %#v)
func (slot Slot) GoString() string {
	return "<slot:" + slot.String() + ">"
}

// MarshalText - convert a slot to its base58 JSON form
func (slot Slot) MarshalText() ([]byte, error) {
	return []byte(slot.String()), nil
}

// UnmarshalText - convert base58 JSON text into a slot
func (slot *Slot) UnmarshalText(s []byte) error {
	sl, err := SlotFromBase58(string(s))
	if nil != err {
		return err
	}
	*slot = sl
	return nil
}
