// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/receiptd/account"
	"github.com/bitmark-inc/receiptd/fault"
	"github.com/bitmark-inc/receiptd/receiptrecord"
)

const (
	timestampLength = 8
	indexKeyLength  = account.IdentityLength + timestampLength + receiptrecord.SlotLength
)

// Entry - a stored receipt and its address
type Entry struct {
	Slot   receiptrecord.Slot
	Packed receiptrecord.Packed
}

// Receipts - the slot store for receipts
type Receipts struct{}

// PutIfAbsent - commit a slot sized buffer to an empty slot
//
// the receipt and all of its index entries are written in a single
// batch while the write lock is held, so of several concurrent calls
// for one slot exactly one succeeds
func (Receipts) PutIfAbsent(slot receiptrecord.Slot, buffer []byte) error {
	if receiptrecord.MaxPackedLength() != len(buffer) {
		return fault.ErrInvalidSlotSize
	}

	r, _, err := receiptrecord.Packed(buffer).Unpack()
	if nil != err {
		return err
	}

	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.database {
		return fault.ErrMissingStorage
	}
	if poolData.readOnly {
		return fault.ErrReadOnly
	}

	key := Pool.Receipts.prefixKey(slot[:])
	found, err := poolData.database.Has(key, nil)
	if nil != err {
		return err
	}
	if found {
		return fault.ErrReceiptAlreadyExists
	}

	value := make([]byte, len(buffer))
	copy(value, buffer)

	batch := new(leveldb.Batch)
	batch.Put(key, value)
	batch.Put(Pool.CreatorIndex.prefixKey(identityIndexKey(r.Creator, r.Timestamp, slot)), []byte{})
	batch.Put(Pool.PayerIndex.prefixKey(identityIndexKey(r.Payer, r.Timestamp, slot)), []byte{})
	batch.Put(Pool.TxHashIndex.prefixKey(txHashIndexKey(r.TxHash, slot)), []byte{})

	err = poolData.database.Write(batch, &ldb_opt.WriteOptions{Sync: true})
	if nil != err {
		return err
	}

	poolData.cache.Set(string(key), value)
	return nil
}

// Get - read the packed receipt stored at a slot
//
// the result is the caller's own copy
func (Receipts) Get(slot receiptrecord.Slot) (receiptrecord.Packed, error) {
	c := currentCache()
	if nil == c || nil == Pool.Receipts {
		return nil, fault.ErrMissingStorage
	}

	key := string(Pool.Receipts.prefixKey(slot[:]))
	if value, found := c.Get(key); found {
		return value, nil
	}

	value := Pool.Receipts.Get(slot[:])
	if nil == value {
		return nil, fault.ErrReceiptNotFound
	}

	cached := make([]byte, len(value))
	copy(cached, value)
	c.Set(key, cached)
	return value, nil
}

func currentCache() Cache {
	poolData.RLock()
	defer poolData.RUnlock()
	return poolData.cache
}

// ByCreator - receipts made by one creator in time order
//
// start is the cursor returned by a previous call or nil; the cursor
// returned is nil when the list is exhausted
func (r Receipts) ByCreator(creator account.Identity, start []byte, count int) ([]Entry, []byte, error) {
	return r.byIdentity(Pool.CreatorIndex, creator, start, count)
}

// ByPayer - receipts naming one payer in time order
func (r Receipts) ByPayer(payer account.Identity, start []byte, count int) ([]Entry, []byte, error) {
	return r.byIdentity(Pool.PayerIndex, payer, start, count)
}

func (r Receipts) byIdentity(pool *PoolHandle, identity account.Identity, start []byte, count int) ([]Entry, []byte, error) {
	if nil == pool {
		return nil, nil, fault.ErrMissingStorage
	}
	if count <= 0 {
		return nil, nil, fault.ErrInvalidCount
	}
	if 0 != len(start) && indexKeyLength-account.IdentityLength != len(start) {
		return nil, nil, fault.ErrInvalidCursor
	}

	cursor := pool.NewFetchCursorWithin(identity[:])
	if 0 != len(start) {
		cursor.Seek(append(identity.Bytes(), start...))
	}

	// one extra to detect the end of the list
	elements, err := cursor.Fetch(count + 1)
	if nil != err {
		return nil, nil, err
	}

	var next []byte
	if len(elements) > count {
		next = elements[count].Key[account.IdentityLength:]
		elements = elements[:count]
	}

	entries, err := r.fetch(elements)
	if nil != err {
		return nil, nil, err
	}
	return entries, next, nil
}

// ByTxHash - receipts referring to one transaction
func (r Receipts) ByTxHash(txHash string, count int) ([]Entry, error) {
	if nil == Pool.TxHashIndex {
		return nil, fault.ErrMissingStorage
	}
	if len(txHash) > receiptrecord.MaxTxHashLength {
		return nil, fault.ErrTxHashTooLong
	}

	cursor := Pool.TxHashIndex.NewFetchCursorWithin(txHashIndexKey(txHash, receiptrecord.Slot{})[:1+len(txHash)])
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}
	return r.fetch(elements)
}

// index keys all end with the slot
func (r Receipts) fetch(elements []Element) ([]Entry, error) {
	entries := make([]Entry, 0, len(elements))
	for _, e := range elements {
		slot, err := receiptrecord.SlotFromBytes(e.Key[len(e.Key)-receiptrecord.SlotLength:])
		if nil != err {
			return nil, err
		}
		packed, err := r.Get(slot)
		if nil != err {
			return nil, err
		}
		entries = append(entries, Entry{
			Slot:   slot,
			Packed: packed,
		})
	}
	return entries, nil
}

// identity ++ timestamp ++ slot
//
// flipping the sign bit makes big endian byte order match the
// numeric order of signed timestamps
func identityIndexKey(identity account.Identity, timestamp int64, slot receiptrecord.Slot) []byte {
	key := make([]byte, indexKeyLength)
	copy(key, identity[:])
	binary.BigEndian.PutUint64(key[account.IdentityLength:], uint64(timestamp)^(1<<63))
	copy(key[account.IdentityLength+timestampLength:], slot[:])
	return key
}

// length ++ tx hash ++ slot
func txHashIndexKey(txHash string, slot receiptrecord.Slot) []byte {
	key := make([]byte, 0, 1+len(txHash)+receiptrecord.SlotLength)
	key = append(key, byte(len(txHash)))
	key = append(key, txHash...)
	return append(key, slot[:]...)
}
