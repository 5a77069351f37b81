// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"

	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/receiptd/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursorWithin - initialise a cursor over keys starting with keyPrefix
func (p *PoolHandle) NewFetchCursorWithin(keyPrefix []byte) *FetchCursor {
	return &FetchCursor{
		pool:     p,
		maxRange: *util.BytesPrefix(p.prefixKey(keyPrefix)),
	}
}

// Seek - move cursor to specific key position
//
// a key before the start of the range leaves the cursor unchanged
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	start := cursor.pool.prefixKey(key)
	if bytes.Compare(start, cursor.maxRange.Start) > 0 {
		cursor.maxRange.Start = start
	}
	return cursor
}

// Fetch - return some elements starting from key
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.database {
		return nil, fault.ErrMissingStorage
	}

	iter := poolData.database.NewIterator(&cursor.maxRange, nil)

	results := make([]Element, 0, count)
	n := 0
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		e := Element{
			Key:   dataKey,
			Value: dataValue,
		}
		results = append(results, e)
		n += 1
		if n >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	if n > 0 {
		cursor.maxRange.Start = successor(cursor.pool.prefixKey(results[n-1].Key))
	}
	return results, err
}

// the smallest key that sorts after every key beginning with key
// i.e. key ++ 0x00
func successor(key []byte) []byte {
	next := make([]byte, len(key)+1)
	copy(next, key)
	return next
}
