// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - recently written or read receipts
//
// receipts are never modified so entries only need to expire; Get
// returns a copy so callers never share the cached array
type Cache interface {
	Get(string) ([]byte, bool)
	Set(string, []byte)
	Clear()
}

const (
	defaultExpiration = 10 * time.Minute
	cleanupInterval   = 2 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	value := obj.([]byte)
	result := make([]byte, len(value))
	copy(result, value)
	return result, true
}

func (c *dbCache) Set(key string, value []byte) {
	c.cache.Set(key, value, cache.DefaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
