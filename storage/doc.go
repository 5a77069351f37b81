// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk receipt store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. slot         = 32 byte slot address
// 4. identity     = 32 byte ed25519 public key
// 5. timestamp    = receipt timestamp as big endian uint64 with the sign bit flipped
// 6. tx hash      = one byte length ++ tx hash bytes
//
// Receipts:
//
//   R ++ slot                          - stored receipt
//                                        data: packed receipt padded to the full slot size
//
// Indexes:
//
//   C ++ creator ++ timestamp ++ slot  - receipts by creator in time order
//                                        data: empty
//   P ++ payer ++ timestamp ++ slot    - receipts by payer in time order
//                                        data: empty
//   X ++ tx hash ++ slot               - receipts by transaction reference
//                                        data: empty
//
// Testing:
//   Z ++ key                           - testing data
package storage
