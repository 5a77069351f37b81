// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package receiptrecord - fixed capacity binary layout of a receipt
//
// a packed receipt is:
//
//   kind         8 bytes    first 8 bytes of SHA-256("account:Receipt")
//   creator      32 bytes   ed25519 public key
//   payer        32 bytes   ed25519 public key
//   tx hash      4 byte little-endian length ++ at most 128 bytes
//   title        4 byte little-endian length ++ at most 64 bytes
//   description  4 byte little-endian length ++ at most 256 bytes
//   files        4 byte little-endian count (at most 5) ++ count × file
//   timestamp    8 byte little-endian signed seconds since the epoch
//
// and each file is:
//
//   name         4 byte little-endian length ++ at most 64 bytes
//   hash         4 byte little-endian length ++ at most 64 bytes
//
// every field at its bound gives the slot size returned by MaxPackedLength
package receiptrecord
