// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC over TLS for creating and reading receipts
//
// services:
//
//   Receipts.Create  - store a receipt signed by its creator
//   Receipts.Get     - read the receipt at a slot
//   Receipts.List    - receipts of a creator or payer in time order
//   Receipts.Find    - receipts that refer to a transaction
//   Node.Info        - version, uptime and connection count
package rpc
