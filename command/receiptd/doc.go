// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// receiptd - the receipt ledger daemon
//
// serves Receipts and Node JSON-RPC services over TLS, storing each
// receipt as a fixed capacity record in a LevelDB database
//
// usage:
//   receiptd --config-file=receiptd.conf gen-rpc-cert
//   receiptd --config-file=receiptd.conf start
package main
