// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// receipt-cli - command line client for receiptd
//
// keeps one password protected signing identity in a JSON file and
// talks JSON-RPC over TLS to a receiptd
package main
