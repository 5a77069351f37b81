// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package receipt - create a receipt exactly once
//
// a receipt is validated, given a buffer of the fixed slot size,
// populated with the caller's fields plus the creator and timestamp
// taken from the authority and then handed to a store that refuses to
// overwrite an existing slot
package receipt
