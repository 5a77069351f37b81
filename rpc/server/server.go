// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/receiptd/rpc/node"
	"github.com/bitmark-inc/receiptd/rpc/ratelimit"
	"github.com/bitmark-inc/receiptd/rpc/receipts"
)

// Limiters - the rate limiter of each registered service
type Limiters struct {
	Receipts *rate.Limiter
	Node     *rate.Limiter
}

// Update - apply new limits to every service
func (l Limiters) Update(limit float64, burst int) {
	ratelimit.Update(l.Receipts, limit, burst)
	ratelimit.Update(l.Node, limit, burst)
}

// Create - an RPC server with all services registered
func Create(
	log *logger.L,
	version string,
	store receipts.Store,
	readOnly bool,
	limit float64,
	burst int,
	connections func() uint64,
) (*rpc.Server, Limiters) {

	start := time.Now().UTC()
	limiters := Limiters{
		Receipts: ratelimit.New(limit, burst),
		Node:     ratelimit.New(limit, burst),
	}

	clock := func() time.Time {
		return time.Now().UTC()
	}

	server := rpc.NewServer()

	_ = server.Register(receipts.New(log, limiters.Receipts, store, clock, readOnly))
	_ = server.Register(node.New(log, limiters.Node, start, version, connections))

	return server, limiters
}
