// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/receiptd/receiptrecord"
	"github.com/bitmark-inc/receiptd/rpc/ratelimit"
)

// Node - type for RPC calls
type Node struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Start       time.Time
	Version     string
	Connections func() uint64
}

// New - create the RPC object
func New(log *logger.L, limiter *rate.Limiter, start time.Time, version string, connections func() uint64) *Node {
	return &Node{
		Log:         log,
		Limiter:     limiter,
		Start:       start,
		Version:     version,
		Connections: connections,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version        string `json:"version"`
	Uptime         string `json:"uptime"`
	Connections    uint64 `json:"connections"`
	RecordCapacity int    `json:"recordCapacity"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	if nil != node.Connections {
		reply.Connections = node.Connections()
	}
	reply.RecordCapacity = receiptrecord.MaxPackedLength()
	return nil
}
