// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/receiptd/rpc"
)

// applies the rate limits of a changed configuration file
type reloader struct {
	log        *logger.L
	fileName   string
	setLimit   func(limit float64, burst int) error
	channels   WatcherChannel
	lastLimit  float64
	lastBurst  int
	configured bool
}

func newReloader(log *logger.L, fileName string, channels WatcherChannel) *reloader {
	return &reloader{
		log:      log,
		fileName: fileName,
		setLimit: rpc.SetRateLimit,
		channels: channels,
	}
}

// Run - background process re-reading the configuration after each change event
func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return
		case <-r.channels.change:
			r.reload()
		case <-r.channels.remove:
			r.log.Warnf("configuration: %q removed, keeping current settings", r.fileName)
		}
	}
}

func (r *reloader) reload() {
	options, err := getConfiguration(r.fileName)
	if nil != err {
		r.log.Errorf("configuration: %q reload error: %s", r.fileName, err)
		return
	}

	limit := options.ClientRPC.RateLimit
	burst := options.ClientRPC.RateBurst
	if r.configured && limit == r.lastLimit && burst == r.lastBurst {
		r.log.Debug("rate limits unchanged")
		return
	}

	err = r.setLimit(limit, burst)
	if nil != err {
		r.log.Errorf("set rate limit error: %s", err)
		return
	}
	r.lastLimit = limit
	r.lastBurst = burst
	r.configured = true
}
