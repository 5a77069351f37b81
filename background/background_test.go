// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/receiptd/background"
)

type counter struct {
	started  chan struct{}
	count    uint64
	stopped  bool
	argument interface{}
}

func (c *counter) Run(args interface{}, shutdown <-chan struct{}) {
	c.argument = args
	close(c.started)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		atomic.AddUint64(&c.count, 1)
		time.Sleep(time.Millisecond)
	}
	c.stopped = true
}

func newCounter() *counter {
	return &counter{
		started: make(chan struct{}),
	}
}

func TestStartStop(t *testing.T) {
	c1 := newCounter()
	c2 := newCounter()

	p := background.Start(background.Processes{c1, c2}, "argument")

	<-c1.started
	<-c2.started
	p.Stop()

	assert.True(t, c1.stopped, "first stopped")
	assert.True(t, c2.stopped, "second stopped")
	assert.Equal(t, "argument", c1.argument, "argument passed")
	assert.True(t, atomic.LoadUint64(&c1.count) > 0, "first ran")

	// stopping again is harmless
	p.Stop()
}

func TestEmpty(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()

	var none *background.T
	none.Stop()
}
