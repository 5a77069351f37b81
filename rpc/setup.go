// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/receiptd/fault"
	"github.com/bitmark-inc/receiptd/rpc/certificate"
	"github.com/bitmark-inc/receiptd/rpc/listeners"
	"github.com/bitmark-inc/receiptd/rpc/receipts"
	"github.com/bitmark-inc/receiptd/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener
	limiters server.Limiters

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the RPC listeners
func Initialise(configuration *listeners.RPCConfiguration, version string, store receipts.Store, readOnly bool) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Load(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", tlsName, fingerprint)

	// the listener is created after the server so connection counts
	// are read through this indirection
	var listener listeners.Listener
	connections := func() uint64 {
		if nil == listener {
			return 0
		}
		return listener.Connections()
	}

	s, limiters := server.Create(
		log,
		version,
		store,
		readOnly,
		configuration.RateLimit,
		configuration.RateBurst,
		connections,
	)

	listener, err = listeners.NewRPC(configuration, log, s, tlsConfig)
	if nil != err {
		return err
	}
	err = listener.Serve()
	if nil != err {
		listener.Close()
		return err
	}

	globalData.listener = listener
	globalData.limiters = limiters

	// all data initialised
	globalData.initialised = true

	return nil
}

// SetRateLimit - change the limits of the running services
func SetRateLimit(limit float64, burst int) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Infof("rate limit: %f  burst: %d", limit, burst)
	globalData.limiters.Update(limit, burst)
	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Close()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
