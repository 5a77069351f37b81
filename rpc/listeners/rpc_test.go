// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/receiptd/fault"
	"github.com/bitmark-inc/receiptd/rpc/certificate"
	"github.com/bitmark-inc/receiptd/rpc/fixtures"
	"github.com/bitmark-inc/receiptd/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)

	s := rpc.NewServer()
	err := s.Register(Add{})
	if nil != err {
		t.Fatalf("register with error: %s", err)
	}

	cer, key := fixtures.Certificate()
	tlsConfig, _, err := certificate.Get(log, "test", cer, key)
	if nil != err {
		t.Fatalf("get certificate with error: %s", err)
	}

	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
	}

	l, err := listeners.NewRPC(&con, log, s, tlsConfig)
	if nil != err {
		t.Fatalf("new rpc listener error: %s", err)
	}

	err = l.Serve()
	if nil != err {
		t.Fatalf("serve error: %s", err)
	}
	defer l.Close()

	addresses := l.Addresses()
	if 1 != len(addresses) {
		t.Fatalf("address count: %d", len(addresses))
	}

	conn, err := tls.Dial("tcp", addresses[0].String(), &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}

	client := jsonrpc.NewClient(conn)
	defer client.Close()

	var reply int
	err = client.Call("Add.Add", &AddArg{A: 1, B: 2}, &reply)
	assert.Nil(t, err, "wrong call")
	assert.Equal(t, 3, reply, "wrong reply")
	assert.Equal(t, uint64(1), l.Connections(), "wrong connection count")
}

func TestNewRPCInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)

	items := []struct {
		name          string
		configuration listeners.RPCConfiguration
		err           error
	}{
		{"no connections", listeners.RPCConfiguration{MaximumConnections: 0, Listen: []string{"127.0.0.1:2150"}}, fault.ErrMissingParameters},
		{"no listen", listeners.RPCConfiguration{MaximumConnections: 5}, fault.ErrMissingParameters},
		{"bad address", listeners.RPCConfiguration{MaximumConnections: 5, Listen: []string{"localhost:2150"}}, fault.ErrInvalidListenAddress},
		{"empty address", listeners.RPCConfiguration{MaximumConnections: 5, Listen: []string{""}}, fault.ErrInvalidListenAddress},
	}

	for _, item := range items {
		_, err := listeners.NewRPC(&item.configuration, log, rpc.NewServer(), &tls.Config{})
		assert.Equal(t, item.err, err, item.name)
	}

	// wildcard and IPv6 forms are accepted
	c := listeners.RPCConfiguration{MaximumConnections: 5, Listen: []string{"*:2150", "[::1]:2150"}}
	_, err := listeners.NewRPC(&c, log, rpc.NewServer(), &tls.Config{})
	assert.Nil(t, err, "wildcard listen")
}
