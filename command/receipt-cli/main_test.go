// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/receiptd/account"
	"github.com/bitmark-inc/receiptd/rpc/certificate"
	"github.com/bitmark-inc/receiptd/rpc/fixtures"
	"github.com/bitmark-inc/receiptd/rpc/listeners"
	"github.com/bitmark-inc/receiptd/rpc/receipts"
	"github.com/bitmark-inc/receiptd/rpc/server"
	"github.com/bitmark-inc/receiptd/storage"
)

const (
	testPassword = "receipt-cli password"
)

type testDaemon struct {
	directory string
	connect   string
	listener  listeners.Listener
}

func startDaemon(t *testing.T) *testDaemon {
	fixtures.SetupTestLogger()
	log := logger.New(fixtures.LogCategory)

	directory, err := ioutil.TempDir("", "receipt-cli-")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}

	err = storage.Initialise(filepath.Join(directory, "test"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	cer, key := fixtures.Certificate()
	tlsConfig, _, err := certificate.Get(log, "test", cer, key)
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}

	s, _ := server.Create(log, "cli-test", storage.Receipts{}, false, 1000, 1000, nil)
	l, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
	}, log, s, tlsConfig)
	if nil != err {
		t.Fatalf("listener error: %s", err)
	}
	err = l.Serve()
	if nil != err {
		t.Fatalf("serve error: %s", err)
	}

	return &testDaemon{
		directory: directory,
		connect:   l.Addresses()[0].String(),
		listener:  l,
	}
}

func (d *testDaemon) stop() {
	d.listener.Close()
	storage.Finalise()
	os.RemoveAll(d.directory)
	fixtures.TeardownTestLogger()
}

// run one command line and return its standard output
func (d *testDaemon) run(t *testing.T, arguments ...string) ([]byte, error) {
	app := newApp()
	stdout := &bytes.Buffer{}
	app.Writer = stdout
	app.ErrWriter = ioutil.Discard

	args := []string{
		"receipt-cli",
		"--connect", d.connect,
		"--identity", filepath.Join(d.directory, "identity.json"),
		"--password", testPassword,
	}
	args = append(args, arguments...)
	err := app.Run(args)
	return stdout.Bytes(), err
}

func TestCommands(t *testing.T) {
	d := startDaemon(t)
	defer d.stop()

	output, err := d.run(t, "generate", "--description", "shop")
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	var generated generateReply
	err = json.Unmarshal(output, &generated)
	assert.Nil(t, err, "generate output")
	assert.Equal(t, "shop", generated.Description, "description")

	_, err = d.run(t, "generate")
	assert.NotNil(t, err, "identity file is not replaced")

	attachment := filepath.Join(d.directory, "invoice.txt")
	err = ioutil.WriteFile(attachment, []byte("abc"), 0600)
	assert.Nil(t, err, "write attachment")

	payer := account.Identity{0x42}
	output, err = d.run(t, "create",
		"--payer", payer.String(),
		"--tx", "0xfeed",
		"--title", "coffee",
		"--file", attachment,
	)
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	var created receipts.CreateReply
	err = json.Unmarshal(output, &created)
	assert.Nil(t, err, "create output")

	output, err = d.run(t, "get", "--slot", created.Slot.String())
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	var got receipts.GetReply
	err = json.Unmarshal(output, &got)
	assert.Nil(t, err, "get output")
	assert.Equal(t, generated.Identity, got.Receipt.Creator, "creator")
	assert.Equal(t, payer, got.Receipt.Payer, "payer")
	assert.Equal(t, "coffee", got.Receipt.Title, "title")
	if assert.Equal(t, 1, len(got.Receipt.Files), "files") {
		assert.Equal(t, "invoice.txt", got.Receipt.Files[0].Name, "file name")
		assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", got.Receipt.Files[0].Hash, "file hash")
	}

	// default list is the creator in the identity file
	output, err = d.run(t, "list")
	assert.Nil(t, err, "list")
	var listed receipts.ListReply
	err = json.Unmarshal(output, &listed)
	assert.Nil(t, err, "list output")
	assert.Equal(t, 1, len(listed.Receipts), "listed by creator")

	output, err = d.run(t, "list", "--payer", payer.String())
	assert.Nil(t, err, "list by payer")
	err = json.Unmarshal(output, &listed)
	assert.Nil(t, err, "list output")
	assert.Equal(t, 1, len(listed.Receipts), "listed by payer")

	_, err = d.run(t, "list", "--payer", payer.String(), "--creator", payer.String())
	assert.NotNil(t, err, "both selectors")

	output, err = d.run(t, "find", "--tx", "0xfeed")
	assert.Nil(t, err, "find")
	var found receipts.FindReply
	err = json.Unmarshal(output, &found)
	assert.Nil(t, err, "find output")
	assert.Equal(t, 1, len(found.Receipts), "found")

	output, err = d.run(t, "info")
	assert.Nil(t, err, "info")
	assert.Contains(t, string(output), "cli-test", "version")
}

func TestCreateArgumentErrors(t *testing.T) {
	d := startDaemon(t)
	defer d.stop()

	_, err := d.run(t, "create")
	assert.NotNil(t, err, "missing payer")

	_, err = d.run(t, "create", "--payer", "not-base58-0OIl")
	assert.NotNil(t, err, "bad payer")

	_, err = d.run(t, "create", "--payer", account.Identity{1}.String(), "--file", filepath.Join(d.directory, "missing"))
	assert.NotNil(t, err, "missing file")

	_, err = d.run(t, "create", "--payer", account.Identity{1}.String())
	assert.NotNil(t, err, "no identity file")

	_, err = d.run(t, "get")
	assert.NotNil(t, err, "missing slot")

	_, err = d.run(t, "find")
	assert.NotNil(t, err, "missing tx hash")
}

func TestHashFiles(t *testing.T) {
	directory, err := ioutil.TempDir("", "receipt-cli-hash-")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(directory)

	name := filepath.Join(directory, "empty.bin")
	err = ioutil.WriteFile(name, nil, 0600)
	assert.Nil(t, err, "write")

	files, err := hashFiles([]string{name})
	assert.Nil(t, err, "hash")
	if assert.Equal(t, 1, len(files), "count") {
		assert.Equal(t, "empty.bin", files[0].Name, "name")
		assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", files[0].Hash, "empty hash")
	}

	files, err = hashFiles(nil)
	assert.Nil(t, err, "no files")
	assert.Equal(t, 0, len(files), "empty")
}
