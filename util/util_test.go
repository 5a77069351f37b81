// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/receiptd/util"
)

func TestBase58(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0xfe, 0xff}
	s := util.ToBase58(data)
	if !bytes.Equal(data, util.FromBase58(s)) {
		t.Errorf("base58 round trip failed for: %x -> %q", data, s)
	}

	assert.Equal(t, 0, len(util.FromBase58("0OIl")), "invalid alphabet should decode empty")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/x.conf", util.EnsureAbsolute("/data", "x.conf"), "relative path")
	assert.Equal(t, "/etc/x.conf", util.EnsureAbsolute("/data", "/etc/x.conf"), "absolute path")
}

func TestHashFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "receipt-util")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "a.txt")
	err = ioutil.WriteFile(name, []byte("abc"), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	assert.True(t, util.EnsureFileExists(name), "file should exist")

	hash, err := util.HashFile(name)
	assert.Nil(t, err, "hash error")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hash, "wrong sha256")

	_, err = util.HashFile(filepath.Join(dir, "missing"))
	assert.NotNil(t, err, "missing file should error")
}
