// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/receiptd/storage"
)

// common test setup routines

// configure for testing
func setup(t *testing.T) string {
	directory, err := ioutil.TempDir("", "receiptd-storage-")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}

	err = logger.Initialise(logger.Configuration{
		Directory: directory,
		File:      "test.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	if nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}

	err = storage.Initialise(filepath.Join(directory, "test"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return directory
}

// post test cleanup
func teardown(directory string) {
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(directory)
}
