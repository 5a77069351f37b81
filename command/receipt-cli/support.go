// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/receiptd/account"
	"github.com/bitmark-inc/receiptd/command/receipt-cli/identity"
	"github.com/bitmark-inc/receiptd/command/receipt-cli/rpccalls"
	"github.com/bitmark-inc/receiptd/receiptrecord"
	"github.com/bitmark-inc/receiptd/util"
)

func checkIdentity(name string, s string) (account.Identity, error) {
	if "" == s {
		return account.Identity{}, fmt.Errorf("%s is required", name)
	}
	identity, err := account.IdentityFromBase58(s)
	if nil != err {
		return account.Identity{}, fmt.Errorf("%s: %q  error: %s", name, s, err)
	}
	return identity, nil
}

func checkSlot(s string) (receiptrecord.Slot, error) {
	if "" == s {
		return receiptrecord.Slot{}, fmt.Errorf("slot is required")
	}
	return receiptrecord.SlotFromBase58(s)
}

// describe each file by base name and content hash
func hashFiles(names []string) ([]receiptrecord.File, error) {
	files := make([]receiptrecord.File, 0, len(names))
	for _, name := range names {
		hash, err := util.HashFile(name)
		if nil != err {
			return nil, err
		}
		files = append(files, receiptrecord.File{
			Name: filepath.Base(name),
			Hash: hash,
		})
	}
	return files, nil
}

// load the identity file and decrypt the signing key
func unlockIdentity(m *metadata) (*account.PrivateKey, error) {
	f, err := identity.Load(m.identity)
	if nil != err {
		return nil, err
	}

	password := m.password
	if "" == password {
		password, err = promptPassword()
		if nil != err {
			return nil, err
		}
	}

	return f.Unlock(password)
}

func connect(c *cli.Context) (*rpccalls.Client, *metadata, error) {
	m := c.App.Metadata["config"].(*metadata)

	if m.verbose {
		fmt.Fprintf(m.e, "connecting to: %s\n", m.connect)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return client, m, nil
}
