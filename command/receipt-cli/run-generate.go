// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/receiptd/account"
	"github.com/bitmark-inc/receiptd/command/receipt-cli/identity"
)

type generateReply struct {
	File        string           `json:"file"`
	Description string           `json:"description"`
	Identity    account.Identity `json:"identity"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	password := m.password
	if "" == password {
		var err error
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	}

	f, _, err := identity.New(c.String("description"), password)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "saving identity: %s\n", f.Identity)
	}

	err = f.Save(m.identity)
	if nil != err {
		return err
	}

	return printJson(m.w, generateReply{
		File:        m.identity,
		Description: f.Description,
		Identity:    f.Identity,
	})
}
