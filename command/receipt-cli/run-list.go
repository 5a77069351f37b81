// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/receiptd/command/receipt-cli/identity"
	"github.com/bitmark-inc/receiptd/command/receipt-cli/rpccalls"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	data := &rpccalls.ListData{
		Start: c.String("start"),
		Count: c.Int("count"),
	}

	creator := c.String("creator")
	payer := c.String("payer")

	switch {
	case "" != creator && "" != payer:
		return fmt.Errorf("only one of creator or payer can be given")

	case "" != payer:
		p, err := checkIdentity("payer", payer)
		if nil != err {
			return err
		}
		data.Payer = &p

	case "" != creator:
		cr, err := checkIdentity("creator", creator)
		if nil != err {
			return err
		}
		data.Creator = &cr

	default:
		// the public identity is stored in clear so no password is needed
		f, err := identity.Load(m.identity)
		if nil != err {
			return err
		}
		data.Creator = &f.Identity
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.List(data)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
