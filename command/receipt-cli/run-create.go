// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/receiptd/command/receipt-cli/rpccalls"
)

func runCreate(c *cli.Context) error {

	payer, err := checkIdentity("payer", c.String("payer"))
	if nil != err {
		return err
	}

	files, err := hashFiles(c.StringSlice("file"))
	if nil != err {
		return err
	}

	data := &rpccalls.CreateData{
		Payer:       payer,
		TxHash:      c.String("tx"),
		Title:       c.String("title"),
		Description: c.String("description"),
		Files:       files,
	}

	m := c.App.Metadata["config"].(*metadata)
	privateKey, err := unlockIdentity(m)
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Create(privateKey, data)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
