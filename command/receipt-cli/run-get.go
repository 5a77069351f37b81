// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runGet(c *cli.Context) error {

	slot, err := checkSlot(c.String("slot"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Get(slot)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
