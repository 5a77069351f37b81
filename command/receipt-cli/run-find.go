// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runFind(c *cli.Context) error {

	txHash := c.String("tx")
	if "" == txHash {
		return fmt.Errorf("transaction hash is required")
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Find(txHash)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
