// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/receiptd/command/receipt-cli/identity"
	"github.com/bitmark-inc/receiptd/fault"
)

func readPassword(prompt string) (string, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if nil != err {
		return "", err
	}
	defer tty.Close()

	fd := int(tty.Fd())
	oldState, err := terminal.MakeRaw(fd)
	if nil != err {
		return "", err
	}
	defer terminal.Restore(fd, oldState)

	console := terminal.NewTerminal(tty, "")
	return console.ReadPassword(prompt)
}

// ask twice for a new password
func promptNewPassword() (string, error) {
	password, err := readPassword(fmt.Sprintf("Set identity password(length >= %d): ", identity.MinimumPasswordLength))
	if nil != err {
		return "", err
	}

	if len(password) < identity.MinimumPasswordLength {
		return "", fault.ErrInvalidPasswordLength
	}

	verifyPassword, err := readPassword("Verify password: ")
	if nil != err {
		return "", err
	}

	if password != verifyPassword {
		return "", fault.ErrPasswordMismatch
	}

	return password, nil
}

func promptPassword() (string, error) {
	return readPassword("password: ")
}
