// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - password protected signing key file
//
// the file is JSON holding the public identity in clear and the
// base58 seed encrypted with secretbox under an argon2id key
package identity

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/receiptd/account"
	"github.com/bitmark-inc/receiptd/fault"
	"github.com/bitmark-inc/receiptd/util"
)

const (
	// MinimumPasswordLength - shortest accepted password
	MinimumPasswordLength = 8
)

// File - identity file data format
type File struct {
	Description string           `json:"description"`
	Identity    account.Identity `json:"identity"`
	Data        string           `json:"data"`
	Salt        string           `json:"salt"`
}

// New - create a new random key and encrypt it with the password
func New(description string, password string) (*File, *account.PrivateKey, error) {
	if len(password) < MinimumPasswordLength {
		return nil, nil, fault.ErrInvalidPasswordLength
	}

	privateKey, err := account.NewPrivateKey()
	if nil != err {
		return nil, nil, err
	}

	salt, err := MakeSalt()
	if nil != err {
		return nil, nil, err
	}

	data, err := encryptData(privateKey.Seed(), generateKey(password, salt))
	if nil != err {
		return nil, nil, err
	}

	f := &File{
		Description: description,
		Identity:    privateKey.Identity(),
		Data:        data,
		Salt:        salt.String(),
	}
	return f, privateKey, nil
}

// Unlock - check the password and recover the signing key
func (f *File) Unlock(password string) (*account.PrivateKey, error) {
	salt := new(Salt)
	err := salt.UnmarshalText([]byte(f.Salt))
	if nil != err || "" == f.Data {
		return nil, fault.ErrNotPrivateKey
	}

	seed, err := decryptData(f.Data, generateKey(password, salt))
	if nil != err {
		return nil, fault.ErrWrongPassword
	}

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return nil, err
	}

	// a file edited to show another identity is rejected
	if privateKey.Identity() != f.Identity {
		return nil, fault.ErrNotPrivateKey
	}
	return privateKey, nil
}

// Load - read an identity file
func Load(fileName string) (*File, error) {
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	identity := &File{}
	err = json.NewDecoder(f).Decode(identity)
	if nil != err {
		return nil, err
	}
	return identity, nil
}

// Save - write a new identity file, never replacing an existing one
func (f *File) Save(fileName string) error {
	if util.EnsureFileExists(fileName) {
		return fault.ErrKeyFileExists
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if nil != err {
		return err
	}
	data = append(data, '\n')

	return ioutil.WriteFile(fileName, data, 0600)
}
