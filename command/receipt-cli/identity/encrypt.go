// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/receiptd/fault"
)

// argon2id parameters
const (
	keyIterations  = 5
	keyMemory      = 1 << 16 // KiB
	keyParallelism = 4
	keyLength      = 32

	nonceLength = 24

	minimumDataLength = 32
	maximumDataLength = 16384
)

func generateKey(password string, salt *Salt) *[keyLength]byte {
	hash := argon2.IDKey([]byte(password), salt.Bytes(), keyIterations, keyMemory, keyParallelism, keyLength)

	var secretKey [keyLength]byte
	copy(secretKey[:], hash)
	return &secretKey
}

// encrypt a string and convert to hex
func encryptData(data string, secretKey *[keyLength]byte) (string, error) {

	// ensure data not too small or too large
	l := len(data)
	if l < minimumDataLength || l >= maximumDataLength {
		return "", fault.ErrCryptoFailed
	}

	// a random 192 bit nonce is stored in front of the ciphertext
	var nonce [nonceLength]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fault.ErrCryptoFailed
	}

	ciphertext := secretbox.Seal(nonce[:], []byte(data), &nonce, secretKey)

	return hex.EncodeToString(ciphertext), nil
}

// decrypt a hex string and return plaintext
func decryptData(ciphertext string, secretKey *[keyLength]byte) (string, error) {
	if "" == ciphertext {
		return "", fault.ErrCryptoFailed
	}

	encrypted, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}
	if len(encrypted) <= nonceLength {
		return "", fault.ErrCryptoFailed
	}

	var nonce [nonceLength]byte
	copy(nonce[:], encrypted[:nonceLength])

	decrypted, ok := secretbox.Open(nil, encrypted[nonceLength:], &nonce, secretKey)
	if !ok {
		return "", fault.ErrCryptoFailed
	}

	return string(decrypted), nil
}
