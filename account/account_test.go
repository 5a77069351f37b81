// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/receiptd/account"
	"github.com/bitmark-inc/receiptd/fault"
)

// RFC 8032 test vector 1
var (
	testSeed      = decodeHex("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	testPublicKey = decodeHex("d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a")
	testSignature = decodeHex("e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b")
)

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

func TestIdentityFromBytes(t *testing.T) {
	identity, err := account.IdentityFromBytes(testPublicKey)
	if nil != err {
		t.Fatalf("identity from bytes error: %s", err)
	}
	if !bytes.Equal(testPublicKey, identity.Bytes()) {
		t.Errorf("bytes: %x  expected: %x", identity.Bytes(), testPublicKey)
	}
	assert.False(t, identity.IsZero(), "identity should not be zero")

	_, err = account.IdentityFromBytes(testPublicKey[1:])
	assert.Equal(t, fault.ErrInvalidIdentityLength, err, "short identity")
}

func TestIdentityText(t *testing.T) {
	identity, _ := account.IdentityFromBytes(testPublicKey)

	s := identity.String()
	recovered, err := account.IdentityFromBase58(s)
	if nil != err {
		t.Fatalf("from base58 error: %s", err)
	}
	assert.Equal(t, identity, recovered, "base58 round trip")

	b, err := json.Marshal(struct {
		Owner account.Identity `json:"owner"`
	}{identity})
	if nil != err {
		t.Fatalf("json marshal error: %s", err)
	}
	assert.Equal(t, `{"owner":"`+s+`"}`, string(b), "json form")

	var decoded struct {
		Owner account.Identity `json:"owner"`
	}
	err = json.Unmarshal(b, &decoded)
	assert.Nil(t, err, "json unmarshal")
	assert.Equal(t, identity, decoded.Owner, "json round trip")

	_, err = account.IdentityFromBase58("")
	assert.Equal(t, fault.ErrCannotDecodeIdentity, err, "empty identity")

	_, err = account.IdentityFromBase58("3MvykBZzN")
	assert.Equal(t, fault.ErrInvalidIdentityLength, err, "short identity")
}

func TestSignature(t *testing.T) {
	privateKey, err := account.PrivateKeyFromSeed(testSeed)
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}

	identity := privateKey.Identity()
	if !bytes.Equal(testPublicKey, identity.Bytes()) {
		t.Fatalf("public key: %x  expected: %x", identity.Bytes(), testPublicKey)
	}

	signature := privateKey.Sign([]byte{})
	if !bytes.Equal(testSignature, signature) {
		t.Errorf("signature: %x  expected: %x", signature, testSignature)
	}

	assert.Nil(t, identity.CheckSignature([]byte{}, signature), "valid signature")
	assert.Equal(t, fault.ErrInvalidSignature, identity.CheckSignature([]byte("x"), signature), "wrong message")
	assert.Equal(t, fault.ErrInvalidSignature, identity.CheckSignature([]byte{}, signature[1:]), "short signature")

	var other account.Identity
	assert.Equal(t, fault.ErrInvalidSignature, other.CheckSignature([]byte{}, signature), "wrong identity")
}

func TestSeedText(t *testing.T) {
	privateKey, err := account.NewPrivateKey()
	if nil != err {
		t.Fatalf("new private key error: %s", err)
	}

	seed := privateKey.Seed()
	recovered, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		t.Fatalf("from seed error: %s", err)
	}
	assert.Equal(t, privateKey.Identity(), recovered.Identity(), "seed round trip")

	// corrupt the checksum
	corrupted := seed[:len(seed)-1] + "1"
	if corrupted == seed {
		corrupted = seed[:len(seed)-1] + "2"
	}
	_, err = account.PrivateKeyFromBase58Seed(corrupted)
	assert.Equal(t, fault.ErrInvalidPrivateKey, err, "corrupt seed")

	_, err = account.PrivateKeyFromSeed(testSeed[1:])
	assert.Equal(t, fault.ErrInvalidPrivateKey, err, "short seed")
}

func TestSignatureText(t *testing.T) {
	signature := account.Signature(testSignature)
	text, _ := signature.MarshalText()

	var recovered account.Signature
	err := recovered.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, signature, recovered, "hex round trip")
	assert.Equal(t, hex.EncodeToString(testSignature), signature.String(), "string form")
}
