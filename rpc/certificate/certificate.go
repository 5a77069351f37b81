// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"io/ioutil"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/receiptd/fault"
	"github.com/bitmark-inc/receiptd/util"
)

// Fingerprint - SHA3-256 of the DER certificate
type Fingerprint [32]byte

// Get - verify a PEM certificate and key pair and return a server TLS configuration
func Get(log *logger.L, name string, certificate string, key string) (*tls.Config, Fingerprint, error) {
	var fin Fingerprint

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Load - as Get but reading the PEM data from files
func Load(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, Fingerprint, error) {
	if !util.EnsureFileExists(certificateFileName) {
		log.Errorf("%s certificate: %q does not exist", name, certificateFileName)
		return nil, Fingerprint{}, fault.ErrMissingParameters
	}
	if !util.EnsureFileExists(keyFileName) {
		log.Errorf("%s private key: %q does not exist", name, keyFileName)
		return nil, Fingerprint{}, fault.ErrMissingParameters
	}

	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		return nil, Fingerprint{}, err
	}
	key, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		return nil, Fingerprint{}, err
	}
	return Get(log, name, string(certificate), string(key))
}

// fingerprint - compute the fingerprint of a certificate
//
// FreeBSD: openssl x509 -outform DER -in receiptd-local-rpc.crt | sha3sum -a 256
func fingerprint(certificate []byte) Fingerprint {
	return sha3.Sum256(certificate)
}
