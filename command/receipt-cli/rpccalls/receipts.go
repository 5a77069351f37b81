// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/receiptd/account"
	"github.com/bitmark-inc/receiptd/fault"
	"github.com/bitmark-inc/receiptd/receipt"
	"github.com/bitmark-inc/receiptd/receiptrecord"
	"github.com/bitmark-inc/receiptd/rpc/receipts"
)

// CreateData - the receipt fields chosen by the user
type CreateData struct {
	Payer       account.Identity
	TxHash      string
	Title       string
	Description string
	Files       []receiptrecord.File
}

// Create - sign and submit a new receipt in a fresh slot
func (client *Client) Create(privateKey *account.PrivateKey, data *CreateData) (*receipts.CreateReply, error) {
	if nil == privateKey || nil == data {
		return nil, fault.ErrMissingParameters
	}

	// same checks as the daemon so bad input is reported before signing
	err := receipt.Validate(&receipt.Arguments{
		Payer:       data.Payer,
		TxHash:      data.TxHash,
		Title:       data.Title,
		Description: data.Description,
		Files:       data.Files,
	})
	if nil != err {
		return nil, err
	}

	slot, err := receiptrecord.NewSlot()
	if nil != err {
		return nil, err
	}

	args := receipts.CreateArguments{
		Slot:        slot,
		Creator:     privateKey.Identity(),
		Payer:       data.Payer,
		TxHash:      data.TxHash,
		Title:       data.Title,
		Description: data.Description,
		Files:       data.Files,
	}

	message, err := args.Request().Pack()
	if nil != err {
		return nil, err
	}
	args.Signature = privateKey.Sign(message)

	client.printJson("Create Request", args)

	var reply receipts.CreateReply
	err = client.client.Call("Receipts.Create", &args, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Create Reply", reply)

	return &reply, nil
}

// Get - fetch one receipt
func (client *Client) Get(slot receiptrecord.Slot) (*receipts.GetReply, error) {
	args := receipts.GetArguments{
		Slot: slot,
	}

	client.printJson("Get Request", args)

	var reply receipts.GetReply
	err := client.client.Call("Receipts.Get", &args, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Get Reply", reply)

	return &reply, nil
}

// ListData - selector for a list request, only one identity is used
type ListData struct {
	Creator *account.Identity
	Payer   *account.Identity
	Start   string
	Count   int
}

// List - receipts of a creator or payer in timestamp order
func (client *Client) List(data *ListData) (*receipts.ListReply, error) {
	if nil == data {
		return nil, fault.ErrMissingParameters
	}

	args := receipts.ListArguments{
		Creator: data.Creator,
		Payer:   data.Payer,
		Start:   data.Start,
		Count:   data.Count,
	}

	client.printJson("List Request", args)

	var reply receipts.ListReply
	err := client.client.Call("Receipts.List", &args, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("List Reply", reply)

	return &reply, nil
}

// Find - receipts recorded for a payment transaction
func (client *Client) Find(txHash string) (*receipts.FindReply, error) {
	args := receipts.FindArguments{
		TxHash: txHash,
	}

	client.printJson("Find Request", args)

	var reply receipts.FindReply
	err := client.client.Call("Receipts.Find", &args, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Find Reply", reply)

	return &reply, nil
}
