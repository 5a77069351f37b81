// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipts_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/receiptd/account"
	"github.com/bitmark-inc/receiptd/fault"
	"github.com/bitmark-inc/receiptd/receiptrecord"
	"github.com/bitmark-inc/receiptd/rpc/fixtures"
	"github.com/bitmark-inc/receiptd/rpc/mocks"
	"github.com/bitmark-inc/receiptd/rpc/ratelimit"
	"github.com/bitmark-inc/receiptd/rpc/receipts"
	"github.com/bitmark-inc/receiptd/storage"
)

var now = time.Unix(1700000000, 0)

func clock() time.Time {
	return now
}

func newReceipts(store receipts.Store) *receipts.Receipts {
	return receipts.New(
		logger.New(fixtures.LogCategory),
		ratelimit.New(1000, 1000),
		store,
		clock,
		false,
	)
}

func signedArguments(t *testing.T, privateKey *account.PrivateKey) *receipts.CreateArguments {
	arguments := &receipts.CreateArguments{
		Slot:    receiptrecord.Slot{1, 2, 3},
		Creator: privateKey.Identity(),
		Payer:   account.Identity{9},
		TxHash:  "abc123",
		Title:   "Invoice #1",
		Files:   []receiptrecord.File{{Name: "a.pdf", Hash: "deadbeef"}},
	}
	message, err := arguments.Request().Pack()
	if nil != err {
		t.Fatalf("pack request error: %s", err)
	}
	arguments.Signature = privateKey.Sign(message)
	return arguments
}

func TestCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	privateKey, _ := account.NewPrivateKey()
	arguments := signedArguments(t, privateKey)

	store := mocks.NewMockStore(ctl)
	store.EXPECT().
		PutIfAbsent(arguments.Slot, gomock.Any()).
		DoAndReturn(func(_ receiptrecord.Slot, buffer []byte) error {
			r, _, err := receiptrecord.Packed(buffer).Unpack()
			assert.Nil(t, err, "unpack")
			assert.Equal(t, privateKey.Identity(), r.Creator, "creator")
			assert.Equal(t, now.Unix(), r.Timestamp, "timestamp")
			return nil
		}).
		Times(1)

	var reply receipts.CreateReply
	err := newReceipts(store).Create(arguments, &reply)
	assert.Nil(t, err, "create")
	assert.Equal(t, arguments.Slot, reply.Slot, "slot")
	assert.Equal(t, now.Unix(), reply.Timestamp, "timestamp")
}

func TestCreateBadSignature(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	store := mocks.NewMockStore(ctl)
	store.EXPECT().PutIfAbsent(gomock.Any(), gomock.Any()).Times(0)

	privateKey, _ := account.NewPrivateKey()
	other, _ := account.NewPrivateKey()

	// signed by someone other than the claimed creator
	arguments := signedArguments(t, privateKey)
	arguments.Creator = other.Identity()

	var reply receipts.CreateReply
	err := newReceipts(store).Create(arguments, &reply)
	assert.Equal(t, fault.ErrInvalidSignature, err, "wrong signer")

	// altered after signing
	arguments = signedArguments(t, privateKey)
	arguments.Title = "Invoice #2"
	err = newReceipts(store).Create(arguments, &reply)
	assert.Equal(t, fault.ErrInvalidSignature, err, "altered title")

	// slot is covered by the signature
	arguments = signedArguments(t, privateKey)
	arguments.Slot = receiptrecord.Slot{7}
	err = newReceipts(store).Create(arguments, &reply)
	assert.Equal(t, fault.ErrInvalidSignature, err, "altered slot")
}

func TestCreateInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	store := mocks.NewMockStore(ctl)
	store.EXPECT().PutIfAbsent(gomock.Any(), gomock.Any()).Times(0)

	privateKey, _ := account.NewPrivateKey()
	arguments := signedArguments(t, privateKey)
	arguments.Files = make([]receiptrecord.File, 6)

	var reply receipts.CreateReply
	err := newReceipts(store).Create(arguments, &reply)
	assert.Equal(t, fault.ErrTooManyFiles, err, "too many files")

	r := newReceipts(store)
	r.ReadOnly = true
	err = r.Create(signedArguments(t, privateKey), &reply)
	assert.Equal(t, fault.ErrReadOnly, err, "read only")
}

func TestCreateExists(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	store := mocks.NewMockStore(ctl)
	store.EXPECT().
		PutIfAbsent(gomock.Any(), gomock.Any()).
		Return(fault.ErrReceiptAlreadyExists).
		Times(1)

	privateKey, _ := account.NewPrivateKey()

	var reply receipts.CreateReply
	err := newReceipts(store).Create(signedArguments(t, privateKey), &reply)
	assert.Equal(t, fault.ErrReceiptAlreadyExists, err, "exists")
}

func packed(t *testing.T, r *receiptrecord.Receipt) receiptrecord.Packed {
	p, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	buffer := make(receiptrecord.Packed, receiptrecord.MaxPackedLength())
	copy(buffer, p)
	return buffer
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	slot := receiptrecord.Slot{5}
	r := &receiptrecord.Receipt{Title: "Invoice #1", Files: []receiptrecord.File{}, Timestamp: 3}
	p := packed(t, r)

	store := mocks.NewMockStore(ctl)
	store.EXPECT().Get(slot).Return(p, nil).Times(1)
	store.EXPECT().Get(receiptrecord.Slot{6}).Return(nil, fault.ErrReceiptNotFound).Times(1)

	rpc := newReceipts(store)

	var reply receipts.GetReply
	err := rpc.Get(&receipts.GetArguments{Slot: slot}, &reply)
	assert.Nil(t, err, "get")
	assert.Equal(t, r, reply.Receipt, "receipt")
	assert.True(t, len(reply.Packed) < receiptrecord.MaxPackedLength(), "padding removed")

	err = rpc.Get(&receipts.GetArguments{Slot: receiptrecord.Slot{6}}, &reply)
	assert.Equal(t, fault.ErrReceiptNotFound, err, "missing")
}

func TestList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	creator := account.Identity{1}
	entries := []storage.Entry{
		{Slot: receiptrecord.Slot{1}, Packed: packed(t, &receiptrecord.Receipt{Creator: creator, Timestamp: 1})},
		{Slot: receiptrecord.Slot{2}, Packed: packed(t, &receiptrecord.Receipt{Creator: creator, Timestamp: 2})},
	}

	store := mocks.NewMockStore(ctl)
	store.EXPECT().ByCreator(creator, []byte{}, 2).Return(entries, []byte{0xab}, nil).Times(1)
	store.EXPECT().ByPayer(creator, []byte{0xab}, 2).Return(entries[:1], nil, nil).Times(1)

	rpc := newReceipts(store)

	var reply receipts.ListReply
	err := rpc.List(&receipts.ListArguments{Creator: &creator, Count: 2}, &reply)
	assert.Nil(t, err, "list by creator")
	assert.Equal(t, 2, len(reply.Receipts), "receipt count")
	assert.Equal(t, int64(2), reply.Receipts[1].Receipt.Timestamp, "order kept")
	assert.Equal(t, "ab", reply.NextStart, "next start")

	err = rpc.List(&receipts.ListArguments{Payer: &creator, Start: "ab", Count: 2}, &reply)
	assert.Nil(t, err, "list by payer")
	assert.Equal(t, 1, len(reply.Receipts), "receipt count")
	assert.Equal(t, "", reply.NextStart, "end of list")

	err = rpc.List(&receipts.ListArguments{Count: 2}, &reply)
	assert.Equal(t, fault.ErrMissingSelector, err, "no selector")

	err = rpc.List(&receipts.ListArguments{Creator: &creator, Payer: &creator, Count: 2}, &reply)
	assert.Equal(t, fault.ErrMissingSelector, err, "two selectors")

	err = rpc.List(&receipts.ListArguments{Creator: &creator, Count: 101}, &reply)
	assert.Equal(t, fault.ErrInvalidCount, err, "count too large")

	err = rpc.List(&receipts.ListArguments{Creator: &creator, Start: "xyz", Count: 2}, &reply)
	assert.Equal(t, fault.ErrInvalidCursor, err, "bad start")
}

func TestFind(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	entries := []storage.Entry{
		{Slot: receiptrecord.Slot{1}, Packed: packed(t, &receiptrecord.Receipt{TxHash: "abc"})},
	}

	store := mocks.NewMockStore(ctl)
	store.EXPECT().ByTxHash("abc", gomock.Any()).Return(entries, nil).Times(1)
	store.EXPECT().ByTxHash("bad", gomock.Any()).Return([]storage.Entry{{Slot: receiptrecord.Slot{2}, Packed: receiptrecord.Packed{1, 2}}}, nil).Times(1)

	rpc := newReceipts(store)

	var reply receipts.FindReply
	err := rpc.Find(&receipts.FindArguments{TxHash: "abc"}, &reply)
	assert.Nil(t, err, "find")
	assert.Equal(t, 1, len(reply.Receipts), "receipt count")
	assert.Equal(t, receiptrecord.Slot{1}, reply.Receipts[0].Slot, "slot")

	err = rpc.Find(&receipts.FindArguments{TxHash: "bad"}, &reply)
	assert.True(t, fault.IsErrRecord(err), "corrupt record")

	err = rpc.Find(&receipts.FindArguments{}, &reply)
	assert.Equal(t, fault.ErrMissingParameters, err, "empty tx hash")
}
