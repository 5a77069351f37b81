// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipts

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/receiptd/account"
	"github.com/bitmark-inc/receiptd/fault"
	"github.com/bitmark-inc/receiptd/receipt"
	"github.com/bitmark-inc/receiptd/receiptrecord"
	"github.com/bitmark-inc/receiptd/rpc/ratelimit"
	"github.com/bitmark-inc/receiptd/storage"
)

// limit for count
const (
	maximumListCount = 100
	maximumFindCount = 100
)

// Store - the receipt store behind the RPC
type Store interface {
	receipt.Store
	Get(receiptrecord.Slot) (receiptrecord.Packed, error)
	ByCreator(account.Identity, []byte, int) ([]storage.Entry, []byte, error)
	ByPayer(account.Identity, []byte, int) ([]storage.Entry, []byte, error)
	ByTxHash(string, int) ([]storage.Entry, error)
}

// Receipts - type for the RPC
type Receipts struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Store    Store
	Clock    func() time.Time
	ReadOnly bool
}

// New - create the RPC object
func New(log *logger.L, limiter *rate.Limiter, store Store, clock func() time.Time, readOnly bool) *Receipts {
	return &Receipts{
		Log:      log,
		Limiter:  limiter,
		Store:    store,
		Clock:    clock,
		ReadOnly: readOnly,
	}
}

// Create a receipt
// ----------------

// CreateArguments - arguments for create RPC
//
// the signature is made by the creator over the packed request
type CreateArguments struct {
	Slot        receiptrecord.Slot   `json:"slot"`
	Creator     account.Identity     `json:"creator"`
	Payer       account.Identity     `json:"payer"`
	TxHash      string               `json:"txHash"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Files       []receiptrecord.File `json:"files"`
	Signature   account.Signature    `json:"signature"`
}

// CreateReply - result from create RPC
type CreateReply struct {
	Slot      receiptrecord.Slot `json:"slot"`
	Timestamp int64              `json:"timestamp"`
}

// Request - the message the creator signs
func (arguments *CreateArguments) Request() *receiptrecord.Request {
	return &receiptrecord.Request{
		Slot:        arguments.Slot,
		Creator:     arguments.Creator,
		Payer:       arguments.Payer,
		TxHash:      arguments.TxHash,
		Title:       arguments.Title,
		Description: arguments.Description,
		Files:       arguments.Files,
	}
}

// Create - store a new receipt signed by its creator
func (r *Receipts) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if r.ReadOnly {
		return fault.ErrReadOnly
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	log := r.Log
	requestId := uuid.New()

	log.Infof("Receipts.Create: request: %s  slot: %s  creator: %s", requestId, arguments.Slot, arguments.Creator)

	args := &receipt.Arguments{
		Payer:       arguments.Payer,
		TxHash:      arguments.TxHash,
		Title:       arguments.Title,
		Description: arguments.Description,
		Files:       arguments.Files,
	}

	// reject out of bounds fields before checking the signature
	err := receipt.Validate(args)
	if nil != err {
		log.Warnf("request: %s  invalid arguments: %s", requestId, err)
		return err
	}

	message, err := arguments.Request().Pack()
	if nil != err {
		return err
	}
	err = arguments.Creator.CheckSignature(message, arguments.Signature)
	if nil != err {
		log.Warnf("request: %s  signature error: %s", requestId, err)
		return err
	}

	var timestamp time.Time
	authority := &receipt.Authority{
		Creator: arguments.Creator,
		Clock: func() time.Time {
			timestamp = r.Clock()
			return timestamp
		},
	}

	err = receipt.Create(r.Store, authority, arguments.Slot, args)
	if nil != err {
		log.Warnf("request: %s  create error: %s", requestId, err)
		return err
	}

	log.Infof("request: %s  created slot: %s  timestamp: %d", requestId, arguments.Slot, timestamp.Unix())

	reply.Slot = arguments.Slot
	reply.Timestamp = timestamp.Unix()
	return nil
}

// Get one receipt
// ---------------

// GetArguments - arguments for get RPC
type GetArguments struct {
	Slot receiptrecord.Slot `json:"slot"`
}

// GetReply - result from get RPC
type GetReply struct {
	Slot    receiptrecord.Slot     `json:"slot"`
	Receipt *receiptrecord.Receipt `json:"receipt"`
	Packed  receiptrecord.Packed   `json:"packed"`
}

// Get - fetch the receipt stored at a slot
func (r *Receipts) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	r.Log.Infof("Receipts.Get: %s", arguments.Slot)

	packed, err := r.Store.Get(arguments.Slot)
	if nil != err {
		return err
	}

	record, n, err := packed.Unpack()
	if nil != err {
		r.Log.Errorf("slot: %s  unreadable record: %s", arguments.Slot, err)
		return err
	}

	reply.Slot = arguments.Slot
	reply.Receipt = record
	reply.Packed = packed[:n]
	return nil
}

// List receipts of a creator or payer
// -----------------------------------

// ListArguments - arguments for list RPC
//
// exactly one of creator or payer must be given
type ListArguments struct {
	Creator *account.Identity `json:"creator,omitempty"`
	Payer   *account.Identity `json:"payer,omitempty"`
	Start   string            `json:"start"`
	Count   int               `json:"count"`
}

// Item - one receipt in a list
type Item struct {
	Slot    receiptrecord.Slot     `json:"slot"`
	Receipt *receiptrecord.Receipt `json:"receipt"`
}

// ListReply - result from list RPC
type ListReply struct {
	Receipts  []Item `json:"receipts"`
	NextStart string `json:"nextStart"`
}

// List - receipts in time order
func (r *Receipts) List(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := ratelimit.LimitN(r.Limiter, arguments.Count, maximumListCount); nil != err {
		return err
	}

	r.Log.Infof("Receipts.List: %+v", arguments)

	start, err := hex.DecodeString(arguments.Start)
	if nil != err {
		return fault.ErrInvalidCursor
	}

	var entries []storage.Entry
	var next []byte
	switch {
	case nil != arguments.Creator && nil == arguments.Payer:
		entries, next, err = r.Store.ByCreator(*arguments.Creator, start, arguments.Count)
	case nil == arguments.Creator && nil != arguments.Payer:
		entries, next, err = r.Store.ByPayer(*arguments.Payer, start, arguments.Count)
	default:
		return fault.ErrMissingSelector
	}
	if nil != err {
		return err
	}

	items, err := r.unpack(entries)
	if nil != err {
		return err
	}
	reply.Receipts = items
	reply.NextStart = hex.EncodeToString(next)
	return nil
}

// Find receipts for a transaction
// -------------------------------

// FindArguments - arguments for find RPC
type FindArguments struct {
	TxHash string `json:"txHash"`
}

// FindReply - result from find RPC
type FindReply struct {
	Receipts []Item `json:"receipts"`
}

// Find - receipts that refer to a transaction
func (r *Receipts) Find(arguments *FindArguments, reply *FindReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.TxHash {
		return fault.ErrMissingParameters
	}

	r.Log.Infof("Receipts.Find: %q", arguments.TxHash)

	entries, err := r.Store.ByTxHash(arguments.TxHash, maximumFindCount)
	if nil != err {
		return err
	}

	items, err := r.unpack(entries)
	if nil != err {
		return err
	}
	reply.Receipts = items
	return nil
}

func (r *Receipts) unpack(entries []storage.Entry) ([]Item, error) {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		record, _, err := e.Packed.Unpack()
		if nil != err {
			r.Log.Errorf("slot: %s  unreadable record: %s", e.Slot, err)
			return nil, err
		}
		items = append(items, Item{
			Slot:    e.Slot,
			Receipt: record,
		})
	}
	return items, nil
}
