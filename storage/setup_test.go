// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/storage"
)

func TestInitialiseTwice(t *testing.T) {
	openDatabase(t, false)

	err := storage.Initialise(storage.InMemory, storage.ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err, "second Initialise accepted")
}

func TestRefuseDowngrade(t *testing.T) {
	fileName := startLogging(t)

	db, err := leveldb.OpenFile(fileName+".leveldb", nil)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	_ = db.Put([]byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}, []byte{0x00, 0x00, 0xff, 0xff}, nil)
	db.Close()

	err = storage.Initialise(fileName, storage.ReadWrite)
	assert.Equal(t, fault.IncompatibleVersion, err, "newer database accepted")
	assert.Nil(t, storage.Pool.Balances, "pools set after failure")
}

func TestFinaliseClearsPools(t *testing.T) {
	openDatabase(t, false)

	assert.NotNil(t, storage.Pool.Balances, "balances pool not set")
	storage.Finalise()
	assert.Nil(t, storage.Pool.Balances, "balances pool still set")

	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.NotInitialised, err, "transaction without database")
}

func TestPoolByPrefix(t *testing.T) {
	openDatabase(t, false)

	p, err := storage.PoolByPrefix('B')
	assert.Nil(t, err, "balances prefix")
	assert.Equal(t, storage.Pool.Balances, p, "wrong pool")
	assert.Equal(t, byte('B'), p.Prefix(), "wrong prefix")

	_, err = storage.PoolByPrefix('x')
	assert.Equal(t, fault.UnknownPool, err, "unknown prefix accepted")
}

func TestTransactionAbort(t *testing.T) {
	openDatabase(t, false)

	p := storage.Pool.Balances
	p.Put([]byte("k1"), []byte("committed"))

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "NewDBTransaction error")
	assert.True(t, trx.InUse(), "transaction not in use")

	p.Put([]byte("k1"), []byte("staged"))
	p.Put([]byte("k2"), []byte("staged"))
	p.Delete([]byte("k1"))
	p.Put([]byte("k1"), []byte("restaged"))

	assert.Equal(t, []byte("restaged"), p.Get([]byte("k1")), "read your writes")
	assert.True(t, p.Has([]byte("k2")), "staged key not visible")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.TransactionInUse, err, "nested transaction accepted")

	trx.Abort()
	assert.False(t, trx.InUse(), "transaction still in use")

	assert.Equal(t, []byte("committed"), p.Get([]byte("k1")), "abort kept staged value")
	assert.False(t, p.Has([]byte("k2")), "abort kept staged key")
}

func TestTransactionCommit(t *testing.T) {
	openDatabase(t, false)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "NewDBTransaction error")

	storage.Pool.Balances.Put([]byte("k"), []byte("balance"))
	storage.Pool.Supply.Put([]byte("k"), []byte("supply"))

	data, err := storage.Pool.Balances.NewFetchCursor().Fetch(10)
	assert.Nil(t, err, "Fetch error")
	assert.Equal(t, 0, len(data), "cursor sees staged data")

	err = trx.Commit()
	assert.Nil(t, err, "Commit error")

	assert.Equal(t, []byte("balance"), storage.Pool.Balances.Get([]byte("k")), "balance not committed")
	assert.Equal(t, []byte("supply"), storage.Pool.Supply.Get([]byte("k")), "supply not committed")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "cannot begin after commit")
	trx.Abort()
}
