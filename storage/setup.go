// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tokenledger/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Balances  *PoolHandle `prefix:"B"`
	Supply    *PoolHandle `prefix:"S"`
	Operators *PoolHandle `prefix:"O"`
	Metadata  *PoolHandle `prefix:"M"`
	TestData  *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// InMemory - database name that opens a memory backed database
const InMemory = ":memory:"

// holds the database handle
var poolData struct {
	sync.RWMutex
	db     *leveldb.DB
	access Access
	trx    Transaction
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	ok := false

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	defer func() {
		if !ok {
			dbClose()
		}
	}()

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return err
	}
	poolData.db = db

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return fault.IncompatibleVersion
	}

	// prevent readOnly from modifying the database
	if readOnly && version != currentDBVersion {
		logger.Criticalf("database is inconsistent: %d  current: %d", version, currentDBVersion)
		return fault.IncompatibleVersion
	}

	if 0 == version {
		// database was empty so tag as current version
		err = putVersion(poolData.db, currentDBVersion)
		if nil != err {
			return err
		}
	} else if version < currentDBVersion {
		logger.Criticalf("database version: %d < current version: %d", version, currentDBVersion)
		return fault.IncompatibleVersion
	}

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	poolData.access = newDA(poolData.db, readOnly, newCache())
	poolData.trx = newTransaction([]Access{poolData.access})

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: poolData.access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return nil
}

func dbClose() {
	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
	}
	poolData.access = nil
	poolData.trx = nil
	Pool = pools{}
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// PoolByPrefix - find a pool from its prefix byte
func PoolByPrefix(prefix byte) (*PoolHandle, error) {
	poolValue := reflect.ValueOf(Pool)
	for i := 0; i < poolValue.NumField(); i += 1 {
		p := poolValue.Field(i).Interface().(*PoolHandle)
		if nil == p {
			return nil, fault.NotInitialised
		}
		if prefix == p.prefix {
			return p, nil
		}
	}
	return nil, fault.UnknownPool
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	var db *leveldb.DB
	var err error
	if InMemory == name {
		db, err = leveldb.Open(ldb_storage.NewMemStorage(), opt)
	} else {
		db, err = leveldb.OpenFile(name+".leveldb", opt)
	}
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// NewDBTransaction - begin a transaction over every pool
//
// the caller must finish with Commit or Abort
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.trx {
		return nil, fault.NotInitialised
	}
	err := poolData.trx.Begin()
	if nil != err {
		return nil, err
	}
	return poolData.trx, nil
}
