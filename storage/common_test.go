// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/storage"
)

// log into a fresh directory and return a database path inside it
//
// the database, logger and directory are all released when t ends
func startLogging(t *testing.T) string {
	dir, err := ioutil.TempDir("", "storage-test")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}

	err = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "test.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("logger error: %s", err)
	}

	t.Cleanup(func() {
		storage.Finalise()
		logger.Finalise()
		os.RemoveAll(dir)
	})
	return filepath.Join(dir, "ledger")
}

// open a writable database, in memory unless onDisk is set
func openDatabase(t *testing.T, onDisk bool) string {
	fileName := startLogging(t)
	database := storage.InMemory
	if onDisk {
		database = fileName
	}
	if err := storage.Initialise(database, storage.ReadWrite); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return fileName
}

func element(key string, value string) storage.Element {
	return storage.Element{Key: []byte(key), Value: []byte(value)}
}

// pool contents after fill, in key order
var expectedElements = []storage.Element{
	element("key", "data-short"),
	element("key-five", "data-five"),
	element("key-four", "data-four"),
	element("key-one", "data-one(NEW)"),
	element("key-seven", "data-seven"),
	element("key-six", "data-six"),
	element("key-three", "data-three"),
	element("key-two", "data-two"),
}

var nonExistantKey = []byte("/nonexistant")

var testKey = []byte("key-two")
var testData = "data-two"
