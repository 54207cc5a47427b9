// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokenledger/storage"
)

// add a key_encoding entry to the database table
func withKeyEncoding(t *testing.T, fileName string, encoding string) {
	text, err := ioutil.ReadFile(fileName)
	if nil != err {
		t.Fatalf("read configuration error: %s", err)
	}
	entry := fmt.Sprintf("M.database = {\n    key_encoding = %q,\n", encoding)
	updated := strings.Replace(string(text), "M.database = {\n", entry, 1)
	if err := ioutil.WriteFile(fileName, []byte(updated), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
}

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, "ledger", minterText, 50)
	dir := filepath.Dir(fileName)

	cfg, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong getConfiguration")

	assert.Equal(t, filepath.Clean(dir), cfg.DataDirectory, "wrong data directory")
	assert.Equal(t, filepath.Join(dir, "tokenledgerd.pid"), cfg.PidFile, "wrong pid file")
	assert.Equal(t, filepath.Join(dir, defaultDatabaseDirectory), cfg.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(dir, defaultDatabaseDirectory, "ledger"), cfg.Database.Name, "wrong database name")
	assert.Equal(t, "https://tokens.example.com/{id}.json", cfg.Token.URI, "wrong uri")
	assert.Equal(t, minterText, cfg.Token.Minter, "wrong minter")
	assert.Equal(t, "base64", cfg.Database.KeyEncoding, "wrong default key encoding")

	assert.Equal(t, uint64(5), cfg.ClientRPC.MaximumConnections, "wrong maximum connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, cfg.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, float64(50), cfg.ClientRPC.RequestRate, "wrong request rate")
	assert.Equal(t, defaultRPCRequestWindow, cfg.ClientRPC.RequestWindow, "wrong default request window")
	assert.Equal(t, filepath.Join(dir, rpcCertificateKeyFilename), cfg.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, rpcPrivateKeyFilename), cfg.ClientRPC.PrivateKey, "wrong private key")

	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), cfg.Logging.Directory, "wrong log directory")
	assert.Equal(t, defaultLogFile, cfg.Logging.File, "wrong log file")
	assert.Equal(t, "info", cfg.Logging.Levels["DEFAULT"], "wrong log level")
}

func TestGetConfigurationInMemory(t *testing.T) {
	fileName := writeConfiguration(t, storage.InMemory, minterText, 10)

	cfg, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong getConfiguration")
	assert.Equal(t, storage.InMemory, cfg.Database.Name, "memory database was changed")
}

func TestGetConfigurationDatabasePath(t *testing.T) {
	fileName := writeConfiguration(t, "sub/ledger", minterText, 10)

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "database path was accepted")
}

func TestGetConfigurationMinter(t *testing.T) {
	fileName := writeConfiguration(t, "ledger", "", 10)
	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "missing minter was accepted")

	fileName = writeConfiguration(t, "ledger", "not-an-address", 10)
	_, err = getConfiguration(fileName)
	assert.NotNil(t, err, "invalid minter was accepted")
}

func TestGetConfigurationKeyEncoding(t *testing.T) {
	fileName := writeConfiguration(t, "ledger", minterText, 10)
	withKeyEncoding(t, fileName, "base58")

	cfg, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong getConfiguration")
	assert.Equal(t, "base58", cfg.Database.KeyEncoding, "wrong key encoding")

	fileName = writeConfiguration(t, "ledger", minterText, 10)
	withKeyEncoding(t, fileName, "rot13")

	_, err = getConfiguration(fileName)
	assert.NotNil(t, err, "unknown key encoding was accepted")
}

func TestGetConfigurationMissingFile(t *testing.T) {
	_, err := getConfiguration(filepath.Join(t.TempDir(), "absent.conf"))
	assert.NotNil(t, err, "missing file was accepted")
}
