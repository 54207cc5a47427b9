// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokenledger/configuration"
	"github.com/bitmark-inc/tokenledger/fault"
)

type rpcSection struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
	RequestRate        float64  `gluamapper:"request_rate"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	ConfigFile    string            `gluamapper:"config_file"`
	ClientRPC     rpcSection        `gluamapper:"client_rpc"`
	Levels        map[string]string `gluamapper:"levels"`
}

const testChunk = `
local M = {}

M.data_directory = "."
M.config_file = arg[0]

M.client_rpc = {
    maximum_connections = 50,
    listen = {
        "127.0.0.1:2130",
        "[::1]:2130",
    },
    request_rate = 12.5,
}

M.levels = {
    DEFAULT = "info",
    rpc = "debug",
}

return M
`

func writeChunk(t *testing.T, chunk string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(chunk), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeChunk(t, testChunk)
	defer cleanup()

	c := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Nil(t, err, "wrong ParseConfigurationFile")

	assert.Equal(t, ".", c.DataDirectory, "wrong data directory")
	assert.Equal(t, fileName, c.ConfigFile, "wrong arg[0]")
	assert.Equal(t, uint64(50), c.ClientRPC.MaximumConnections, "wrong maximum connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, 12.5, c.ClientRPC.RequestRate, "wrong request rate")
	assert.Equal(t, "info", c.Levels["DEFAULT"], "wrong default level")
	assert.Equal(t, "debug", c.Levels["rpc"], "wrong rpc level")
}

func TestParseConfigurationFileKeepsDefaults(t *testing.T) {
	fileName, cleanup := writeChunk(t, `return { data_directory = "/var/lib/tokenledger" }`)
	defer cleanup()

	c := testConfiguration{
		ClientRPC: rpcSection{
			MaximumConnections: 10,
		},
	}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Nil(t, err, "wrong ParseConfigurationFile")
	assert.Equal(t, "/var/lib/tokenledger", c.DataDirectory, "wrong data directory")
	assert.Equal(t, uint64(10), c.ClientRPC.MaximumConnections, "default overwritten")
}

func TestParseConfigurationFileWhenNotTable(t *testing.T) {
	fileName, cleanup := writeChunk(t, `return "hello"`)
	defer cleanup()

	c := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Equal(t, fault.InvalidConfiguration, err, "wrong error")
}

func TestParseConfigurationFileWhenSyntaxError(t *testing.T) {
	fileName, cleanup := writeChunk(t, `return {`)
	defer cleanup()

	c := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.NotNil(t, err, "syntax error accepted")
}

func TestParseConfigurationFileWhenNotPointer(t *testing.T) {
	fileName, cleanup := writeChunk(t, testChunk)
	defer cleanup()

	err := configuration.ParseConfigurationFile(fileName, testConfiguration{})
	assert.Equal(t, fault.InvalidStructPointer, err, "wrong error for value")

	var s string
	err = configuration.ParseConfigurationFile(fileName, &s)
	assert.Equal(t, fault.InvalidStructPointer, err, "wrong error for non-struct")
}
