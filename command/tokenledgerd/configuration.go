// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/address"
	"github.com/bitmark-inc/tokenledger/configuration"
	"github.com/bitmark-inc/tokenledger/itemkey"
	"github.com/bitmark-inc/tokenledger/rpc/listeners"
	"github.com/bitmark-inc/tokenledger/storage"
	"github.com/bitmark-inc/tokenledger/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultDatabaseDirectory = "data"
	defaultDatabaseName      = "tokenledger"
	defaultKeyEncoding       = "base64"

	defaultLogDirectory = "log"
	defaultLogFile      = "tokenledgerd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients       = 10
	defaultRPCRequestRate   = 200.0
	defaultRPCRequestWindow = 300 // seconds
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// decoding merges into an existing map so each read needs its own
func (m LoglevelMap) copy() LoglevelMap {
	c := make(LoglevelMap, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// DatabaseType - location of the LevelDB files
type DatabaseType struct {
	Directory   string `gluamapper:"directory" json:"directory"`
	Name        string `gluamapper:"name" json:"name"`
	KeyEncoding string `gluamapper:"key_encoding" json:"key_encoding"`
}

// TokenType - the single token collection served by this node
type TokenType struct {
	URI    string `gluamapper:"uri" json:"uri"`
	Minter string `gluamapper:"minter" json:"minter"`
}

// Configuration - the daemon configuration file
type Configuration struct {
	DataDirectory string                     `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string                     `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType               `gluamapper:"database" json:"database"`
	Token         TokenType                  `gluamapper:"token" json:"token"`
	ClientRPC     listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Logging       logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory:   defaultDatabaseDirectory,
			Name:        defaultDatabaseName,
			KeyEncoding: defaultKeyEncoding,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        rpcCertificateKeyFilename,
			PrivateKey:         rpcPrivateKeyFilename,
			RequestRate:        defaultRPCRequestRate,
			RequestWindow:      defaultRPCRequestWindow,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels.copy(),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if "" == options.Token.Minter {
		return nil, fmt.Errorf("token minter address is required")
	}
	if _, err := address.FromBase58(options.Token.Minter); nil != err {
		return nil, fmt.Errorf("token minter: %q error: %s", options.Token.Minter, err)
	}

	if _, ok := itemkey.EncodingByName(options.Database.KeyEncoding); !ok {
		return nil, fmt.Errorf("database key encoding: %q is not supported", options.Database.KeyEncoding)
	}

	if err := options.resolvePaths(dataDirectory); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// make every file and directory absolute
//
// relative names are taken from the data directory which must already
// exist; "." means the directory holding the configuration file
func (options *Configuration) resolvePaths(configurationDirectory string) error {

	switch options.DataDirectory {
	case "", "~":
		return fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	case ".":
		options.DataDirectory = configurationDirectory
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// names that must not carry a directory part
	plainNames := []string{
		options.Logging.File,
	}
	if storage.InMemory != options.Database.Name {
		plainNames = append(plainNames, options.Database.Name)
	}
	for _, name := range plainNames {
		if !util.IsPlainName(name) {
			return fmt.Errorf("Files: %q is not plain name", name)
		}
	}

	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := util.EnsureDirectory(*d); nil != err {
			return err
		}
	}

	for _, f := range []*string{
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
	} {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	if storage.InMemory != options.Database.Name {
		options.Database.Name = filepath.Join(options.Database.Directory, options.Database.Name)
	}

	return nil
}
