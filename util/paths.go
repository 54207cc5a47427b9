// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureAbsolute - resolve a relative path against directory
func EnsureAbsolute(directory string, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Join(directory, filePath)
}

// EnsureFileExists - true if anything exists at name
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - create the directory if missing
//
// fails if something other than a directory is already there
func EnsureDirectory(name string) error {
	info, err := os.Stat(name)
	if os.IsNotExist(err) {
		return os.MkdirAll(name, 0700)
	}
	if nil != err {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("path: %q is not a directory", name)
	}
	return nil
}

// IsPlainName - true if name has no directory part
func IsPlainName(name string) bool {
	switch filepath.Dir(name) {
	case "", ".":
		return "" != name
	default:
		return false
	}
}
