// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - stage writes to all pools until Commit
type Transaction interface {
	Begin() error
	Commit() error
	Abort()
	InUse() bool
}

// TransactionImpl - spans one or more databases
type TransactionImpl struct {
	dataAccess []Access
}

func newTransaction(dataAccess []Access) Transaction {
	return &TransactionImpl{
		dataAccess: dataAccess,
	}
}

// Begin - fails if any database already has an open transaction
func (t *TransactionImpl) Begin() error {
	for i, da := range t.dataAccess {
		err := da.Begin()
		if nil != err {
			for _, begun := range t.dataAccess[:i] {
				begun.Abort()
			}
			return err
		}
	}
	return nil
}

// Commit - write every staged batch
//
// all databases are closed out even if one write fails, the first
// error is returned
func (t *TransactionImpl) Commit() error {
	var firstErr error
	for _, da := range t.dataAccess {
		err := da.Commit()
		if nil != err && nil == firstErr {
			firstErr = err
		}
	}
	return firstErr
}

// Abort - discard every staged batch
func (t *TransactionImpl) Abort() {
	for _, da := range t.dataAccess {
		da.Abort()
	}
}

// InUse - true between Begin and Commit or Abort
func (t *TransactionImpl) InUse() bool {
	for _, da := range t.dataAccess {
		if da.InUse() {
			return true
		}
	}
	return false
}
