// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/itemkey"
	"github.com/bitmark-inc/tokenledger/storage"
)

// metadata key holding the name of the balance key encoding
var encodingKey = []byte("key_encoding")

var keys = struct {
	sync.RWMutex
	deriver *itemkey.Deriver
}{
	deriver: itemkey.New(itemkey.Base64, itemkey.MaximumLength),
}

// SetDeriver - select the derivation used for balance and supply keys
//
// nil restores the base64 default
func SetDeriver(d *itemkey.Deriver) {
	if nil == d {
		d = itemkey.New(itemkey.Base64, itemkey.MaximumLength)
	}
	keys.Lock()
	keys.deriver = d
	keys.Unlock()
}

// Deriver - the derivation currently in use
func Deriver() *itemkey.Deriver {
	keys.RLock()
	defer keys.RUnlock()
	return keys.deriver
}

// InstallEncoding - bind the open database to one key encoding
//
// the first call records the encoding name in the metadata pool; later
// opens must name the same encoding or get fault.WrongEncoding
func InstallEncoding(encoding itemkey.Encoding) error {
	if nil == encoding {
		return fault.WrongEncoding
	}

	recorded, err := RecordedEncoding()
	if nil != err {
		return err
	}
	if nil == recorded {
		storage.Pool.Metadata.Put(encodingKey, []byte(encoding.Name()))
	} else if recorded.Name() != encoding.Name() {
		return fault.WrongEncoding
	}

	SetDeriver(itemkey.New(encoding, itemkey.MaximumLength))
	return nil
}

// RecordedEncoding - the encoding stored with the database
//
// nil with no error means nothing is recorded and the balances pool is
// empty; balances written before the record existed are base64
func RecordedEncoding() (itemkey.Encoding, error) {
	metadata := storage.Pool.Metadata
	if nil == metadata {
		return nil, fault.NotInitialised
	}

	name := metadata.Get(encodingKey)
	if nil == name {
		elements, err := storage.Pool.Balances.NewFetchCursor().Fetch(1)
		if nil != err {
			return nil, err
		}
		if 0 != len(elements) {
			return itemkey.Base64, nil
		}
		return nil, nil
	}

	encoding, ok := itemkey.EncodingByName(string(name))
	if !ok {
		return nil, fault.WrongEncoding
	}
	return encoding, nil
}
