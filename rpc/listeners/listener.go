// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

const (
	minConnectionCount = 1
)

// Listener - a started network service
type Listener interface {
	Serve() error
	Stop()
}
