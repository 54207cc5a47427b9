// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEndpoint(t *testing.T) {
	valid := map[string]endpoint{
		"*:2130":          {network: "tcp", address: "[::]:2130"},
		" 127.0.0.1:2130": {network: "tcp4", address: "127.0.0.1:2130"},
		"[::1]:2131":      {network: "tcp6", address: "[::1]:2131"},
		"[fe80::1]:80":    {network: "tcp6", address: "[fe80::1]:80"},
	}
	for listen, expected := range valid {
		e, err := parseEndpoint(listen)
		assert.Nil(t, err, "rejected: %q", listen)
		assert.Equal(t, expected, e, "endpoint for: %q", listen)
	}
}
