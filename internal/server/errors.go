// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPHandler is returned when the server is built without an HTTP
// handler or listen address.
var errNoHTTPHandler = errors.New("http server requires a handler and an address")
