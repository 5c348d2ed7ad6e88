// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNothingToServe is returned when no HTTP handler or listen address is
// configured.
var errNothingToServe = errors.New("no http handler or listen address to serve")
