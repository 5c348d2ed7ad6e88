// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime of the headless sync client.
//
// It wires client services and background workers into a single process
// lifecycle.
package client
