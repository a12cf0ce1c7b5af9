// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the board.
//
// It signs in with the configured credentials, runs one command against the
// RPC facade and prints the response record as JSON.
package client
