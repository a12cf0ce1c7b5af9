// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the board's HTTP surface. It signs
// in through the login form, keeps the session cookie and drives the RPC
// facade, so scripts and the command-line client never deal with forms or
// cookies themselves.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ads-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BoardClient talks to a running board server.
type BoardClient interface {
	// Login submits the login form and keeps the session cookie for the
	// following calls.
	Login(ctx context.Context, login, password string) error

	// Logout ends the session on the server and forgets the cookie.
	Logout(ctx context.Context) error

	// SessionToken returns the kept session cookie value, empty before Login.
	SessionToken() string

	// Version fetches the server build information.
	Version(ctx context.Context) (models.AppInfoView, error)

	// Call performs one RPC facade call as the signed-in user, or
	// anonymously before Login. Failed calls are reported in the response,
	// the error is for transport failures only.
	Call(ctx context.Context, request models.RPCRequest) (models.RPCResponse, error)
}
