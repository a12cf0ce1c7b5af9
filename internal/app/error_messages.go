// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user facing messages shared by the HTTP surface and
// the RPC facade. Internal error text never reaches a client; one of these
// messages is sent instead.
package app

const (
	// MsgInvalidDataProvided is sent when a form or RPC argument fails
	// validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is sent for every failed login. It does not
	// tell an unknown login apart from a wrong password.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is sent when registration hits a taken login.
	MsgLoginAlreadyExists = "login already exists"

	MsgAuthenticationRequired = "authentication required"
	MsgAccessDenied           = "access denied"
	MsgNotFound               = "not found"
	MsgRequestTooLarge        = "request body is too large"

	// MsgInternalServerError replaces any storage or driver failure.
	MsgInternalServerError = "internal server error"
)
