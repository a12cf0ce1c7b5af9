// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding a request, before any service is
// called. Callers can match against them with [errors.Is].
var (
	// ErrInvalidID is returned when the {id} path segment is not a positive
	// integer.
	ErrInvalidID = errors.New("invalid id in request path")

	// ErrInvalidForm is returned when the request body cannot be parsed as
	// a url-encoded or multipart form.
	ErrInvalidForm = errors.New("invalid form")

	// ErrRequestTooLarge is returned when the body exceeds
	// [Settings.MaxUploadSize].
	ErrRequestTooLarge = errors.New("request body is too large")
)
