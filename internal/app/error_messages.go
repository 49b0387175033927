// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the cloud
// endpoint handlers and by the sync client when it interprets their replies.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place lets the client map a response body back to the
// same sentinel error the server started from.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when an upload or download request
	// carries an empty user id.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgNoSessionIDProvided is returned when an upload carries an empty
	// session id.
	MsgNoSessionIDProvided = "no session ID provided"

	// MsgNoDataProvided is returned when an upload has no data object.
	MsgNoDataProvided = "no data provided"

	// MsgKeyNotAllowed is returned when an upload carries a key outside the
	// sync allow-list.
	MsgKeyNotAllowed = "data key is not allowed"

	// MsgHashMismatch is returned when the integrity hash of an upload does
	// not match its data.
	MsgHashMismatch = "hash mismatch"

	// MsgAccessDenied is returned when the authenticated user addresses the
	// record of a different user.
	MsgAccessDenied = "access denied"

	// MsgPayloadTooLarge is returned when a request body, after
	// decompression, exceeds the server's cap.
	MsgPayloadTooLarge = "payload too large"
)
