// Package http implements the HTTP surface of the board.
//
// Pages are answered with JSON view models from the models package; the
// HTML renderer consuming them lives outside this module. Form submissions
// redirect with 302 Found on success. The session cookie is resolved once
// per request by withSession, and every handler reads the identity from
// the request context.
package http
