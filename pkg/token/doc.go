// Package token issues and verifies the bearer tokens used by the RoboHub
// API. Tokens are compact HS256 JWTs carrying the subject, issuance and
// expiry timestamps, and an optional role tag.
package token
