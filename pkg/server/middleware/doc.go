// Package middleware extracts authenticated identities from inbound
// requests and enforces role requirements.
//
// Extraction comes in three postures: required (Authenticate / Required),
// optional (AuthenticateOptional / Optional, which tolerates anonymity and
// converts every failure into absence), and role-gated (RequireRole /
// Admin). A successful extraction is cached in the request context, so
// repeated extraction within one request is idempotent and free.
package middleware
