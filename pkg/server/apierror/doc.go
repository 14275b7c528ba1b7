// Package apierror defines the external error taxonomy of the RoboHub API:
// stable error codes, their HTTP statuses, and the JSON error envelope.
// Internal failures are projected onto this taxonomy at the HTTP boundary
// and never leak verification or storage internals beyond a message string.
package apierror
