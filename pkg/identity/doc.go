// Package identity defines the authenticated identity attached to each
// request and its request-context plumbing.
package identity
