// Package audit emits structured log lines for security-relevant events:
// authentication attempts, device commands, and wallet links.
package audit
