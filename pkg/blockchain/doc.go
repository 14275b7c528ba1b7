// Package blockchain handles wallet signature verification, nonce
// generation, and transaction lookups for the payment flow.
package blockchain
