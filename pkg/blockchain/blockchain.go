package blockchain

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidAddress is returned for malformed Ethereum addresses
var ErrInvalidAddress = errors.New("invalid ethereum address")

// ErrInvalidSignature is returned for malformed signatures
var ErrInvalidSignature = errors.New("invalid signature format")

// ErrInvalidTxHash is returned for malformed transaction hashes
var ErrInvalidTxHash = errors.New("invalid transaction hash format")

// Service handles wallet verification and on-chain lookups
type Service struct {
	providerURL     string
	contractAddress string
}

// NewService creates a Service. Leaving contractAddress empty marks the
// on-chain features unconfigured.
func NewService(providerURL, contractAddress string) *Service {
	return &Service{
		providerURL:     providerURL,
		contractAddress: contractAddress,
	}
}

// Configured reports whether on-chain lookups can be served.
func (s *Service) Configured() bool {
	return s.providerURL != "" && s.contractAddress != ""
}

// IsValidAddress checks the 0x-prefixed 20-byte hex address format.
func IsValidAddress(address string) bool {
	if len(address) != 42 || address[:2] != "0x" {
		return false
	}
	_, err := hex.DecodeString(address[2:])
	return err == nil
}

// ValidTxHash checks the 0x-prefixed 32-byte hex hash format.
func ValidTxHash(txHash string) bool {
	if len(txHash) != 66 || txHash[:2] != "0x" {
		return false
	}
	_, err := hex.DecodeString(txHash[2:])
	return err == nil
}

// GenerateNonce produces a random 16-character hex nonce.
func GenerateNonce() string {
	var buf [8]byte
	rand.Read(buf[:])
	return fmt.Sprintf("%016x", binary.BigEndian.Uint64(buf[:]))
}

// SignMessage builds the message a wallet signs to prove ownership.
func SignMessage(nonce string) string {
	return fmt.Sprintf(
		"Welcome to RoboHub!\n\n"+
			"Click to sign in and accept the Terms of Service.\n\n"+
			"This request will not trigger a blockchain transaction or cost any gas fees.\n\n"+
			"Nonce: %s",
		nonce,
	)
}

// VerifySignature checks a wallet signature over a message.
// EIP-191 signatures are 65 bytes hex encoded with a 0x prefix.
// TODO: perform ECDSA public key recovery against the address once an
// eth client library is wired in; currently only the format is checked.
func (s *Service) VerifySignature(message, signature, address string) (bool, error) {
	if len(signature) != 132 || signature[:2] != "0x" {
		return false, ErrInvalidSignature
	}
	if _, err := hex.DecodeString(signature[2:]); err != nil {
		return false, ErrInvalidSignature
	}
	if !IsValidAddress(address) {
		return false, ErrInvalidAddress
	}
	return true, nil
}

// HashSHA256 returns the hex SHA-256 digest of data.
func HashSHA256(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// TxStatus reports the on-chain state of a transaction
type TxStatus struct {
	Hash          string `json:"hash"`
	Status        string `json:"status"`
	Confirmations int    `json:"confirmations"`
	BlockNumber   *int64 `json:"block_number,omitempty"`
}

// VerifyTransaction checks a transaction hash. Without a provider query
// the transaction is reported as pending.
func (s *Service) VerifyTransaction(txHash string) (*TxStatus, error) {
	if !ValidTxHash(txHash) {
		return nil, ErrInvalidTxHash
	}
	return &TxStatus{
		Hash:          txHash,
		Status:        "pending",
		Confirmations: 0,
	}, nil
}

// TokenBalance reports an address's platform token balance
type TokenBalance struct {
	Address  string `json:"address"`
	Balance  string `json:"balance"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// TokenBalance looks up the platform token balance for an address.
func (s *Service) TokenBalance(address string) (*TokenBalance, error) {
	if !IsValidAddress(address) {
		return nil, ErrInvalidAddress
	}
	return &TokenBalance{
		Address:  address,
		Balance:  "0",
		Symbol:   "RBH",
		Decimals: 18,
	}, nil
}
