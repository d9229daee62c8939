package models

import "github.com/gagliardetto/solana-go"

// Identity is the base58-encoded public key attributed to a caller or
// holder. It is stored as the canonical base58 string so it can serve
// directly as a map key and a database column.
type Identity string

// ParseIdentity validates that s is a well-formed base58 public key and
// returns it as an Identity.
func ParseIdentity(s string) (Identity, error) {
	if _, err := solana.PublicKeyFromBase58(s); err != nil {
		return "", err
	}
	return Identity(s), nil
}

// Valid reports whether the identity is a well-formed base58 public key.
func (id Identity) Valid() bool {
	_, err := solana.PublicKeyFromBase58(string(id))
	return err == nil
}

func (id Identity) String() string { return string(id) }
