package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/makerbooks/makerbooks/internal/model"
)

// DomainState is the domain prefix for state hashes. The version suffix
// allows the serialization to evolve without old and new hashes ever
// colliding.
const DomainState = "makerbooks/state/v1"

// StateHash computes the content-addressed identity of a CalculatorState.
//
// The hash covers the full canonical serialization of the state, every
// field the engine reads, so it is safe to use as a cache key for
// computed metrics: any edit that could change an output changes the
// hash.
func StateHash(state model.CalculatorState) (string, error) {
	canonical, err := MarshalDocument(state)
	if err != nil {
		return "", fmt.Errorf("StateHash: %w", err)
	}
	return hashWithDomain(DomainState, canonical), nil
}

// hashWithDomain computes SHA-256 with domain separation:
// SHA256(domain + 0x00 + data). The null byte prevents domain/data
// boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
