// Package id assigns product identifiers and run identifiers.
package id

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Strategy names accepted by configuration.
const (
	StrategyStable = "stable"
	StrategyRandom = "random"
	StrategyLedger = "ledger"
)

// Namespace is the UUIDv5 namespace for product ids. Changing it changes every stable id.
var Namespace = uuid.MustParse("6f2c1e84-5a7d-5b0e-9c3a-1d4e8b7f2a60")

// Assigner maps a product key (category/slug) to its primary key.
type Assigner interface {
	Assign(ctx context.Context, key string) (string, error)
}

// Stable derives ids as UUIDv5 of the key, so re-runs produce the same ids.
type Stable struct{}

// Assign implements Assigner.
func (Stable) Assign(_ context.Context, key string) (string, error) {
	return StableFor(key), nil
}

// StableFor returns the stable id of key.
func StableFor(key string) string {
	return uuid.NewSHA1(Namespace, []byte(key)).String()
}

// Random mints a fresh UUIDv4 per call. Re-runs produce different ids.
type Random struct{}

// Assign implements Assigner.
func (Random) Assign(_ context.Context, _ string) (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return u.String(), nil
}

// Generate creates a prefixed unique ID using NanoID.
// Format: prefix-nanoid (e.g., "run-V1StGXR8_Z5jdHi6B-myT").
// Used for run identifiers in logs and artifact headers.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is like Generate but panics if ID generation fails.
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}
