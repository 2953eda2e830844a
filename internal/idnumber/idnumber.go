// Package idnumber issues the durable human-facing identifier printed on
// every ID card: "ID" + 4-digit year + a 6-digit random number.
package idnumber

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
)

const (
	min6 = 100000
	max6 = 999999

	// maxAttempts bounds the collision retry loop. The keyspace is 900k per
	// year, so hitting the cap means something is badly wrong with the table.
	maxAttempts = 100
)

var ErrExhausted = errors.New("idnumber: could not find a free id number")

// ExistsFunc reports whether an id number is already taken.
type ExistsFunc func(idNumber string) (bool, error)

// Generate returns a fresh id number that exists did not report as taken.
// The pre-check only keeps the collision probability low; the database
// unique index stays the real guarantee, so callers must still treat a
// duplicate-key insert as retryable.
func Generate(now time.Time, exists ExistsFunc) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(max6-min6+1))
		if err != nil {
			return "", fmt.Errorf("idnumber: %w", err)
		}
		candidate := fmt.Sprintf("ID%04d%06d", now.Year(), min6+n.Int64())

		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrExhausted
}
