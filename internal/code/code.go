// Package code generates short human-shareable room codes.
package code

import (
	"crypto/rand"
	"math/big"
)

const (
	charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	Length  = 5
)

// Generate returns a 5-character uppercase alphanumeric code. 36^5 is about
// 60M codes, so birthday collisions among live rooms are negligible at this
// scale; the hub still retries against the registry before inserting.
func Generate() (string, error) {
	b := make([]byte, Length)
	for i := 0; i < Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[num.Int64()]
	}
	return string(b), nil
}
