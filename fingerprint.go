package gocomp

import (
	"encoding/hex"

	json "github.com/goccy/go-json"
	"github.com/zeebo/blake3"
)

// Fingerprint returns the BLAKE3-256 digest, hex encoded, of the canonical
// JSON encoding of emissions. Equal emission sequences give equal
// fingerprints.
func Fingerprint(emissions []Emission) (string, error) {
	if emissions == nil {
		emissions = []Emission{}
	}
	data, err := json.Marshal(emissions)
	if err != nil {
		return "", err
	}
	return Digest(data), nil
}

// Digest returns the hex BLAKE3-256 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
