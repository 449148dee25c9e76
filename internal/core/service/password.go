package service

import (
	"encoding/base64"
	"fmt"
)

// Base64Codec is the reversible credential transform carried over from the
// original system: Encode(p) is deterministic and Decode(Encode(p)) == p.
// It is obfuscation, not protection. Swap in a salted-hash PasswordCodec
// before exposing registration to real users.
type Base64Codec struct{}

func (Base64Codec) Encode(plain string) string {
	return base64.StdEncoding.EncodeToString([]byte(plain))
}

func (Base64Codec) Decode(encoded string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode credential: %w", err)
	}
	return string(b), nil
}
