package random

import (
	"crypto/rand"
)

// Alphabet leaves out I, O, 0 and 1. Its length of 32 divides 256 evenly,
// so mapping a random byte onto it carries no modulo bias.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func Code(length int) (string, error) {
	code := make([]byte, length)

	if _, err := rand.Read(code); err != nil {
		return "", err
	}

	for i := range code {
		code[i] = Alphabet[int(code[i])%len(Alphabet)]
	}

	return string(code), nil
}
