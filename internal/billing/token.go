package billing

import (
	"crypto/rand"
	"fmt"
	"io"
)

// DefaultLinkTokenLength is the length of locally generated payment-link tokens.
const DefaultLinkTokenLength = 10

const linkAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// maxUnbiasedByte is the largest multiple of len(linkAlphabet) that fits in a
// byte. Bytes at or above it are discarded so every character is equally likely.
const maxUnbiasedByte = 256 - 256%len(linkAlphabet)

// GenerateLinkToken returns a random URL-safe token of length n.
// Ambiguous characters (0, O, 1, l, I) are excluded.
func GenerateLinkToken(n int) (string, error) {
	return generateLinkToken(rand.Reader, n)
}

func generateLinkToken(r io.Reader, n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n+n/4+1)
	for len(out) < n {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("billing: generate link token: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxUnbiasedByte {
				continue
			}
			out = append(out, linkAlphabet[int(b)%len(linkAlphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
