// Package challenge implements the challenge-response arithmetic of the
// bossa.pl login form.
//
// The portal never receives the PIN: it sends a one-time hex challenge and
// expects HMAC-SHA1(key=challenge, msg=SHA1(PIN+NIK)) back, hex encoded.
package challenge

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	"github.com/etnz/bossa"
)

// Decode converts the hex challenge into its raw bytes, two characters at a time.
func Decode(s string) ([]byte, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", bossa.ErrMalformedChallenge, s, err)
	}
	return raw, nil
}

// Proof computes the login proof for a decoded challenge.
//
// The server silently rejects any variation (order, encoding), the secret is
// the raw SHA1 digest of pin immediately followed by nik.
func Proof(challenge []byte, pin, nik string) string {
	secret := sha1.Sum([]byte(pin + nik))
	mac := hmac.New(sha1.New, challenge)
	mac.Write(secret[:])
	return hex.EncodeToString(mac.Sum(nil))
}
