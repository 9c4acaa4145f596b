// Package verify gates webhook endpoints: the subscribe-time
// challenge/response handshake and per-delivery payload signatures.
package verify

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const subscribeMode = "subscribe"

// SignaturePrefix is how providers prefix the hex digest in the
// X-Hub-Signature-256 header.
const SignaturePrefix = "sha256="

// Challenge implements the subscribe handshake: the provider calls with a
// mode, its copy of the pre-shared token and a challenge value. The
// challenge must be echoed back verbatim iff the mode is "subscribe" and
// the token matches the configured secret.
func Challenge(mode, token, challenge, secret string) (string, bool) {
	if mode != subscribeMode {
		return "", false
	}
	if secret == "" || token != secret {
		return "", false
	}
	return challenge, true
}

// Signature checks an HMAC-SHA256 signature header against the raw
// request body. The comparison is constant time.
func Signature(appSecret string, body []byte, header string) bool {
	if appSecret == "" || header == "" {
		return false
	}
	if !strings.HasPrefix(header, SignaturePrefix) {
		return false
	}
	provided, err := hex.DecodeString(strings.TrimPrefix(header, SignaturePrefix))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write(body)
	expected := mac.Sum(nil)

	return hmac.Equal(provided, expected)
}

// Sign produces the signature header value for a body. Used by tests and
// by callers that need to forward signed payloads downstream.
func Sign(appSecret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write(body)
	return SignaturePrefix + hex.EncodeToString(mac.Sum(nil))
}
