package utils

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"fileanissue/core"
)

// HubSignatureHeader carries the sha1=<hex> HMAC of the raw body on Workplace deliveries.
const HubSignatureHeader = "X-Hub-Signature"

// ComputeHubSignature returns the header value a delivery of body signed with secret carries.
func ComputeHubSignature(secret string, body []byte) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	return "sha1=" + hex.EncodeToString(mac.Sum(nil))
}

// VerifyHubSignature checks header against HMAC-SHA1(secret, body).
// An empty header yields core.ErrMissingSignature so callers can decide whether unsigned
// deliveries are acceptable.
func VerifyHubSignature(secret string, body []byte, header string) error {
	if header == "" {
		return core.ErrMissingSignature
	}

	algo, signatureHash, found := strings.Cut(header, "=")
	if !found || !strings.EqualFold(algo, "sha1") {
		return fmt.Errorf("unsupported signature format %q: %w", header, core.ErrSignatureMismatch)
	}

	expected := ComputeHubSignature(secret, body)
	if !hmac.Equal([]byte(expected), []byte("sha1="+strings.ToLower(signatureHash))) {
		return core.ErrSignatureMismatch
	}

	return nil
}
