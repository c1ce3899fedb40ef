// Package crypto implements VARC's crypto provider: PBKDF2-HMAC-SHA256
// key derivation, AES-256-CBC with PKCS#7 padding, SHA-256 hashing,
// constant-time checksum comparison, CSPRNG-backed random generation,
// and secure buffer wiping. An AES-256-GCM pair is also provided for
// future use but is not wired into the current pipeline.
package crypto
