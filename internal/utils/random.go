package utils // package utils provides small helpers shared across the service

import (
    "crypto/rand"
    "encoding/hex"
)

// RandomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data. It is used to mint browser
// session identifiers, which must be unguessable since they key the
// server-side credential snapshots.
func RandomHex(n int) (string, error) {
    buf := make([]byte, n)
    if _, err := rand.Read(buf); err != nil {
        return "", err
    }
    return hex.EncodeToString(buf), nil
}
