// Package digest provides the cryptographic digest collaborator used by the
// md5sum and sha256sum builtins.
package digest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Digester computes hex-encoded digests. Implementations may be backed by a
// remote service, so calls take a context.
type Digester interface {
	Digest(ctx context.Context, algorithm string, data []byte) (string, error)
}

type digester struct{}

var _ Digester = digester{}

// New returns the default Digester.
func New() Digester {
	return digester{}
}

// Digest computes the named digest of data.
//
// "md5" is intentionally routed to SHA-256 for compatibility with the
// original tool layer, which had no MD5 primitive available. The output must
// not be treated as interoperable with real MD5.
func (digester) Digest(ctx context.Context, algorithm string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch algorithm {
	case "sha256", "md5":
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:]), nil
	default:
		return "", fmt.Errorf("unsupported digest algorithm %q", algorithm)
	}
}
