package core

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"cran-recipes/internal/shared"
)

// SHA256File computes the hex-encoded sha256 digest of a local file.
// The file is read as raw bytes so the digest is stable across
// platforms.
func SHA256File(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", shared.FileAccessError(path, err)
	}
	defer file.Close()
	digest := sha256.New()
	if _, err := io.Copy(digest, file); err != nil {
		return "", shared.FileAccessError(path, err)
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}
