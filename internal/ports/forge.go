package ports

import "context"

// ForgeQueryPort answers read-only questions about refs on a hosted
// version-control forge.
type ForgeQueryPort interface {
	// LatestRef returns the most recent release tag of the repository.
	LatestRef(ctx context.Context, repoURL string) (string, error)

	// RefExists reports whether the candidate tag exists on the forge.
	RefExists(ctx context.Context, repoURL string, candidate string) (bool, error)
}
