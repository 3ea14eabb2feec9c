package core

import (
	"context"
	"strings"

	"cran-recipes/internal/ports"
	"cran-recipes/internal/shared"
	"cran-recipes/internal/types"
)

// VersionResolver turns a requested version into the concrete forge
// ref to fetch.
type VersionResolver struct {
	forge ports.ForgeQueryPort
}

func NewVersionResolver(forge ports.ForgeQueryPort) VersionResolver {
	return VersionResolver{forge: forge}
}

// Resolve returns the (version, ref) pair for the request. An empty
// requested version resolves to the forge's latest tag; otherwise the
// ref must match the version literally or under the v-prefix
// convention.
func (r VersionResolver) Resolve(ctx context.Context, repoURL string, requested string) (types.ResolvedRef, error) {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		tag, err := r.forge.LatestRef(ctx, repoURL)
		if err != nil {
			return types.ResolvedRef{}, err
		}
		return types.ResolvedRef{
			Version: strings.TrimPrefix(tag, "v"),
			Ref:     tag,
		}, nil
	}
	for _, candidate := range []string{requested, "v" + requested} {
		exists, err := r.forge.RefExists(ctx, repoURL, candidate)
		if err != nil {
			return types.ResolvedRef{}, err
		}
		if exists {
			return types.ResolvedRef{Version: requested, Ref: candidate}, nil
		}
	}
	return types.ResolvedRef{}, shared.VersionNotFoundError(repoURL, requested)
}
