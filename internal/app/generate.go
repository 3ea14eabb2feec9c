package app

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"cran-recipes/internal/adapters"
	"cran-recipes/internal/core"
	"cran-recipes/internal/shared"
	"cran-recipes/internal/types"
)

// Generate runs the full resolution pipeline for one package: ref
// resolution, archive download, checksum, manifest extraction,
// dependency translation, and recipe assembly. Every stage failure
// aborts the request with that stage's typed error; no partial record
// is ever returned.
func (s Service) Generate(ctx context.Context, cfg types.Config) (GenerateResult, error) {
	cfg.URL = strings.TrimSpace(cfg.URL)
	if err := cfg.Validate(); err != nil {
		return GenerateResult{}, err
	}
	switch cfg.Kind {
	case "", types.SourceKindForge:
	default:
		return GenerateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeUnimplemented).
			WithMsg(fmt.Sprintf("source kind %s is not supported", cfg.Kind))
	}
	assert.NotEmpty(ctx, cfg.URL, "forge url must be set")

	resolver := core.NewVersionResolver(s.Forge)
	s.Console.Msg(fmt.Sprintf("Resolving ref for %s", cfg.URL))
	resolved, err := resolver.Resolve(ctx, cfg.URL, cfg.Version)
	if err != nil {
		return GenerateResult{}, err
	}
	log.Debug().Str("version", resolved.Version).Str("ref", resolved.Ref).Msg("ref resolved")

	pkgName := shared.RepoName(cfg.URL)
	archiveURL := core.ArchiveURL(cfg.URL, resolved.Ref)
	s.Console.Msg(fmt.Sprintf("Downloading %s", archiveURL))
	downloader := adapters.NewDownloadAdapter(s.HTTP)
	archivePath, err := downloader.Download(ctx, archiveURL, pkgName, resolved.Ref)
	if err != nil {
		return GenerateResult{}, err
	}

	checksum, err := core.SHA256File(archivePath)
	if err != nil {
		return GenerateResult{}, err
	}

	s.Console.Msg(fmt.Sprintf("Reading package metadata from %s", archivePath))
	manifest, err := s.Manifest.Extract(archivePath)
	if err != nil {
		return GenerateResult{}, err
	}
	// The manifest-declared name wins over the repository name.
	if manifest.Name() != "" {
		pkgName = manifest.Name()
	}

	assembler := core.NewAssembler()
	record, comment, err := assembler.Assemble(resolved, manifest, checksum, archiveURL, cfg.URL)
	if err != nil {
		return GenerateResult{}, err
	}

	result := GenerateResult{
		PackageName: pkgName,
		Version:     resolved.Version,
		Ref:         resolved.Ref,
		ArchivePath: archivePath,
		Record:      record,
		Comment:     comment,
	}
	if strings.TrimSpace(cfg.OutputDir) != "" {
		writer := adapters.NewRecipeFileAdapter(cfg.OutputDir)
		path, err := writer.WriteRecipe(record, comment, pkgName)
		if err != nil {
			return GenerateResult{}, err
		}
		result.RecipePath = path
		s.Console.Msg(fmt.Sprintf("Recipe written to %s", path))
	}
	return result, nil
}
