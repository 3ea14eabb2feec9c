package app

import (
	"cran-recipes/internal/adapters"
	"cran-recipes/internal/ports"
)

type Service struct {
	Forge    ports.ForgeQueryPort
	HTTP     ports.HTTPPort
	Manifest ports.ManifestPort
	Console  ports.ConsolePort
}

func NewService() Service {
	httpClient := adapters.NewHTTPClientAdapter(0, 0, 0)
	return Service{
		Forge:    adapters.NewGitHubForgeAdapter(httpClient),
		HTTP:     httpClient,
		Manifest: adapters.NewTarballManifestAdapter(),
		Console:  adapters.NewConsoleLogAdapter(),
	}
}
