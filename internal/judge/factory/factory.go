package factory

import (
	"fmt"

	"gitlab.com/judgehub-2025.net/internal/core/ports/primary"
	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
	"gitlab.com/judgehub-2025.net/internal/judge"
	"gitlab.com/judgehub-2025.net/internal/judge/aoj"
	"gitlab.com/judgehub-2025.net/internal/judge/atcoder"
	"gitlab.com/judgehub-2025.net/internal/judge/codeforces"
	"gitlab.com/judgehub-2025.net/internal/judge/yosupo"
	"gitlab.com/judgehub-2025.net/internal/judge/yukicoder"
)

// ClientFactory hands out fresh platform clients. Each NewRun call
// builds new client instances so their populate-once caches start
// empty for the next sync cycle.
type ClientFactory struct {
	logger primary.Logger
}

func NewClientFactory(logger primary.Logger) *ClientFactory {
	return &ClientFactory{logger: logger}
}

// Client builds a fresh client for one platform.
func (f *ClientFactory) Client(platform domain.Platform) (secondary.JudgeClient, error) {
	fetcher := judge.NewFetcher(f.logger)
	switch platform {
	case domain.PlatformAtcoder:
		return atcoder.NewClient(fetcher), nil
	case domain.PlatformCodeforces:
		return codeforces.NewClient(fetcher), nil
	case domain.PlatformYukicoder:
		return yukicoder.NewClient(fetcher), nil
	case domain.PlatformAoj:
		return aoj.NewClient(fetcher), nil
	case domain.PlatformLibraryChecker:
		return yosupo.NewClient(fetcher), nil
	default:
		return nil, fmt.Errorf("no client for platform %q", platform)
	}
}

// All builds one fresh client per known platform.
func (f *ClientFactory) All() []secondary.JudgeClient {
	platforms := domain.AllPlatforms()
	clients := make([]secondary.JudgeClient, 0, len(platforms))
	for _, platform := range platforms {
		client, err := f.Client(platform)
		if err != nil {
			continue
		}
		clients = append(clients, client)
	}
	return clients
}
