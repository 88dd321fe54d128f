package components

import (
	"context"

	"raffle-draw/internal/domain/apikey"
	"raffle-draw/internal/infra/randomorg"
	"raffle-draw/internal/infra/reddit"
	"raffle-draw/internal/infra/rosterdoc"
	"raffle-draw/internal/pkg/backoff"
	"raffle-draw/internal/pkg/clock"
	"raffle-draw/internal/pkg/config"
	"raffle-draw/internal/pkg/metrics"
	"raffle-draw/internal/usecase/commands"
	"raffle-draw/internal/usecase/keyrotation"
	"raffle-draw/internal/usecase/roster"

	"go.uber.org/fx"
)

// ProviderModule wires the external collaborators: the content API, roster
// documents and the randomness provider behind the key ring.
var ProviderModule = fx.Module("provider",
	fx.Provide(
		fx.Annotate(
			NewRedditClient,
			fx.As(new(roster.ContentSource)),
		),
		fx.Annotate(
			NewRosterFetcher,
			fx.As(new(roster.DocumentFetcher)),
		),
		fx.Annotate(
			NewRandomOrgClient,
			fx.As(new(keyrotation.Provider)),
		),
		NewKeyRing,
		NewKeyRotationClient,
		fx.Annotate(
			func(c *keyrotation.Client) *keyrotation.Client { return c },
			fx.As(new(commands.RandomnessSource)),
			fx.As(new(keyrotation.StatusReporter)),
		),
		roster.NewResolver,
		fx.Annotate(
			func(r *roster.Resolver) *roster.Resolver { return r },
			fx.As(new(commands.ParticipantResolver)),
			fx.As(new(commands.PostLookup)),
		),
	),
)

func NewRedditClient(cfg config.Config) *reddit.Client {
	return reddit.NewClient(reddit.Config{
		BaseURL:          cfg.Reddit.BaseURL,
		UserAgent:        cfg.Reddit.UserAgent,
		Timeout:          cfg.Reddit.HTTPTimeout,
		BreakerFailures:  cfg.Reddit.BreakerFailures,
		BreakerOpenSpell: cfg.Reddit.BreakerOpenSpell,
	})
}

func NewRosterFetcher(lc fx.Lifecycle, cfg config.Config) *rosterdoc.Fetcher {
	f := rosterdoc.NewFetcher(rosterdoc.Config{
		Timeout:            cfg.Roster.HTTPTimeout,
		MaxBytes:           cfg.Roster.MaxDocumentBytes,
		GCSCredentialsFile: cfg.Roster.GCSCredentialsFile,
		AllowPrivateHosts:  cfg.Roster.AllowPrivateHosts,
	})
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return f.Close()
		},
	})
	return f
}

func NewRandomOrgClient(cfg config.Config) *randomorg.Client {
	return randomorg.NewClient(cfg.RandomOrg.APIURL, cfg.RandomOrg.HTTPTimeout)
}

func NewKeyRing(cfg config.Config, clk clock.Clock) (*apikey.Ring, error) {
	states := apikey.StatesFromSecrets(cfg.RandomOrg.APIKeys, cfg.RandomOrg.DailyQuota)
	return apikey.NewRing(states, cfg.RandomOrg.ResetHourUTC, clk)
}

func NewKeyRotationClient(provider keyrotation.Provider, ring *apikey.Ring, cfg config.Config, clk clock.Clock, m *metrics.Metrics) *keyrotation.Client {
	policy := backoff.Constant(cfg.RandomOrg.RetryInterval, cfg.RandomOrg.RetryJitter)
	return keyrotation.NewClient(provider, ring, policy, clk, m)
}
