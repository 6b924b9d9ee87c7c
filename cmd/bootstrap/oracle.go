package bootstrap

import (
	"log/slog"
	"net/http"

	"coffee-verifier/internal/infra/oracle"
	"coffee-verifier/internal/pkg/config"
	"coffee-verifier/internal/usecase/commands"

	"go.uber.org/fx"
)

var OracleModule = fx.Module("oracle",
	fx.Provide(
		NewOracleJob,
		NewOracleClient,
	),
)

func NewOracleJob(cfg config.Config) (commands.OracleJob, error) {
	profile, err := oracle.LoadProfile(cfg.Oracle.ProfilePath)
	if err != nil {
		return commands.OracleJob{}, err
	}
	slog.Info("oracle profile loaded", "name", profile.Name, "don_id", profile.DonID)
	return profile.Job(), nil
}

func NewOracleClient(cfg config.Config) commands.OracleClient {
	if cfg.Oracle.Mode == config.OracleModeHTTP {
		slog.Info("oracle gateway client enabled", "gateway_url", cfg.Oracle.GatewayURL)
		return oracle.NewHTTPClient(oracle.HTTPClientConfig{
			GatewayURL: cfg.Oracle.GatewayURL,
			APIKey:     cfg.Oracle.APIKey,
			Timeout:    cfg.Oracle.Timeout,
			MaxRetries: cfg.Oracle.MaxRetries,
		}, &http.Client{})
	}
	return oracle.NewSimulatedClient()
}
