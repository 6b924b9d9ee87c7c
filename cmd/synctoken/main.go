// Command synctoken mints a service token for the caller of /api/sync-verification.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"coffee-verifier/internal/pkg/config"
	"coffee-verifier/internal/pkg/jwt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	subject := flag.String("subject", "event-listener", "service name recorded as the token subject")
	flag.Parse()

	_ = godotenv.Load()

	var authCfg config.AuthConfig
	if err := envconfig.Process("", &authCfg); err != nil {
		slog.Error("failed to process env config", "error", err)
		os.Exit(1)
	}

	svc := jwt.NewService(authCfg.SyncTokenSecret, authCfg.SyncTokenIssuer, authCfg.SyncTokenDuration)
	token, err := svc.GenerateToken(*subject, jwt.ScopeSyncVerification)
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
