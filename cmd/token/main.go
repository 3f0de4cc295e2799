// Command token mints an HS256 editor token for the catalogue write routes.
// It reads the same configuration as the server, so the sign key and issuer
// match:
//
//	APP_TOKEN_SIGN_KEY=secret token -editor-id 7 -token-duration 2h
//
// The signed token is printed to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/species-sync/internal/config"
	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/internal/utils"
)

func main() {
	log := logger.NewLogger("species-sync-token")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateTokenTool(); err != nil {
		log.Fatal().Err(err).Msg("sign key, issuer, duration and -editor-id are required")
	}

	token, err := utils.GenerateJWTToken(cfg.App.TokenIssuer, cfg.App.TokenEditorID, cfg.App.TokenDuration, cfg.App.TokenSignKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error signing token")
	}

	fmt.Fprintln(os.Stdout, token.SignedString)
}
