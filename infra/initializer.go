package infra

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func Initialize() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found; using environment variables")
	}
}
