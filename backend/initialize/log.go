package initialize

import (
	"os"

	"helpdesk/backend/global"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	global.Logger = log.Output(cw)
}

// applyLogLevel picks the log level for the environment; dev gets debug so
// the auth diagnostics are visible locally.
func applyLogLevel(env string) {
	if env == "dev" {
		global.Logger = global.Logger.Level(zerolog.DebugLevel)
	} else {
		global.Logger = global.Logger.Level(zerolog.InfoLevel)
	}
}
