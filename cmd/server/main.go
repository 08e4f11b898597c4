package main

import (
	"github.com/histomap/backend/internal/server"
	"github.com/histomap/backend/internal/util"
	"github.com/histomap/backend/pkg/logger"
	"github.com/histomap/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)
	consoleLogger := console.New(console.Params{
		Debug: debug,
	})
	ring := logger.NewRing(int(util.GetEnvNumeric("LOG_RING_SIZE", 256)))
	logger.Init(consoleLogger, ring)

	server.Init(ring)
}
