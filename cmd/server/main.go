package main

import (
	"github.com/patternkit/lattice/internal/server"
	"github.com/patternkit/lattice/internal/util"
	"github.com/patternkit/lattice/pkg/logger"
	"github.com/patternkit/lattice/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
