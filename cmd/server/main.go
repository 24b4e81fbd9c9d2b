package main

import (
	"github.com/Puss-M/Domino-Agent/internal/server"
	"github.com/Puss-M/Domino-Agent/internal/util"
	"github.com/Puss-M/Domino-Agent/pkg/logger"
	"github.com/Puss-M/Domino-Agent/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
		JSON:  util.GetEnv("LOG_FORMAT") == "json",
	})
	logger.Init(consoleLogger)

	server.Init()
}
