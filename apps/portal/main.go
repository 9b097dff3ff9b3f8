package main

import (
	"log"
	"os"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/session"
	logsvc "github.com/trezcool/darasa/services/logger"
	"github.com/trezcool/darasa/storage/gateway"
)

func main() {
	defer os.Exit(0)

	conf := core.NewConfig()
	std := log.New(os.Stdout, "PORTAL : ", log.LstdFlags|log.Lmicroseconds)

	var logger core.Logger
	if conf.Debug || conf.RollbarToken == "" {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	sess := session.New(conf, logger, gateway.NewClient(conf))

	cli := commandLine{sess: sess, out: os.Stdout}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			std.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
