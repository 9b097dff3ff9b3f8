package main

import (
	"log"
	"os"

	"github.com/trezcool/darasa/apps/gateway/echoapi"
	"github.com/trezcool/darasa/core"
	logsvc "github.com/trezcool/darasa/services/logger"
	dummygw "github.com/trezcool/darasa/storage/gateway/dummy"
)

func main() {
	conf := core.NewConfig()
	std := log.New(os.Stdout, "GATEWAY : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewStdLogger(std)

	db, err := dummygw.Open()
	if err != nil {
		logger.Fatal("opening store failed", err)
	}
	if err := seed(db); err != nil {
		logger.Fatal("seeding store failed", err)
	}

	app := echoapi.NewServer(
		&echoapi.Options{
			Address: ":8080",
			DB:      db,
			Logger:  logger,
			Config:  conf,
		},
	)
	app.Start()
}
