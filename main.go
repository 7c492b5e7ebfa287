package main

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cortex-bank-server/api"
	"github.com/carson-networks/cortex-bank-server/internal/auth"
	"github.com/carson-networks/cortex-bank-server/internal/config"
	"github.com/carson-networks/cortex-bank-server/internal/logging"
	"github.com/carson-networks/cortex-bank-server/internal/operator"
	"github.com/carson-networks/cortex-bank-server/internal/service"
	"github.com/carson-networks/cortex-bank-server/internal/storage"
)

const numOperatorWorkers = 4

func main() {
	logger := logging.SetupLogging()
	logrus.Info("cortex-bank-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(context.Background(), envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, numOperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	issuer := auth.NewIssuer(envConfig.JWTSecret, envConfig.JWTTTL)
	svc := service.NewService(dbStorage, issuer, delegator)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:      logger,
			Port:        envConfig.Port,
			Service:     svc,
			Issuer:      issuer,
			CORSOrigins: envConfig.CORSOrigins,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
