package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cortex-bank-server/internal/auth"
	"github.com/carson-networks/cortex-bank-server/internal/handlers/v1/account"
	"github.com/carson-networks/cortex-bank-server/internal/handlers/v1/status"
	"github.com/carson-networks/cortex-bank-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/cortex-bank-server/internal/handlers/v1/user"
	"github.com/carson-networks/cortex-bank-server/internal/logging"
	"github.com/carson-networks/cortex-bank-server/internal/service"
)

type Rest struct {
	Logger      *logrus.Logger
	Port        string
	Service     *service.Service
	Issuer      *auth.Issuer
	CORSOrigins []string
}

func (r *Rest) Serve() {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.buildHandler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

func (r *Rest) buildHandler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/health", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("Cortex Bank", "1.0.0"))
	r.registerHandlers(humaAPI)

	// Auth runs inside CORS so preflight requests never need a token.
	handler := AuthWrapper(r.Issuer, mux)
	handler = logging.RequestWrapper(r.Logger, handler)
	handler = CORSWrapper(r.CORSOrigins, handler)
	return handler
}

func (r *Rest) registerHandlers(humaAPI huma.API) {
	user.NewCreateUserHandler(r.Service.User).Register(humaAPI)
	user.NewListUsersHandler(r.Service.User).Register(humaAPI)
	user.NewAuthenticateUserHandler(r.Service.User, r.Issuer.TTL()).Register(humaAPI)

	account.NewFindAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewGetStatementHandler(r.Service.Transaction).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewCompleteTransactionHandler(r.Service.Transaction).Register(humaAPI)
}
