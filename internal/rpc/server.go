package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/editions/internal/catalog"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

const namespace = "editions"

func New(logger *slog.Logger, manager *catalog.Manager) *zenrpc.Server {
	rpcService := NewEditionService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(namespace, rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "editions", nil))

	return rpcServer
}
