package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

const (
	NSPosts      = "posts"
	NSCategories = "categories"
)

func New(logger *slog.Logger, reader Reader) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(NSPosts, NewPostsService(reader))
	rpcServer.Register(NSCategories, NewCategoriesService(reader))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "blogicum", nil))

	return rpcServer
}
