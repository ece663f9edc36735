//go:build wireinject

package main

import (
	"context"
	"io"

	"github.com/google/wire"
)

func initializeApp(ctx context.Context, path ConfigPath, s Seed, out io.Writer) (*App, func(), error) {
	wire.Build(appSet)
	return nil, nil, nil
}
