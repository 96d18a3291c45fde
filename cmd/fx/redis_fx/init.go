package redisfx

import (
	"go.uber.org/fx"

	"yatra/internal/infra"
)

var Module = fx.Provide(
	infra.NewRedisClient)
