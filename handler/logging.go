package handler

import (
	"time"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

func RequestLogger(ctx iris.Context) {

	start := time.Now()
	ctx.Next()
	zap.L().Info("request",
		zap.String("method", ctx.Method()),
		zap.String("path", ctx.Path()),
		zap.Int("status", ctx.GetStatusCode()),
		zap.Duration("took", time.Since(start)),
	)
}
