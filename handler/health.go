package handler

import (
	"github.com/kataras/iris/v12"
	"github.com/vislokaties/api/database"
	"go.uber.org/zap"
)

//Ok is a simple liveness endpoint for the service
func Ok(ctx iris.Context) {

	ctx.JSON(iris.Map{"status": "ok"})
}

type HealthHandler struct {
	DatasetController *database.DatasetController
}

//Ready reports ok only while the database answers
func (hh *HealthHandler) Ready(ctx iris.Context) {

	if err := hh.DatasetController.Ping(ctx.Request().Context()); err != nil {
		zap.S().Warnf("database ping failed: %s", err.Error())
		ctx.StatusCode(iris.StatusServiceUnavailable)
		ctx.JSON(iris.Map{"status": "unavailable"})
		return
	}
	ctx.JSON(iris.Map{"status": "ok"})
}
