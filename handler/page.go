package handler

import (
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

//Index renders the map shell, data is fetched client side from /api/db
func Index(ctx iris.Context) {

	if err := ctx.View("index.html"); err != nil {
		zap.S().Errorf("error rendering index: %s", err.Error())
		ctx.StatusCode(iris.StatusInternalServerError)
	}
}
