package main

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/recover"
	"github.com/spf13/viper"
	"github.com/vislokaties/api/config"
	"github.com/vislokaties/api/database"
	"github.com/vislokaties/api/handler"
	"github.com/vislokaties/api/web"
	"go.uber.org/zap"
)

func main() {

	dc, err := config.Preflight()
	if err != nil {
		zap.L().Fatal("preflight failed", zap.Error(err))
	}
	defer dc.Close()

	app := vislokApi(dc)
	if err := app.Listen(":" + viper.GetString("PORT")); err != nil {
		zap.L().Error("server stopped", zap.Error(err))
	}
}

func vislokApi(dc *database.DatasetController) *iris.Application {

	app := iris.New()
	app.Use(recover.New())
	app.Use(handler.RequestLogger)

	app.RegisterView(iris.HTML(web.Templates, ".html").RootDir("templates"))

	//page shell
	app.Get("/", handler.Index)

	//healthcheck endpoints
	hh := handler.HealthHandler{DatasetController: dc}
	app.Get("/healthz", handler.Ok)
	app.Get("/health", hh.Ready)

	//dataset endpoint
	dh := handler.DatasetHandler{DatasetController: dc}
	datasetEndpoint := app.Party("/api/db")
	{
		datasetEndpoint.Get("/", dh.GetDataset)
		datasetEndpoint.Post("/", dh.SaveDataset)
		datasetEndpoint.Get("/geojson", dh.GetGeoJSON)
	}
	return app
}
