package handler

import (
	"github.com/kataras/iris/v12"
	"github.com/paulmach/orb"
	"github.com/vislokaties/api/database"
	"github.com/vislokaties/api/encoding"
	"go.uber.org/zap"
)

const errNotAnObject = "Body moet JSON object zijn."

type DatasetHandler struct {
	DatasetController *database.DatasetController
}

//GetDataset writes the stored payload as is
func (dh *DatasetHandler) GetDataset(ctx iris.Context) {

	dataset, err := dh.DatasetController.GetOrCreateDefault(ctx.Request().Context())
	if err != nil {
		zap.S().Errorf("error loading dataset: %s", err.Error())
		ctx.Problem(iris.NewProblem().Type("/api/db").Detail("database issue").Status(iris.StatusInternalServerError))
		return
	}
	ctx.ContentType("application/json")
	ctx.WriteString(dataset.Payload)
}

//SaveDataset replaces the whole payload with the request body, no merging
func (dh *DatasetHandler) SaveDataset(ctx iris.Context) {

	// non json content types are treated like a missing body
	body, err := ctx.GetBody()
	if err != nil || !encoding.IsJSONContentType(ctx.GetHeader("Content-Type")) || !encoding.IsJSONObject(body) {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"error": errNotAnObject})
		return
	}

	dataset, err := dh.DatasetController.ReplaceDefault(ctx.Request().Context(), string(encoding.Compact(body)))
	if err != nil {
		zap.S().Errorf("error saving dataset: %s", err.Error())
		ctx.Problem(iris.NewProblem().Type("/api/db").Detail("database issue").Status(iris.StatusInternalServerError))
		return
	}

	ctx.JSON(iris.Map{
		"status":     "ok",
		"updated_at": encoding.FormatTimestamp(dataset.UpdatedAt),
	})
}

//GetGeoJSON exports steks and rigs as a FeatureCollection, optionally filtered by ?bbox=minlon,minlat,maxlon,maxlat
func (dh *DatasetHandler) GetGeoJSON(ctx iris.Context) {

	var bound *orb.Bound
	if bbox := ctx.URLParam("bbox"); bbox != "" {
		b, err := encoding.ParseBbox(bbox)
		if err != nil {
			ctx.Problem(iris.NewProblem().Type("/api/db/geojson").Detail(err.Error()).Status(iris.StatusBadRequest))
			return
		}
		bound = b
	}

	markers, err := dh.DatasetController.Markers(ctx.Request().Context(), bound)
	if err != nil {
		zap.S().Errorf("error loading markers: %s", err.Error())
		ctx.Problem(iris.NewProblem().Type("/api/db/geojson").Detail("database issue").Status(iris.StatusInternalServerError))
		return
	}

	ctx.JSON(encoding.MarkersToFeatureCollection(markers))
}
