package database

import (
	"context"
	"time"

	"github.com/paulmach/orb"
	"github.com/vislokaties/api/encoding"
	"github.com/vislokaties/api/model"
	"go.uber.org/zap"
)

//DatasetController gives access to the single default dataset
type DatasetController struct {
	db         Store
	waterColor string
}

func NewDatasetController(db Store, waterColor string) *DatasetController {
	return &DatasetController{db: db, waterColor: waterColor}
}

//GetOrCreateDefault returns the default dataset, creating it with the default payload if absent
func (dc *DatasetController) GetOrCreateDefault(ctx context.Context) (*Dataset, error) {

	payload, err := model.DefaultPayload(dc.waterColor)
	if err != nil {
		return nil, err
	}
	return dc.db.FindOrCreateDataset(ctx, model.DefaultDatasetName, payload)
}

//ReplaceDefault overwrites the default payload. The new updated_at is always after the stored one.
func (dc *DatasetController) ReplaceDefault(ctx context.Context, payload string) (*Dataset, error) {

	dataset, err := dc.GetOrCreateDefault(ctx)
	if err != nil {
		return nil, err
	}
	updated := now()
	if !updated.After(dataset.UpdatedAt) {
		updated = dataset.UpdatedAt.Add(time.Microsecond)
	}
	dataset.Payload = payload
	dataset.UpdatedAt = updated

	if err := dc.db.UpdateDataset(ctx, dataset); err != nil {
		return nil, err
	}
	zap.L().Debug("dataset replaced", zap.Int("bytes", len(payload)), zap.Time("updated_at", updated))
	return dataset, nil
}

//Markers returns steks and rigs of the default dataset, limited to bound when given
func (dc *DatasetController) Markers(ctx context.Context, bound *orb.Bound) ([]*model.Marker, error) {

	dataset, err := dc.GetOrCreateDefault(ctx)
	if err != nil {
		return nil, err
	}
	markers := encoding.PayloadToMarkers(dataset.Payload)
	if bound == nil {
		return markers, nil
	}
	within := markers[:0]
	for _, m := range markers {
		if bound.Contains(m.Location) {
			within = append(within, m)
		}
	}
	return within, nil
}

func (dc *DatasetController) Ping(ctx context.Context) error {
	return dc.db.Ping(ctx)
}

func (dc *DatasetController) Close() error {
	return dc.db.Close()
}
