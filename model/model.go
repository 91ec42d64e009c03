package model

import (
	"github.com/paulmach/orb"
	"github.com/tidwall/sjson"
)

const (
	DefaultDatasetName = "default"
	DefaultWaterColor  = "#33a1ff"
)

// top level keys of a dataset payload
const (
	PayloadWaters   = "waters"
	PayloadSteks    = "steks"
	PayloadRigs     = "rigs"
	PayloadBathy    = "bathy"
	PayloadSettings = "settings"
)

const (
	MarkerStek = "stek"
	MarkerRig  = "rig"
)

const emptyPayload = `{"waters":[],"steks":[],"rigs":[],"bathy":{"points":[],"datasets":[]},"settings":{}}`

type Marker struct {
	Id         string
	Kind       string
	Location   orb.Point
	Properties map[string]string
}

//DefaultPayload returns the document a freshly created dataset starts with
func DefaultPayload(waterColor string) (string, error) {
	if waterColor == "" {
		waterColor = DefaultWaterColor
	}
	return sjson.Set(emptyPayload, "settings.waterColor", waterColor)
}
