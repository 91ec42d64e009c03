package encoding

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/gjson"
	"github.com/vislokaties/api/model"
	"go.uber.org/zap"
)

// reference fields carried over as feature properties
var markerLinks = map[string][]string{
	model.MarkerStek: {"waterId"},
	model.MarkerRig:  {"stekId", "waterId"},
}

//PayloadToMarkers pulls the steks and rigs out of a dataset payload.
//Entries without numeric lat/lng are skipped.
func PayloadToMarkers(payload string) []*model.Marker {

	markers := make([]*model.Marker, 0)
	collect := func(path, kind string) {
		gjson.Get(payload, path).ForEach(func(_, entry gjson.Result) bool {
			lat := entry.Get("lat")
			lng := entry.Get("lng")
			if lat.Type != gjson.Number || lng.Type != gjson.Number {
				zap.S().Debugf("skipping %s without coordinates", kind)
				return true
			}
			m := model.Marker{
				Id:         entry.Get("id").String(),
				Kind:       kind,
				Location:   orb.Point{lng.Float(), lat.Float()},
				Properties: make(map[string]string, 4),
			}
			if name := entry.Get("name"); name.Exists() {
				m.Properties["name"] = name.String()
			}
			for _, link := range markerLinks[kind] {
				if v := entry.Get(link); v.Exists() && v.Type != gjson.Null {
					m.Properties[link] = v.String()
				}
			}
			markers = append(markers, &m)
			return true
		})
	}
	collect(model.PayloadSteks, model.MarkerStek)
	collect(model.PayloadRigs, model.MarkerRig)
	return markers
}

func MarkersToFeatureCollection(markers []*model.Marker) *geojson.FeatureCollection {

	fc := geojson.NewFeatureCollection()
	for _, m := range markers {
		feat := geojson.NewFeature(m.Location)
		feat.ID = m.Id
		feat.Properties["kind"] = m.Kind
		for k, v := range m.Properties {
			feat.Properties[k] = v
		}
		fc.Append(feat)
	}
	return fc
}
