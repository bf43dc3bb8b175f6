package model

type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

type City struct {
	ID   string  `json:"id" yaml:"id" validate:"required"`
	Name string  `json:"name" yaml:"name" validate:"required"`
	Lat  float64 `json:"lat" yaml:"lat" validate:"gte=-90,lte=90"`
	Lng  float64 `json:"lng" yaml:"lng" validate:"gte=-180,lte=180"`
	Zoom int     `json:"zoom" yaml:"zoom" validate:"gte=0,lte=22"`
}

func (c City) Center() LatLng {
	return LatLng{Lat: c.Lat, Lng: c.Lng}
}

type Region struct {
	ID     string `json:"id" yaml:"id" validate:"required"`
	Name   string `json:"name" yaml:"name" validate:"required"`
	Cities []City `json:"cities" yaml:"cities" validate:"dive"`
}

func CloneRegions(list []Region) []Region {
	out := make([]Region, len(list))
	for i, r := range list {
		out[i] = r
		out[i].Cities = make([]City, len(r.Cities))
		copy(out[i].Cities, r.Cities)
	}
	return out
}
