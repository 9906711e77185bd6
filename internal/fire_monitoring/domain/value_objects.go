package domain

type DistrictKey string

func (vo DistrictKey) String() string {
	return string(vo)
}

type SensorID int

// Coordinates is a WGS84 point, latitude first.
type Coordinates struct {
	Lat float64 `json:"lat" msgpack:"lat"`
	Lon float64 `json:"lon" msgpack:"lon"`
}

// FallbackCenter is used when a district key is not configured.
var FallbackCenter = Coordinates{Lat: 13.7539, Lon: 100.5156}

// EvacuationRadiusMeters is the radius of the evacuation zone drawn around an incident.
const EvacuationRadiusMeters = 200
