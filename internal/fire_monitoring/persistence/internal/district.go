package internal

import (
	"firewatch-server/internal/fire_monitoring/domain"
	"fmt"
)

type Catalog struct {
	Districts []District `yaml:"districts"`
}

type District struct {
	Key         string    `yaml:"key"`
	DisplayName string    `yaml:"display_name"`
	Center      []float64 `yaml:"center"`
	Sensors     []Sensor  `yaml:"sensors"`
}

type Sensor struct {
	ID           int       `yaml:"id"`
	Name         string    `yaml:"name"`
	Location     string    `yaml:"location"`
	Coordinates  []float64 `yaml:"coordinates"`
	Status       string    `yaml:"status"`
	BatteryLevel int       `yaml:"battery_level"`
}

func (d District) ToDomain() (domain.District, error) {
	center, err := toCoordinates(d.Center)
	if err != nil {
		return domain.District{}, fmt.Errorf("district %q center: %w", d.Key, err)
	}

	builder := domain.NewDistrictBuilder().
		WithKey(domain.DistrictKey(d.Key)).
		WithDisplayName(d.DisplayName).
		WithCenter(center)

	for _, s := range d.Sensors {
		sensor, err := s.ToDomain()
		if err != nil {
			return domain.District{}, fmt.Errorf("district %q: %w", d.Key, err)
		}
		builder = builder.WithSensor(sensor)
	}

	district, err := builder.Build()
	if err != nil {
		return domain.District{}, fmt.Errorf("district %q: %w", d.Key, err)
	}
	return district, nil
}

func (s Sensor) ToDomain() (domain.Sensor, error) {
	coordinates, err := toCoordinates(s.Coordinates)
	if err != nil {
		return domain.Sensor{}, fmt.Errorf("sensor %d coordinates: %w", s.ID, err)
	}

	return domain.Sensor{
		ID:           domain.SensorID(s.ID),
		Name:         s.Name,
		Location:     s.Location,
		Coordinates:  coordinates,
		Status:       domain.SensorStatus(s.Status),
		BatteryLevel: s.BatteryLevel,
	}, nil
}

func toCoordinates(values []float64) (domain.Coordinates, error) {
	if len(values) != 2 {
		return domain.Coordinates{}, fmt.Errorf("expected [lat, lon], got %d values", len(values))
	}
	return domain.Coordinates{Lat: values[0], Lon: values[1]}, nil
}
