package domain

import "slices"

type District struct {
	Key         DistrictKey
	DisplayName string
	Center      Coordinates
	Sensors     []Sensor
}

// Clone returns a copy that does not share the sensor backing array.
func (d District) Clone() District {
	d.Sensors = slices.Clone(d.Sensors)
	return d
}

func NewDistrictBuilder() *districtBuilder {
	return &districtBuilder{}
}

type districtBuilder struct {
	actions []districtHandler
}

type districtHandler func(d *District) error

func (b *districtBuilder) WithKey(key DistrictKey) *districtBuilder {
	b.actions = append(b.actions, func(d *District) error {
		if key == "" {
			return ErrEmptyDistrictKey
		}
		d.Key = key
		return nil
	})
	return b
}

func (b *districtBuilder) WithDisplayName(name string) *districtBuilder {
	b.actions = append(b.actions, func(d *District) error {
		d.DisplayName = name
		return nil
	})
	return b
}

func (b *districtBuilder) WithCenter(center Coordinates) *districtBuilder {
	b.actions = append(b.actions, func(d *District) error {
		d.Center = center
		return nil
	})
	return b
}

func (b *districtBuilder) WithSensor(sensor Sensor) *districtBuilder {
	b.actions = append(b.actions, func(d *District) error {
		if sensor.BatteryLevel < 0 || sensor.BatteryLevel > 100 {
			return ErrBatteryOutOfRange
		}
		if _, found := FindSensor(d.Sensors, sensor.ID); found {
			return ErrDuplicatedSensorID
		}
		d.Sensors = append(d.Sensors, sensor)
		return nil
	})
	return b
}

func (b *districtBuilder) Build() (District, error) {
	result := District{
		Center:  FallbackCenter,
		Sensors: []Sensor{},
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return District{}, err
		}
	}
	if result.Key == "" {
		return District{}, ErrEmptyDistrictKey
	}
	return result, nil
}
