package internal

import (
	"firewatch-server/internal/fire_monitoring/domain"
)

type DistrictResponse struct {
	Key         string             `json:"key" msgpack:"key"`
	DisplayName string             `json:"display_name" msgpack:"display_name"`
	Center      domain.Coordinates `json:"center" msgpack:"center"`
	SensorCount int                `json:"sensor_count" msgpack:"sensor_count"`
}

type DistrictListResponse struct {
	Districts []DistrictResponse `json:"districts" msgpack:"districts"`
	Total     int                `json:"total" msgpack:"total"`
}

type SensorResponse struct {
	ID           int                `json:"id" msgpack:"id"`
	Name         string             `json:"name" msgpack:"name"`
	Location     string             `json:"location" msgpack:"location"`
	Coordinates  domain.Coordinates `json:"coordinates" msgpack:"coordinates"`
	Status       string             `json:"status" msgpack:"status"`
	BatteryLevel int                `json:"battery_level" msgpack:"battery_level"`
}

func ToDistrictListResponse(districts []domain.District) DistrictListResponse {
	responses := make([]DistrictResponse, len(districts))
	for i, district := range districts {
		responses[i] = DistrictResponse{
			Key:         district.Key.String(),
			DisplayName: district.DisplayName,
			Center:      district.Center,
			SensorCount: len(district.Sensors),
		}
	}

	return DistrictListResponse{
		Districts: responses,
		Total:     len(responses),
	}
}

func ToSensorResponses(sensors []domain.Sensor) []SensorResponse {
	responses := make([]SensorResponse, len(sensors))
	for i, sensor := range sensors {
		responses[i] = SensorResponse{
			ID:           int(sensor.ID),
			Name:         sensor.Name,
			Location:     sensor.Location,
			Coordinates:  sensor.Coordinates,
			Status:       sensor.Status.String(),
			BatteryLevel: sensor.BatteryLevel,
		}
	}
	return responses
}
