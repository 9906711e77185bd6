package domain

import "errors"

var (
	ErrEmptyDistrictKey   = errors.New("district key cannot be empty")
	ErrDuplicatedDistrict = errors.New("district key is duplicated")
	ErrDuplicatedSensorID = errors.New("sensor id is duplicated within district")
	ErrBatteryOutOfRange  = errors.New("battery level must be between 0 and 100")
)
