package usecases

import (
	"firewatch-server/internal/fire_monitoring/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/fire_monitoring/usecases/repository_port_mock.go -package=usecases -mock_names=CatalogRepository=MockCatalogRepository

// CatalogRepository is a read-only view over the static sensor catalog.
// Returned slices are copies owned by the caller.
type CatalogRepository interface {
	Districts() []domain.District
	District(domain.DistrictKey) (domain.District, bool)
	GetSensors(domain.DistrictKey) []domain.Sensor
	DistrictCenter(domain.DistrictKey) domain.Coordinates
}
