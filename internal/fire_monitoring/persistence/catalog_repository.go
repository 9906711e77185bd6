package persistence

import (
	"bytes"
	_ "embed"
	"firewatch-server/internal/fire_monitoring/domain"
	"firewatch-server/internal/fire_monitoring/persistence/internal"
	"firewatch-server/internal/fire_monitoring/usecases"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed catalog/districts.yaml
var defaultCatalog []byte

// NewCatalogRepository loads the catalog from path, or the embedded catalog
// when path is empty.
func NewCatalogRepository(path string) (*SimpleCatalogRepository, error) {
	data := defaultCatalog
	source := "embedded"
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog file: %w", err)
		}
		data = content
		source = path
	}

	repository, err := NewCatalogRepositoryFromYAML(data)
	if err != nil {
		return nil, err
	}

	slog.Info("sensor catalog loaded",
		slog.String("source", source),
		slog.Int("districts", len(repository.districts)),
	)
	return repository, nil
}

func NewCatalogRepositoryFromYAML(data []byte) (*SimpleCatalogRepository, error) {
	var catalog internal.Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	repository := &SimpleCatalogRepository{
		districts: make([]domain.District, 0, len(catalog.Districts)),
		index:     make(map[domain.DistrictKey]int, len(catalog.Districts)),
	}
	titler := cases.Title(language.Und)

	for _, d := range catalog.Districts {
		district, err := d.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
		if _, exists := repository.index[district.Key]; exists {
			return nil, fmt.Errorf("loading catalog: %q: %w", district.Key, domain.ErrDuplicatedDistrict)
		}
		if district.DisplayName == "" {
			district.DisplayName = titler.String(district.Key.String())
		}
		for _, s := range district.Sensors {
			if s.Status.Class() != s.Status {
				slog.Warn("sensor has an unrecognized status and will be shown as abnormal",
					slog.String("district", district.Key.String()),
					slog.Int("sensor_id", int(s.ID)),
					slog.String("status", s.Status.String()),
				)
			}
		}

		repository.index[district.Key] = len(repository.districts)
		repository.districts = append(repository.districts, district)
	}

	return repository, nil
}

var _ usecases.CatalogRepository = &SimpleCatalogRepository{}

// SimpleCatalogRepository is immutable once built and safe for concurrent reads.
type SimpleCatalogRepository struct {
	districts []domain.District
	index     map[domain.DistrictKey]int
}

func (r *SimpleCatalogRepository) Districts() []domain.District {
	result := make([]domain.District, 0, len(r.districts))
	for _, d := range r.districts {
		result = append(result, d.Clone())
	}
	return result
}

func (r *SimpleCatalogRepository) District(key domain.DistrictKey) (domain.District, bool) {
	i, ok := r.index[key]
	if !ok {
		return domain.District{}, false
	}
	return r.districts[i].Clone(), true
}

func (r *SimpleCatalogRepository) GetSensors(key domain.DistrictKey) []domain.Sensor {
	district, ok := r.District(key)
	if !ok {
		return []domain.Sensor{}
	}
	return district.Sensors
}

func (r *SimpleCatalogRepository) DistrictCenter(key domain.DistrictKey) domain.Coordinates {
	i, ok := r.index[key]
	if !ok {
		return domain.FallbackCenter
	}
	return r.districts[i].Center
}
