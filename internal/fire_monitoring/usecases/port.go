package usecases

import "time"

//go:generate mockgen -source=port.go -destination=../../../test/unit/doubles/fire_monitoring/usecases/port_mock.go -package=usecases -mock_names=Clock=MockClock

type Clock interface {
	Now() time.Time
}
