package usecases_test

import (
	"context"
	"firewatch-server/internal/fire_monitoring/domain"
	"firewatch-server/internal/fire_monitoring/persistence"
	"firewatch-server/internal/fire_monitoring/usecases"
	mockusecases "firewatch-server/test/unit/doubles/fire_monitoring/usecases"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("DashboardService", func() {
	var (
		ctrl      *gomock.Controller
		mockClock *mockusecases.MockClock
		service   *usecases.SimpleDashboardService
		now       time.Time
		guidance  usecases.EvacuationGuidance
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockClock = mockusecases.NewMockClock(ctrl)
		now = time.Date(2026, 3, 14, 9, 5, 7, 0, time.UTC)
		mockClock.EXPECT().Now().Return(now).AnyTimes()

		repository, err := persistence.NewCatalogRepository("")
		Expect(err).NotTo(HaveOccurred())

		guidance = usecases.EvacuationGuidance{
			RadiusMeters:           domain.EvacuationRadiusMeters,
			NearestEvacuationPoint: "Local School",
			EmergencyContacts:      []string{"199 (Fire)", "1669 (Emergency Medical)"},
		}
		service = usecases.NewDashboardService(repository, usecases.NewViewStateService(repository), mockClock, guidance)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("Dashboard", func() {
		It("renders the pomprap district without a fire", func() {
			dashboard, err := service.Dashboard(context.Background(), usecases.DashboardRequest{DistrictKey: "pomprap"})

			Expect(err).NotTo(HaveOccurred())
			Expect(dashboard.DistrictName).To(Equal("Pom Prap Sattru Phai"))
			Expect(dashboard.Sensors).To(HaveLen(10))
			Expect(dashboard.Map.CircleMarkers).To(HaveLen(10))
			Expect(dashboard.Map.Circles).To(BeEmpty())
			Expect(dashboard.Map.Markers).To(BeEmpty())
			Expect(dashboard.Map.Center).To(Equal(domain.Coordinates{Lat: 13.7539, Lon: 100.5156}))
			Expect(dashboard.Statistics.Total).To(Equal(10))
			Expect(dashboard.Statistics.NormalCount).To(Equal(10))
			Expect(dashboard.Statistics.NormalPct).To(Equal(100.0))
			Expect(dashboard.BatteryChart[0].Name).To(Equal("Sensor A6"))
			Expect(dashboard.BatteryChart[9].Name).To(Equal("Sensor A8"))
			Expect(dashboard.SensorOptions).To(BeNil())
			Expect(dashboard.Alert).To(BeNil())
			Expect(dashboard.GeneratedAt).To(Equal(now))
		})

		It("renders a fire at sensor 6", func() {
			dashboard, err := service.Dashboard(context.Background(), usecases.DashboardRequest{
				DistrictKey:  "pomprap",
				SimulateFire: true,
				FireSensorID: sensorID(6),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(dashboard.ViewState.IncidentLocation).To(HaveValue(Equal(domain.Coordinates{Lat: 13.7380, Lon: 100.5129})))
			Expect(dashboard.Sensors[5].Status).To(Equal(domain.SensorStatusAbnormal))
			Expect(dashboard.Statistics.AbnormalCount).To(Equal(1))
			Expect(dashboard.Statistics.NormalCount).To(Equal(9))
			Expect(dashboard.Statistics.AbnormalPct).To(Equal(10.0))
			Expect(dashboard.Statistics.NormalPct).To(Equal(90.0))

			Expect(dashboard.Map.Circles).To(HaveLen(1))
			Expect(dashboard.Map.Circles[0].RadiusMeters).To(Equal(200))
			Expect(dashboard.Map.Markers).To(HaveLen(1))
			Expect(dashboard.Map.Markers[0].Position).To(Equal(domain.Coordinates{Lat: 13.7380, Lon: 100.5129}))

			Expect(dashboard.SensorRows[5].ActiveFire).To(BeTrue())

			Expect(dashboard.Alert).NotTo(BeNil())
			Expect(dashboard.Alert.SensorName).To(Equal("Sensor A6"))
			Expect(dashboard.Alert.Location).To(Equal("Pom Prap Market"))
			Expect(dashboard.Alert.StatusText).To(Equal("ABNORMAL"))
			Expect(dashboard.Alert.DetectedAt).To(Equal("09:05:07"))
			Expect(dashboard.Alert.Guidance).To(Equal(guidance))
		})

		It("lists every sensor as an option when the simulation is on", func() {
			dashboard, err := service.Dashboard(context.Background(), usecases.DashboardRequest{
				DistrictKey:  "pomprap",
				SimulateFire: true,
				FireSensorID: sensorID(2),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(dashboard.SensorOptions).To(HaveLen(10))
			Expect(dashboard.SensorOptions[1]).To(Equal(usecases.SensorOption{ID: 2, Label: "Sensor A2 (Yaowarat Road)", Selected: true}))
			Expect(dashboard.SensorOptions[0].Selected).To(BeFalse())
		})

		It("shows no incident when the simulation has no sensor", func() {
			dashboard, err := service.Dashboard(context.Background(), usecases.DashboardRequest{
				DistrictKey:  "pomprap",
				SimulateFire: true,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(dashboard.ViewState.FireSimulationEnabled).To(BeTrue())
			Expect(dashboard.Alert).To(BeNil())
			Expect(dashboard.Map.Circles).To(BeEmpty())
			Expect(dashboard.Statistics.AbnormalCount).To(BeZero())
		})

		It("falls back for an unknown district", func() {
			dashboard, err := service.Dashboard(context.Background(), usecases.DashboardRequest{
				DistrictKey:  "nowhere",
				SimulateFire: true,
				FireSensorID: sensorID(1),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(dashboard.DistrictName).To(Equal("nowhere"))
			Expect(dashboard.Sensors).To(BeEmpty())
			Expect(dashboard.Map.Center).To(Equal(domain.FallbackCenter))
			Expect(dashboard.Map.CircleMarkers).To(BeEmpty())
			Expect(dashboard.Statistics).To(Equal(usecases.Dashboard{}.Statistics))
			Expect(dashboard.BatteryChart).To(BeEmpty())
			Expect(dashboard.Alert).To(BeNil())
		})

		It("selects the first district when none is requested", func() {
			dashboard, err := service.Dashboard(context.Background(), usecases.DashboardRequest{})

			Expect(err).NotTo(HaveOccurred())
			Expect(dashboard.ViewState.DistrictKey).To(Equal(domain.DistrictKey("pomprap")))
			Expect(dashboard.DistrictOptions).To(ConsistOf(usecases.DistrictOption{
				Key:         "pomprap",
				DisplayName: "Pom Prap Sattru Phai",
				Selected:    true,
			}))
		})

		It("returns the same dashboard for the same request", func() {
			request := usecases.DashboardRequest{DistrictKey: "pomprap", SimulateFire: true, FireSensorID: sensorID(4)}

			first, err := service.Dashboard(context.Background(), request)
			Expect(err).NotTo(HaveOccurred())
			second, err := service.Dashboard(context.Background(), request)
			Expect(err).NotTo(HaveOccurred())

			Expect(second).To(Equal(first))
		})

		It("fails on a cancelled context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := service.Dashboard(ctx, usecases.DashboardRequest{DistrictKey: "pomprap"})

			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Context("Districts", func() {
		It("lists the configured districts", func() {
			districts, err := service.Districts(context.Background())

			Expect(err).NotTo(HaveOccurred())
			Expect(districts).To(HaveLen(1))
			Expect(districts[0].Key).To(Equal(domain.DistrictKey("pomprap")))
		})
	})

	Context("Sensors", func() {
		It("returns an empty list for an unknown district", func() {
			sensors, err := service.Sensors(context.Background(), "nowhere")

			Expect(err).NotTo(HaveOccurred())
			Expect(sensors).NotTo(BeNil())
			Expect(sensors).To(BeEmpty())
		})
	})
})
