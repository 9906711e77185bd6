package httpapi_test

import (
	"encoding/json"
	"errors"
	"firewatch-server/internal/fire_monitoring/domain"
	"firewatch-server/internal/fire_monitoring/httpapi"
	"firewatch-server/internal/fire_monitoring/httpapi/internal"
	mockusecases "firewatch-server/test/unit/doubles/fire_monitoring/usecases"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("DistrictController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockDashboardService
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockDashboardService(ctrl)
		router = http.NewServeMux()
		httpapi.NewDistrictController(mockService).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("listDistricts", func() {
		It("lists the districts with their sensor count", func() {
			mockService.EXPECT().Districts(gomock.Any()).Return([]domain.District{
				{
					Key:         "pomprap",
					DisplayName: "Pom Prap Sattru Phai",
					Center:      domain.Coordinates{Lat: 13.7539, Lon: 100.5156},
					Sensors:     []domain.Sensor{{ID: 1}, {ID: 2}},
				},
			}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/districts", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response internal.DistrictListResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Total).To(Equal(1))
			Expect(response.Districts[0]).To(Equal(internal.DistrictResponse{
				Key:         "pomprap",
				DisplayName: "Pom Prap Sattru Phai",
				Center:      domain.Coordinates{Lat: 13.7539, Lon: 100.5156},
				SensorCount: 2,
			}))
		})

		It("answers 500 when the service fails", func() {
			mockService.EXPECT().Districts(gomock.Any()).Return(nil, errors.New("boom"))

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/districts", nil))

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Context("listSensors", func() {
		It("returns the catalog sensors of the district", func() {
			mockService.EXPECT().Sensors(gomock.Any(), domain.DistrictKey("pomprap")).Return([]domain.Sensor{
				{
					ID:           6,
					Name:         "Sensor A6",
					Location:     "Pom Prap Market",
					Coordinates:  domain.Coordinates{Lat: 13.7380, Lon: 100.5129},
					Status:       domain.SensorStatusNormal,
					BatteryLevel: 55,
				},
			}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/districts/pomprap/sensors", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response []internal.SensorResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response).To(ConsistOf(internal.SensorResponse{
				ID:           6,
				Name:         "Sensor A6",
				Location:     "Pom Prap Market",
				Coordinates:  domain.Coordinates{Lat: 13.7380, Lon: 100.5129},
				Status:       "normal",
				BatteryLevel: 55,
			}))
		})

		It("returns an empty array for an unknown district", func() {
			mockService.EXPECT().Sensors(gomock.Any(), domain.DistrictKey("nowhere")).Return([]domain.Sensor{}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/districts/nowhere/sensors", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`[]`))
		})
	})
})
