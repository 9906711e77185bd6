package mapview_test

import (
	"firewatch-server/internal/fire_monitoring/domain"
	"firewatch-server/internal/fire_monitoring/mapview"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func pomprapSensors() []domain.Sensor {
	return []domain.Sensor{
		{ID: 1, Name: "Sensor A1", Location: "Soi Nana - North", Coordinates: domain.Coordinates{Lat: 13.7414, Lon: 100.5194}, Status: domain.SensorStatusNormal, BatteryLevel: 85},
		{ID: 2, Name: "Sensor A2", Location: "Yaowarat Road", Coordinates: domain.Coordinates{Lat: 13.7393, Lon: 100.5129}, Status: domain.SensorStatusNormal, BatteryLevel: 72},
		{ID: 3, Name: "Sensor A3", Location: "Ratchadaphisek Road", Coordinates: domain.Coordinates{Lat: 13.7354, Lon: 100.5154}, Status: domain.SensorStatusNormal, BatteryLevel: 90},
		{ID: 4, Name: "Sensor A4", Location: "Chakraphet Road", Coordinates: domain.Coordinates{Lat: 13.7412, Lon: 100.5089}, Status: domain.SensorStatusNormal, BatteryLevel: 65},
		{ID: 5, Name: "Sensor A5", Location: "Charoen Krung Road", Coordinates: domain.Coordinates{Lat: 13.7380, Lon: 100.5210}, Status: domain.SensorStatusNormal, BatteryLevel: 78},
		{ID: 6, Name: "Sensor A6", Location: "Pom Prap Market", Coordinates: domain.Coordinates{Lat: 13.7380, Lon: 100.5129}, Status: domain.SensorStatusNormal, BatteryLevel: 55},
		{ID: 7, Name: "Sensor A7", Location: "Wat Saket Temple", Coordinates: domain.Coordinates{Lat: 13.7401, Lon: 100.5175}, Status: domain.SensorStatusNormal, BatteryLevel: 82},
		{ID: 8, Name: "Sensor A8", Location: "Local School", Coordinates: domain.Coordinates{Lat: 13.7365, Lon: 100.5165}, Status: domain.SensorStatusNormal, BatteryLevel: 93},
		{ID: 9, Name: "Sensor A9", Location: "Community Hospital", Coordinates: domain.Coordinates{Lat: 13.7385, Lon: 100.5115}, Status: domain.SensorStatusNormal, BatteryLevel: 87},
		{ID: 10, Name: "Sensor A10", Location: "Shopping Center", Coordinates: domain.Coordinates{Lat: 13.7425, Lon: 100.5145}, Status: domain.SensorStatusNormal, BatteryLevel: 71},
	}
}

var _ = Describe("Render", func() {
	center := domain.Coordinates{Lat: 13.7539, Lon: 100.5156}

	Context("without a fire", func() {
		var view mapview.MapView

		BeforeEach(func() {
			view = mapview.Render(center, pomprapSensors(), nil, nil)
		})

		It("should center an OpenStreetMap base map at street level", func() {
			Expect(view.Center).To(Equal(center))
			Expect(view.Zoom).To(Equal(15))
			Expect(view.Tiles.URL).To(ContainSubstring("tile.openstreetmap.org"))
			Expect(view.Tiles.Attribution).To(ContainSubstring("OpenStreetMap"))
		})

		It("should draw ten green markers of radius 6", func() {
			Expect(view.CircleMarkers).To(HaveLen(10))
			for _, m := range view.CircleMarkers {
				Expect(m.Style).To(Equal(mapview.Style{Color: "green", FillColor: "green", Radius: 6, FillOpacity: 0.6}))
			}
		})

		It("should place markers at the sensor coordinates in order", func() {
			sensors := pomprapSensors()
			for i, m := range view.CircleMarkers {
				Expect(m.SensorID).To(Equal(sensors[i].ID))
				Expect(m.Position).To(Equal(sensors[i].Coordinates))
			}
		})

		It("should not draw an incident overlay", func() {
			Expect(view.Circles).To(BeEmpty())
			Expect(view.Markers).To(BeEmpty())
			Expect(view.Focus).To(BeNil())
		})

		It("should not flag any marker as burning", func() {
			for _, m := range view.CircleMarkers {
				Expect(m.ActiveFire).To(BeFalse())
			}
		})

		It("should describe the sensor in its popup", func() {
			popup := view.CircleMarkers[0].Popup
			Expect(popup.MaxWidth).To(Equal(200))
			Expect(popup.HTML).To(ContainSubstring("Sensor A1"))
			Expect(popup.HTML).To(ContainSubstring("Soi Nana - North"))
			Expect(popup.HTML).To(ContainSubstring("NORMAL"))
			Expect(popup.HTML).To(ContainSubstring("color: green"))
			Expect(popup.HTML).To(ContainSubstring("85%"))
			Expect(popup.HTML).NotTo(ContainSubstring("FIRE ALERT"))
		})
	})

	Context("with sensor 6 on fire", func() {
		var view mapview.MapView
		incident := domain.Coordinates{Lat: 13.7380, Lon: 100.5129}

		BeforeEach(func() {
			id := domain.SensorID(6)
			sensors := pomprapSensors()
			sensors[5] = sensors[5].WithStatus(domain.SensorStatusAbnormal)
			view = mapview.Render(center, sensors, &id, &incident)
		})

		It("should draw one red marker of radius 10 for the fire sensor", func() {
			marker := view.CircleMarkers[5]
			Expect(marker.SensorID).To(Equal(domain.SensorID(6)))
			Expect(marker.Style).To(Equal(mapview.Style{Color: "red", FillColor: "red", Radius: 10, FillOpacity: 0.8}))
			Expect(marker.Popup.HTML).To(ContainSubstring("Sensor A6 - FIRE ALERT!"))
			Expect(marker.Popup.HTML).To(ContainSubstring("ABNORMAL"))
			Expect(marker.Popup.HTML).To(ContainSubstring("55%"))
		})

		It("should keep the other nine markers green", func() {
			for i, m := range view.CircleMarkers {
				if i == 5 {
					continue
				}
				Expect(m.Style.Color).To(Equal("green"))
				Expect(m.Style.Radius).To(Equal(6))
			}
		})

		It("should draw a 200 meter evacuation zone at the incident", func() {
			Expect(view.Circles).To(HaveLen(1))
			zone := view.Circles[0]
			Expect(zone.Position).To(Equal(incident))
			Expect(zone.RadiusMeters).To(Equal(200))
			Expect(zone.Style.Color).To(Equal("red"))
			Expect(zone.Style.FillOpacity).To(Equal(0.2))
			Expect(zone.Popup.HTML).To(Equal("Evacuation Zone - 200m"))
		})

		It("should pin the incident with a fire icon", func() {
			Expect(view.Markers).To(HaveLen(1))
			pin := view.Markers[0]
			Expect(pin.Position).To(Equal(incident))
			Expect(pin.Icon).To(Equal(mapview.Icon{Name: "fire", Prefix: "fa", Color: "red"}))
			Expect(pin.Popup.HTML).To(Equal("Fire Incident Location"))
		})

		It("should fly to the incident", func() {
			Expect(view.Focus).To(Equal(&mapview.Focus{Position: incident, Zoom: 16}))
		})

		It("should flag only the fire sensor marker as burning", func() {
			for i, m := range view.CircleMarkers {
				Expect(m.ActiveFire).To(Equal(i == 5))
			}
		})
	})

	Context("idempotency", func() {
		It("should produce equal maps for equal inputs", func() {
			id := domain.SensorID(3)
			location := domain.Coordinates{Lat: 13.7354, Lon: 100.5154}

			first := mapview.Render(center, pomprapSensors(), &id, &location)
			second := mapview.Render(center, pomprapSensors(), &id, &location)

			Expect(second).To(Equal(first))
			Expect(second.CircleMarkers).To(HaveLen(10))
			Expect(second.Circles).To(HaveLen(1))
		})
	})

	Context("battery", func() {
		It("should emphasize a battery below 20%", func() {
			sensors := []domain.Sensor{
				{ID: 1, Name: "Low", Status: domain.SensorStatusNormal, BatteryLevel: 19},
				{ID: 2, Name: "Edge", Status: domain.SensorStatusNormal, BatteryLevel: 20},
			}

			view := mapview.Render(center, sensors, nil, nil)

			Expect(view.CircleMarkers[0].Popup.HTML).To(ContainSubstring(`<span style="color: red; font-weight: bold;">19%</span>`))
			Expect(view.CircleMarkers[1].Popup.HTML).To(ContainSubstring(`<span>20%</span>`))
		})
	})

	Context("escaping", func() {
		It("should escape catalog text in popups", func() {
			sensors := []domain.Sensor{{ID: 1, Name: "<script>alert(1)</script>", Location: "A & B", Status: domain.SensorStatusNormal}}

			view := mapview.Render(center, sensors, nil, nil)

			Expect(view.CircleMarkers[0].Popup.HTML).NotTo(ContainSubstring("<script>"))
			Expect(view.CircleMarkers[0].Popup.HTML).To(ContainSubstring("A &amp; B"))
		})
	})
})
