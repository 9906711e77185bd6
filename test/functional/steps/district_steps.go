package steps

type districtEntry struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
	SensorCount int    `json:"sensor_count"`
}

func (fc *FeatureContext) iListTheDistricts() error {
	return fc.capture(fc.apiDriver.ListDistricts())
}

func (fc *FeatureContext) iListTheSensorsOfDistrict(key string) error {
	return fc.capture(fc.apiDriver.ListDistrictSensors(key))
}

func (fc *FeatureContext) theDistrictListShouldContainWithSensors(key string, count int) error {
	var list struct {
		Districts []districtEntry `json:"districts"`
	}
	fc.decodeJSON(&list)

	for _, district := range list.Districts {
		if district.Key == key {
			fc.require.Equal(count, district.SensorCount)
			return nil
		}
	}
	fc.require.Failf("missing district", "district %q not listed", key)
	return nil
}

func (fc *FeatureContext) theSensorListShouldHaveEntries(count int) error {
	var sensors []map[string]any
	fc.decodeJSON(&sensors)
	fc.require.NotNil(sensors)
	fc.require.Len(sensors, count)
	return nil
}
