package steps

import (
	"context"
	"encoding/json"
	"firewatch-server/test/functional/driver"
	"io"
	"net/http"
	"net/url"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

type FeatureContext struct {
	apiDriver    *driver.APIDriver
	query        url.Values
	response     *http.Response
	body         []byte
	responseData map[string]any
	require      *require.Assertions
	t            godog.TestingT
}

func NewFeatureContext(baseURL string) *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver(baseURL),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.Then(`^the response content type should be "([^"]*)"$`, fc.theResponseContentTypeShouldBe)

	// Dashboard controls
	ctx.Given(`^the operator selects the district "([^"]*)"$`, fc.theOperatorSelectsTheDistrict)
	ctx.Given(`^the fire simulation is enabled$`, fc.theFireSimulationIsEnabled)
	ctx.Given(`^the operator picks sensor "([^"]*)" as the fire sensor$`, fc.theOperatorPicksSensorAsTheFireSensor)
	ctx.When(`^I request the dashboard$`, fc.iRequestTheDashboard)
	ctx.When(`^I request the dashboard as msgpack$`, fc.iRequestTheDashboardAsMsgpack)
	ctx.When(`^I open the dashboard page$`, fc.iOpenTheDashboardPage)

	// Dashboard assertions
	ctx.Then(`^the district name should be "([^"]*)"$`, fc.theDistrictNameShouldBe)
	ctx.Then(`^the statistics should be (\d+) normal \(([\d.]+)%\), (\d+) warning \(([\d.]+)%\) and (\d+) abnormal \(([\d.]+)%\)$`, fc.theStatisticsShouldBe)
	ctx.Then(`^the map should have (\d+) sensor markers$`, fc.theMapShouldHaveSensorMarkers)
	ctx.Then(`^(\d+) sensor markers should be "([^"]*)" with radius (\d+)$`, fc.sensorMarkersShouldBeWithRadius)
	ctx.Then(`^sensor (\d+) should be drawn "([^"]*)" with radius (\d+)$`, fc.sensorShouldBeDrawnWithRadius)
	ctx.Then(`^the map should have no incident overlay$`, fc.theMapShouldHaveNoIncidentOverlay)
	ctx.Then(`^the map should have an evacuation zone of (\d+) meters at \[([\d.]+), ([\d.]+)\]$`, fc.theMapShouldHaveAnEvacuationZoneAt)
	ctx.Then(`^the map should have a fire pin at \[([\d.]+), ([\d.]+)\]$`, fc.theMapShouldHaveAFirePinAt)
	ctx.Then(`^the map should be centered at \[([\d.]+), ([\d.]+)\]$`, fc.theMapShouldBeCenteredAt)
	ctx.Then(`^the battery chart should start with "([^"]*)" and end with "([^"]*)"$`, fc.theBatteryChartShouldStartWithAndEndWith)
	ctx.Then(`^there should be no alert$`, fc.thereShouldBeNoAlert)
	ctx.Then(`^the alert should name "([^"]*)" at "([^"]*)"$`, fc.theAlertShouldNameAt)
	ctx.Then(`^the alert should carry a detection time$`, fc.theAlertShouldCarryADetectionTime)
	ctx.Then(`^the page should contain "([^"]*)"$`, fc.thePageShouldContain)
	ctx.Then(`^the page should not contain "([^"]*)"$`, fc.thePageShouldNotContain)
	ctx.Then(`^the page should show the element "([^"]*)"$`, fc.thePageShouldShowTheElement)
	ctx.Then(`^the page should not show the element "([^"]*)"$`, fc.thePageShouldNotShowTheElement)

	// District steps
	ctx.When(`^I list the districts$`, fc.iListTheDistricts)
	ctx.When(`^I list the sensors of district "([^"]*)"$`, fc.iListTheSensorsOfDistrict)
	ctx.Then(`^the district list should contain "([^"]*)" with (\d+) sensors$`, fc.theDistrictListShouldContainWithSensors)
	ctx.Then(`^the sensor list should have (\d+) entries$`, fc.theSensorListShouldHaveEntries)

	// Health steps
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Then(`^the response should contain status information$`, fc.theResponseShouldContainStatusInformation)
	ctx.When(`^I call the metrics endpoint$`, fc.iCallTheMetricsEndpoint)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if fc.response != nil {
			fc.response.Body.Close()
		}
		return ctx, err
	})
}

func (fc *FeatureContext) reset() {
	fc.query = url.Values{}
	fc.response = nil
	fc.body = nil
	fc.responseData = nil
}

// capture stores the response and drains its body so steps can inspect it repeatedly.
func (fc *FeatureContext) capture(response *http.Response, err error) error {
	if err != nil {
		return err
	}
	fc.response = response

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	fc.body = body
	return nil
}

func (fc *FeatureContext) decodeJSON(target any) {
	fc.require.NoError(json.Unmarshal(fc.body, target))
}
