package driver

import (
	"fmt"
	"net/http"
	"net/url"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) GetDashboardPage(query url.Values) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/?%s", d.baseURL, query.Encode()))
}

func (d *APIDriver) GetDashboard(query url.Values, accept string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/v1/dashboard?%s", d.baseURL, query.Encode()), nil)
	if err != nil {
		panic(err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return d.client.Do(req)
}

func (d *APIDriver) ListDistricts() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/districts", d.baseURL))
}

func (d *APIDriver) ListDistrictSensors(key string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/districts/%s/sensors", d.baseURL, url.PathEscape(key)))
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}

func (d *APIDriver) GetMetrics() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/metrics", d.baseURL))
}
