package steps

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code")
	return nil
}

func (fc *FeatureContext) theResponseContentTypeShouldBe(contentType string) error {
	fc.require.Equal(contentType, fc.response.Header.Get("Content-Type"))
	return nil
}
