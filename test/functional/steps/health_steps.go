package steps

import (
	"regexp"
)

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	return fc.capture(fc.apiDriver.GetHealthz())
}

func (fc *FeatureContext) theResponseShouldContainStatusInformation() error {
	var data map[string]any
	fc.decodeJSON(&data)

	fc.require.Contains(data, "status", "status should be present")
	fc.require.Contains(data, "version", "version should be present")
	fc.require.Contains(data, "commit_hash", "commit_hash should be present")
	fc.require.Contains(data, "node_id", "node_id should be present")
	fc.require.Equal("success", data["status"])

	commitHash, ok := data["commit_hash"].(string)
	fc.require.True(ok, "commit_hash should be a string")
	if commitHash != "unknown" {
		commitHashRegex := regexp.MustCompile(`^[a-f0-9]{7,}$`)
		fc.require.True(commitHashRegex.MatchString(commitHash), "commit_hash should be a valid git commit hash")
	}

	fc.responseData = data
	return nil
}

func (fc *FeatureContext) iCallTheMetricsEndpoint() error {
	return fc.capture(fc.apiDriver.GetMetrics())
}
