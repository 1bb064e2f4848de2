package installer

import (
	"encoding/json"
	"net/http"

	"xray-rpc-sync/internal/logger"
)

// GitHubRelease represents the structure of a GitHub release JSON response.
// Only the tag is needed; the source archive URL is derived from it.
type GitHubRelease struct {
	TagName string `json:"tag_name"` // The release tag (e.g. v1.8.4)
}

// latestTag queries the upstream releases API and returns the latest release
// tag. Any failure — transport error, non-200 status, malformed body — is
// logged and reported as an empty string; the caller treats "" as "locator
// failed" and aborts dependent stages. Single attempt, no retry.
func latestTag(client *http.Client, releaseURL string) string {
	logger.Debug("[DEBUG] Fetching latest release from %s\n", releaseURL)

	resp, err := client.Get(releaseURL)
	if err != nil {
		logger.Error("[ERROR] Failed to fetch latest release: %v\n", err)
		return ""
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != 200 {
		logger.Error("[ERROR] Failed to fetch latest release: HTTP status %d\n", resp.StatusCode)
		return ""
	}

	var release GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		logger.Error("[ERROR] Failed to decode release JSON: %v\n", err)
		return ""
	}

	logger.Debug("[DEBUG] Latest release tag: %s\n", release.TagName)
	return release.TagName
}
