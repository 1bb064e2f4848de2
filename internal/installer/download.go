package installer

import (
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"xray-rpc-sync/internal/logger"
)

// NewHTTPClient builds the HTTP client shared by one pipeline run: a 15s
// connect timeout and a 10s wait for response headers. There is no overall
// deadline, so a slow archive stream can run as long as it needs.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 15 * time.Second,
			}).DialContext,
			ResponseHeaderTimeout: 10 * time.Second,
		},
	}
}

// downloadFile streams the content at url into destPath, truncating any
// existing file first. Each received chunk is written immediately, so memory
// stays bounded regardless of archive size. It returns true only when the
// full stream completes; on any transport error mid-stream the destination
// is left behind partial (or empty) and false is returned. The HTTP status
// is not inspected: success means "the stream completed".
func downloadFile(client *http.Client, url, destPath string) bool {
	out, err := os.Create(destPath)
	if err != nil {
		logger.Error("[ERROR] Failed to create file %s: %v\n", destPath, err)
		return false
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close destination file: %v\n", cerr)
		}
	}()

	logger.Info("[INFO] Downloading %s...\n", url)

	resp, err := client.Get(url)
	if err != nil {
		logger.Error("[ERROR] Failed to download %s to %s: %v\n", url, destPath, err)
		return false
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		logger.Error("[ERROR] Failed to download %s to %s: %v\n", url, destPath, err)
		return false
	}

	logger.Info("[INFO] Downloaded %s to %s\n", url, destPath)
	return true
}
