package initializr

import (
	"context"
	"io"
	"os"
	"strings"

	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/zerr"
)

// Download requests the project archive for req and streams it into a temporary file
// outside of any destination directory. The caller removes the returned file.
func (c *Client) Download(ctx context.Context, req domain.Request) (string, error) {
	url := c.baseURL + domain.StarterPath + "?" + Query(req).Encode()

	resp, err := c.get(ctx, url, "application/zip")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if !isSuccess(resp.StatusCode) {
		statusErr := zerr.Wrap(domain.ErrGenerationStatus, "starter request rejected")
		statusErr = zerr.With(statusErr, "status", resp.StatusCode)
		return "", zerr.With(statusErr, "body", readErrorBody(resp.Body))
	}

	tmpFile, err := os.CreateTemp("", domain.DownloadPattern)
	if err != nil {
		return "", domain.WrapCause(err, domain.ErrDownloadFailed)
	}
	tmpName := tmpFile.Name()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpName)
		return "", domain.WrapCause(err, domain.ErrDownloadFailed)
	}

	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", domain.WrapCause(err, domain.ErrDownloadFailed)
	}

	return tmpName, nil
}

// readErrorBody returns at most maxErrorBodyBytes of r for diagnostics.
func readErrorBody(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodyBytes))
	if err != nil {
		return unreadableBody
	}
	return strings.TrimSpace(string(body))
}
