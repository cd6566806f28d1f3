// export_test.go exports private functions for white-box testing.
package initializr

import "net/http"

// NewClientWithHTTP exports newClientWithHTTP for testing.
func NewClientWithHTTP(baseURL, userAgent string, client *http.Client) *Client {
	return newClientWithHTTP(baseURL, userAgent, client)
}

// ReadErrorBody exports readErrorBody for testing.
var ReadErrorBody = readErrorBody

// UnreadableBody exports the placeholder used when an error body cannot be read.
const UnreadableBody = unreadableBody
