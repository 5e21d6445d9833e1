package models

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeDataURI wraps raw file bytes into a self-describing
// "data:<media type>;base64,<payload>" blob.
func EncodeDataURI(mediaType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(data))
}

// ParseDataURI splits a data URI back into its media type and raw bytes.
// Only base64-encoded URIs are accepted.
func ParseDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URI")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URI: missing payload")
	}

	mediaType, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" {
		return "", nil, fmt.Errorf("malformed data URI: expected base64 encoding")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data URI payload: %w", err)
	}

	if mediaType == "" {
		mediaType = "application/octet-stream"
	}

	return mediaType, data, nil
}
