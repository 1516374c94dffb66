package upload

import (
	"context"
	"errors"
)

// Disabled is the uploader used when no provider credential is configured.
// Every upload attempt fails, which surfaces as an external-service error.
type Disabled struct{}

var _ Uploader = Disabled{}

// Upload always fails.
func (Disabled) Upload(ctx context.Context, source string) (string, error) {
	return "", errors.New("image uploads are not configured")
}
