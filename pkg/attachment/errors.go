package attachment

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

var (
	// ErrInvalidConfig is returned when a source is missing required configuration.
	ErrInvalidConfig = errors.New("attachment: invalid configuration")

	// ErrInvalidRef is returned when a reference cannot be resolved by the source.
	ErrInvalidRef = errors.New("attachment: invalid reference")

	// ErrNotFound is returned when the referenced object does not exist.
	ErrNotFound = errors.New("attachment: not found")

	// ErrAccessDenied is returned when the source refuses access to the object.
	ErrAccessDenied = errors.New("attachment: access denied")

	// ErrDownloadFailed is returned for network failures and non-OK responses.
	ErrDownloadFailed = errors.New("attachment: download failed")

	// ErrTooLarge is returned when the object exceeds the configured size limit.
	ErrTooLarge = errors.New("attachment: file exceeds size limit")

	// ErrEmpty is returned when the object has no content.
	ErrEmpty = errors.New("attachment: file is empty")
)

// wrapS3Error maps S3 API errors onto the package sentinels.
// The original error is formatted with %v so callers match on sentinels only.
func wrapS3Error(err error) error {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
	}

	return fmt.Errorf("%w: %v", ErrDownloadFailed, err)
}
