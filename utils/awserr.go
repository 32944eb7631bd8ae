package utils

import (
	"errors"

	"github.com/aws/smithy-go"
)

// APIErrorCode returns the AWS error code carried by err, or "" when err did
// not come back from an AWS API.
func APIErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
