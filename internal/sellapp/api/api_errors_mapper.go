package api

import (
	"errors"
	"net/http"

	"github.com/go-resty/resty/v2"
)

var (
	InvalidCredentialsError = errors.New("invalid api key")
)

func MapResponseToError(response *resty.Response) error {
	if response == nil {
		return errors.New("response is nil")
	}

	switch response.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return InvalidCredentialsError
	}

	return nil
}
