package errors

import "net/http"

var ErrTokenNotFound = &Exception{
	Message:    "token not found",
	StatusCode: http.StatusUnauthorized,
}

var ErrInvalidToken = &Exception{
	Message:    "the token is invalid",
	StatusCode: http.StatusUnauthorized,
}

var ErrInvalidCredentials = &Exception{
	Message:    "email or password is incorrect",
	StatusCode: http.StatusUnauthorized,
}
