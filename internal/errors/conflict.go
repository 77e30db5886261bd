package errors

import "net/http"

var ErrEmailTaken = &Exception{
	Message:    "a user with this email already exists",
	StatusCode: http.StatusConflict,
}

var ErrCompanyExists = &Exception{
	Message:    "a company with this name, phone or address already exists",
	StatusCode: http.StatusConflict,
}
