package errors

import "net/http"

var ErrUserNotFound = &Exception{
	Message:    "user not found",
	StatusCode: http.StatusNotFound,
}

var ErrTaskNotFound = &Exception{
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}

var ErrCompanyNotFound = &Exception{
	Message:    "company not found",
	StatusCode: http.StatusNotFound,
}

var ErrEmployeesNotFound = &Exception{
	Message:    "employee(s) not found",
	StatusCode: http.StatusNotFound,
}
