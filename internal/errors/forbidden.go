package errors

import "net/http"

var ErrPermissionDenied = &Exception{
	Message:    "you don't have permission",
	StatusCode: http.StatusForbidden,
}

var ErrNotAssigned = &Exception{
	Message:    "you are not authorized to access this task",
	StatusCode: http.StatusForbidden,
}

var ErrCompanyAlreadyCreated = &Exception{
	Message:    "you have already created a company",
	StatusCode: http.StatusForbidden,
}
