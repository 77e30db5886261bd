package validators

import (
	"taskdesk.com/taskdesk/internal/constants"
	dto "taskdesk.com/taskdesk/internal/data_models"
)

func userIdentityFields(name, surname, email, username, password string) []Field {
	return []Field{
		{Name: "name", Value: name, Checks: []Check{MinLen(3), MaxLen(25)}},
		{Name: "surname", Value: surname, Checks: []Check{MaxLen(50)}},
		{Name: "email", Value: email, Checks: []Check{Email()}},
		{Name: "username", Value: username, Checks: []Check{MaxLen(50)}},
		{Name: "password", Value: password, Checks: []Check{MinLen(8), MaxLen(15)}},
	}
}

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	return asError(Apply(userIdentityFields(
		r.Name, r.Surname, r.Email, r.Username, r.Password,
	)))
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	return asError(Apply([]Field{
		{Name: "email", Value: r.Email, Checks: []Check{Email()}},
		{Name: "password", Value: r.Password},
	}))
}

func ValidateAddEmployeeRequest(r *dto.AddEmployeeRequest) error {
	fields := userIdentityFields(r.Name, r.Surname, r.Email, r.Username, r.Password)
	fields = append(fields, Field{
		Name:  "status",
		Value: r.Status,
		Checks: []Check{
			Enum(constants.ValidUserStatus, "must be one of ACTIVE, DEACTIVE"),
		},
	})
	return asError(Apply(fields))
}
