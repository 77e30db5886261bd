package validators

import (
	"regexp"

	dto "taskdesk.com/taskdesk/internal/data_models"
)

// National format, e.g. +994501234567.
var phonePattern = regexp.MustCompile(`^\+994\d{9}$`)

func ValidateCreateCompanyRequest(r *dto.CreateCompanyRequest) error {
	return asError(Apply([]Field{
		{Name: "name", Value: r.Name, Checks: []Check{MinLen(3), MaxLen(25)}},
		{Name: "phone", Value: r.Phone, Checks: []Check{
			Matches(phonePattern, "phone number must be in +994XXXXXXXXX format"),
		}},
		{Name: "address", Value: r.Address, Checks: []Check{MaxLen(150)}},
	}))
}
