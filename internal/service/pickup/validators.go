package pickup

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"

	"pickuppoint/internal/entities"
)

const phoneRegion = "IT"

var validate = validator.New()

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func isValidPhone(phone string) bool {
	parsed, err := libphonenumber.Parse(strings.TrimSpace(phone), phoneRegion)
	if err != nil {
		return false
	}
	return libphonenumber.IsValidNumber(parsed)
}

func isValidStatus(status entities.PackageStatusType) bool {
	switch status {
	case entities.PackageInArrivo,
		entities.PackageConsegnato,
		entities.PackageRitirato,
		entities.PackageInGiacenza,
		entities.PackageInGiacenzaScaduto:
		return true
	default:
		return false
	}
}
