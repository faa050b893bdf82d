package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Sex       string `json:"sex"`
	Income    string `json:"income"`
}

func (r CreateCustomerRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}

	if strings.TrimSpace(r.BirthDate) == "" {
		errs = append(errs, "birthDate is required")
	} else if _, err := time.Parse("2006-01-02", strings.TrimSpace(r.BirthDate)); err != nil {
		errs = append(errs, "birthDate must be formatted as YYYY-MM-DD")
	}

	sex := strings.ToUpper(strings.TrimSpace(r.Sex))
	if sex == "" {
		errs = append(errs, "sex is required")
	} else if sex != "M" && sex != "F" {
		errs = append(errs, "sex must be M or F")
	}

	if strings.TrimSpace(r.Income) != "" {
		parsed, err := decimal.NewFromString(strings.TrimSpace(r.Income))
		if err != nil {
			errs = append(errs, "income must be numeric")
		} else if parsed.IsNegative() {
			errs = append(errs, "income cannot be negative")
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type CustomerResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Sex       string `json:"sex"`
	Income    string `json:"income"`
	CreatedAt string `json:"createdAt"`
}
