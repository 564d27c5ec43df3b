package salary

import "errors"

var (
	ErrSalaryNotFound  = errors.New("monthly salary record not found")
	ErrSalaryExists    = errors.New("monthly salary record already exists for this period")
	ErrAlreadyPaid     = errors.New("monthly salary record is already marked paid")
	ErrInvalidPeriod   = errors.New("invalid salary period")
	ErrReceiptNotFound = errors.New("earning receipt not found")
)
