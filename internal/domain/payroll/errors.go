package payroll

import "errors"

var (
	ErrRecordNotFound   = errors.New("payroll record not found")
	ErrProcessingFailed = errors.New("payroll processing failed")
)
