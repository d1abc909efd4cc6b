package settings

import (
	"context"
	"errors"
)

// Setting keys read by the payroll engine. Values are stored as strings.
const (
	KeyTeachingAllowance        = "teaching_allowance"
	KeyTransportAllowance       = "transport_allowance"
	KeyEnableTransportAllowance = "enable_transport_allowance"
)

// Fallback amounts used when the key is unset.
const (
	DefaultTeachingAllowance  = 20000
	DefaultTransportAllowance = 12000
)

var ErrSettingNotFound = errors.New("setting not found")

// SettingsRepository is a read-only key/value store of system settings.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
}
