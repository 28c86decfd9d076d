package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("amount must be a positive number")

// minorUnitEpsilon absorbs float noise such as 19.99*100 = 1998.9999999999998.
const minorUnitEpsilon = 1e-6

// ParseAmount accepts a JSON number or a numeric string and returns a finite positive value.
func ParseAmount(v interface{}) (float64, error) {
	var amount float64
	switch n := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: missing", ErrInvalidAmount)
	case float64:
		amount = n
	case int:
		amount = float64(n)
	case int64:
		amount = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
		}
		amount = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidAmount, n)
		}
		amount = f
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, v)
	}

	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidAmount, amount)
	}
	return amount, nil
}

// ToMinorUnits converts a major-unit amount into the processor's integer minor units,
// truncating any fraction of a cent.
func ToMinorUnits(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	minor := math.Trunc(amount*100 + minorUnitEpsilon)
	if minor < 1 || minor > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v is out of range", ErrInvalidAmount, amount)
	}
	return int64(minor), nil
}
