package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/ledgerwise/internal/models"
	"github.com/mmynk/ledgerwise/internal/taxid"
)

// Error kinds reported by Validate. Use errors.Is to test for them.
var (
	ErrInvalidFormat   = errors.New("invalid format")
	ErrInvalidChecksum = errors.New("invalid checksum")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrOutOfRange      = errors.New("out of range")
)

var (
	// MaxAmount is the largest amount a single entry may carry.
	MaxAmount = decimal.NewFromInt(15000)
	// MinAmount is the smallest amount a single entry may carry.
	MinAmount = decimal.NewFromInt(-2000)
)

const (
	// maxAmountText bounds the textual form of an amount.
	maxAmountText = 64
	// maxAmountExponent bounds the decimal exponent of an amount in both
	// directions. Comparing or summing decimals costs time proportional to
	// the exponent gap.
	maxAmountExponent = 18
)

// ValidationError describes the first rule an entry failed.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Unwrap() error { return e.Kind }

// BatchError reports the position of the first invalid entry in a batch.
type BatchError struct {
	Index int
	Err   error
}

func (e *BatchError) Error() string { return fmt.Sprintf("entry %d: %v", e.Index, e.Err) }
func (e *BatchError) Unwrap() error { return e.Err }

// ValidatedEntry is an entry that passed Validate. A populated value can only
// be obtained through Admit or AdmitAll. The zero value has an empty
// identifier and is skipped by every aggregation.
type ValidatedEntry struct {
	identifier string
	amount     decimal.Decimal
}

// Identifier returns the entry's checked identifier.
func (e ValidatedEntry) Identifier() string { return e.identifier }

// Amount returns the entry's parsed amount.
func (e ValidatedEntry) Amount() decimal.Decimal { return e.amount }

// Validate checks an entry and returns nil if it is admissible. Rules are
// applied in order and the first failure is returned:
//
//  1. identifier is exactly 11 numeric characters
//  2. identifier passes the check digit test
//  3. amount parses to a finite number
//  4. amount <= MaxAmount
//  5. amount >= MinAmount
func Validate(entry models.Entry) error {
	_, err := Admit(entry)
	return err
}

// Admit validates an entry and returns its typed form.
func Admit(entry models.Entry) (ValidatedEntry, error) {
	if !taxid.IsWellFormed(entry.Identifier) {
		return ValidatedEntry{}, &ValidationError{
			Kind:    ErrInvalidFormat,
			Message: "identifier must be exactly 11 numeric characters",
		}
	}
	if !taxid.IsValid(entry.Identifier) {
		return ValidatedEntry{}, &ValidationError{
			Kind:    ErrInvalidChecksum,
			Message: "identifier failed checksum",
		}
	}

	amount, err := parseAmount(entry.Amount)
	if err != nil {
		return ValidatedEntry{}, &ValidationError{
			Kind:    ErrInvalidAmount,
			Message: "amount must be numeric",
		}
	}
	if amount.GreaterThan(MaxAmount) {
		return ValidatedEntry{}, &ValidationError{
			Kind:    ErrOutOfRange,
			Message: "amount exceeds upper bound " + MaxAmount.String(),
		}
	}
	if amount.LessThan(MinAmount) {
		return ValidatedEntry{}, &ValidationError{
			Kind:    ErrOutOfRange,
			Message: "amount below lower bound " + MinAmount.String(),
		}
	}

	return ValidatedEntry{identifier: entry.Identifier, amount: amount}, nil
}

// AdmitAll admits every entry of a batch, stopping at the first invalid one.
func AdmitAll(entries []models.Entry) ([]ValidatedEntry, error) {
	out := make([]ValidatedEntry, 0, len(entries))
	for i, entry := range entries {
		v, err := Admit(entry)
		if err != nil {
			return nil, &BatchError{Index: i, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// KindOf returns a stable snake_case name for the validation kind of err,
// or "" if err is not a validation failure.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidFormat):
		return "invalid_format"
	case errors.Is(err, ErrInvalidChecksum):
		return "invalid_checksum"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	default:
		return ""
	}
}

func parseAmount(v any) (decimal.Decimal, error) {
	d, err := toDecimal(v)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if exp := d.Exponent(); exp < -maxAmountExponent || exp > maxAmountExponent {
		return decimal.Decimal{}, fmt.Errorf("amount exponent out of range: %d", exp)
	}
	return d, nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch a := v.(type) {
	case decimal.Decimal:
		return a, nil
	case string:
		return fromText(strings.TrimSpace(a))
	case json.Number:
		return fromText(a.String())
	case float64:
		return fromFloat(a)
	case float32:
		return fromFloat(float64(a))
	case int:
		return decimal.NewFromInt(int64(a)), nil
	case int8:
		return decimal.NewFromInt(int64(a)), nil
	case int16:
		return decimal.NewFromInt(int64(a)), nil
	case int32:
		return decimal.NewFromInt32(a), nil
	case int64:
		return decimal.NewFromInt(a), nil
	case uint:
		return fromUint(uint64(a)), nil
	case uint8:
		return fromUint(uint64(a)), nil
	case uint16:
		return fromUint(uint64(a)), nil
	case uint32:
		return fromUint(uint64(a)), nil
	case uint64:
		return fromUint(a), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unsupported amount type %T", v)
	}
}

func fromText(s string) (decimal.Decimal, error) {
	if len(s) > maxAmountText {
		return decimal.Decimal{}, fmt.Errorf("amount text longer than %d characters", maxAmountText)
	}
	return decimal.NewFromString(s)
}

func fromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

func fromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, fmt.Errorf("amount is not finite: %v", f)
	}
	return decimal.NewFromFloat(f), nil
}
