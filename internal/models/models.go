package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Decimal is the numeric type used for quantities and money amounts. At the
// JSON boundary it accepts a plain number, a numeric string, or the
// Decimal128 wire wrapper {"$numberDecimal": "12.50"} emitted by document
// stores. Unparsable values decode as zero instead of failing the request,
// so total aggregation stays tolerant of malformed items.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal builds a Decimal from a shopspring decimal.
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

// DecimalFromFloat builds a Decimal from a float64.
func DecimalFromFloat(f float64) Decimal {
	return Decimal{Decimal: decimal.NewFromFloat(f)}
}

// numberDecimalWrapper matches the MongoDB extended-JSON decimal envelope.
type numberDecimalWrapper struct {
	NumberDecimal string `json:"$numberDecimal"`
}

func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		d.Decimal = decimal.Zero
		return nil
	}

	// {"$numberDecimal": "..."} wrapper
	if data[0] == '{' {
		var wrapper numberDecimalWrapper
		if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.NumberDecimal != "" {
			if parsed, perr := decimal.NewFromString(wrapper.NumberDecimal); perr == nil {
				d.Decimal = parsed
				return nil
			}
		}
		d.Decimal = decimal.Zero
		return nil
	}

	// Quoted numeric string
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			d.Decimal = decimal.Zero
			return nil
		}
		if parsed, perr := decimal.NewFromString(s); perr == nil {
			d.Decimal = parsed
			return nil
		}
		d.Decimal = decimal.Zero
		return nil
	}

	// Plain JSON number
	if parsed, err := decimal.NewFromString(string(data)); err == nil {
		d.Decimal = parsed
		return nil
	}
	d.Decimal = decimal.Zero
	return nil
}

// MarshalJSON emits a bare JSON number rather than shopspring's default
// quoted string, which is what the browser client expects for amounts.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.Decimal.String()), nil
}

// Date is a calendar date. It accepts both "2006-01-02" and RFC3339 input
// and always renders as "2006-01-02".
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate builds a Date from a time.Time.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Time.Format(dateLayout))
}

// String formats the date as YYYY-MM-DD, matching the JSON representation.
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(dateLayout)
}

// Scan implements the sql.Scanner interface for Date.
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("failed to scan Date: unsupported type %T", value)
	}
}

// Value implements the driver.Valuer interface for Date.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// LineItem is one billed entry embedded within an Invoice. Line items have
// no identity of their own and are replaced wholesale on every update.
type LineItem struct {
	Description string  `json:"description" db:"description"`
	Quantity    Decimal `json:"quantity" db:"quantity"`
	UnitPrice   Decimal `json:"unit_price" db:"unit_price"`
	LineTotal   Decimal `json:"line_total" db:"line_total"`
}

// LineItemList decodes the "details" payload field. A payload where details
// is absent, null, or not a JSON array must be reported by the domain
// validator in rule order, so decoding never fails outright; the shape
// problem is recorded instead.
type LineItemList struct {
	present bool
	invalid bool
	items   []LineItem
}

// NewLineItemList wraps a slice of line items as a well-formed list.
func NewLineItemList(items []LineItem) LineItemList {
	return LineItemList{present: true, items: items}
}

func (l *LineItemList) UnmarshalJSON(data []byte) error {
	l.present = true
	l.invalid = false
	l.items = nil
	if string(bytes.TrimSpace(data)) == "null" {
		l.invalid = true
		return nil
	}
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		l.invalid = true
		return nil
	}
	l.items = items
	return nil
}

func (l LineItemList) MarshalJSON() ([]byte, error) {
	if !l.IsArray() {
		return []byte("null"), nil
	}
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}

// IsArray reports whether the field was supplied as a JSON array.
func (l LineItemList) IsArray() bool {
	return l.present && !l.invalid
}

// Items returns the decoded line items. Empty for non-array payloads.
func (l LineItemList) Items() []LineItem {
	return l.items
}

// Invoice is a billing document identified by its unique invoice_number.
// The invoice_number acts as the natural key: lookups, updates and deletes
// address invoices by number, not by the surrogate id.
type Invoice struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	InvoiceNumber string     `json:"invoice_number" db:"invoice_number"`
	CustomerName  string     `json:"customer_name" db:"customer_name"`
	Date          Date       `json:"date" db:"date"`
	Details       []LineItem `json:"details" db:"details"`
	TotalAmount   Decimal    `json:"total_amount" db:"total_amount"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}
