// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/quizbox/ent/usagestate"
)

// UsageState is the model entity for the UsageState schema.
type UsageState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Account ID, or the fixed anonymous key
	AccountKey string `json:"account_key,omitempty"`
	// Question key → use count
	Usage map[string]int `json:"usage,omitempty"`
	// PoolSize holds the value of the "pool_size" field.
	PoolSize int `json:"pool_size,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated time.Time `json:"last_updated,omitempty"`
	// LastResetTime holds the value of the "last_reset_time" field.
	LastResetTime *time.Time `json:"last_reset_time,omitempty"`
	// CategoryResetTimes holds the value of the "category_reset_times" field.
	CategoryResetTimes map[string]time.Time `json:"category_reset_times,omitempty"`
	selectValues       sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UsageState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usagestate.FieldUsage, usagestate.FieldCategoryResetTimes:
			values[i] = new([]byte)
		case usagestate.FieldID, usagestate.FieldPoolSize:
			values[i] = new(sql.NullInt64)
		case usagestate.FieldAccountKey:
			values[i] = new(sql.NullString)
		case usagestate.FieldCreatedAt, usagestate.FieldUpdatedAt, usagestate.FieldLastUpdated, usagestate.FieldLastResetTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UsageState fields.
func (_m *UsageState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usagestate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case usagestate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case usagestate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case usagestate.FieldAccountKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_key", values[i])
			} else if value.Valid {
				_m.AccountKey = value.String
			}
		case usagestate.FieldUsage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field usage", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Usage); err != nil {
					return fmt.Errorf("unmarshal field usage: %w", err)
				}
			}
		case usagestate.FieldPoolSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pool_size", values[i])
			} else if value.Valid {
				_m.PoolSize = int(value.Int64)
			}
		case usagestate.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		case usagestate.FieldLastResetTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reset_time", values[i])
			} else if value.Valid {
				_m.LastResetTime = new(time.Time)
				*_m.LastResetTime = value.Time
			}
		case usagestate.FieldCategoryResetTimes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field category_reset_times", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CategoryResetTimes); err != nil {
					return fmt.Errorf("unmarshal field category_reset_times: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UsageState.
// This includes values selected through modifiers, order, etc.
func (_m *UsageState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UsageState.
// Note that you need to call UsageState.Unwrap() before calling this method if this UsageState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UsageState) Update() *UsageStateUpdateOne {
	return NewUsageStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UsageState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UsageState) Unwrap() *UsageState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UsageState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UsageState) String() string {
	var builder strings.Builder
	builder.WriteString("UsageState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("account_key=")
	builder.WriteString(_m.AccountKey)
	builder.WriteString(", ")
	builder.WriteString("usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Usage))
	builder.WriteString(", ")
	builder.WriteString("pool_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.PoolSize))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastResetTime; v != nil {
		builder.WriteString("last_reset_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("category_reset_times=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryResetTimes))
	builder.WriteByte(')')
	return builder.String()
}

// UsageStates is a parsable slice of UsageState.
type UsageStates []*UsageState
