// Code generated by ent, DO NOT EDIT.

package usagestate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the usagestate type in the database.
	Label = "usage_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldAccountKey holds the string denoting the account_key field in the database.
	FieldAccountKey = "account_key"
	// FieldUsage holds the string denoting the usage field in the database.
	FieldUsage = "usage"
	// FieldPoolSize holds the string denoting the pool_size field in the database.
	FieldPoolSize = "pool_size"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// FieldLastResetTime holds the string denoting the last_reset_time field in the database.
	FieldLastResetTime = "last_reset_time"
	// FieldCategoryResetTimes holds the string denoting the category_reset_times field in the database.
	FieldCategoryResetTimes = "category_reset_times"
	// Table holds the table name of the usagestate in the database.
	Table = "usage_states"
)

// Columns holds all SQL columns for usagestate fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldAccountKey,
	FieldUsage,
	FieldPoolSize,
	FieldLastUpdated,
	FieldLastResetTime,
	FieldCategoryResetTimes,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultPoolSize holds the default value on creation for the "pool_size" field.
	DefaultPoolSize int
	// DefaultLastUpdated holds the default value on creation for the "last_updated" field.
	DefaultLastUpdated func() time.Time
)

// OrderOption defines the ordering options for the UsageState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAccountKey orders the results by the account_key field.
func ByAccountKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountKey, opts...).ToFunc()
}

// ByPoolSize orders the results by the pool_size field.
func ByPoolSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoolSize, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}

// ByLastResetTime orders the results by the last_reset_time field.
func ByLastResetTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastResetTime, opts...).ToFunc()
}
