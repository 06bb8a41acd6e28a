// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Game is the predicate function for game builders.
type Game func(*sql.Selector)

// UsageState is the predicate function for usagestate builders.
type UsageState func(*sql.Selector)
