// Code generated by ent, DO NOT EDIT.

package usagestate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/quizbox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UsageState {
	return predicate.UsageState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UsageState {
	return predicate.UsageState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UsageState {
	return predicate.UsageState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UsageState {
	return predicate.UsageState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UsageState {
	return predicate.UsageState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UsageState {
	return predicate.UsageState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UsageState {
	return predicate.UsageState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UsageState {
	return predicate.UsageState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UsageState {
	return predicate.UsageState(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldEQ(FieldUpdatedAt, v))
}

// AccountKey applies equality check predicate on the "account_key" field. It's identical to AccountKeyEQ.
func AccountKey(v string) predicate.UsageState {
	return predicate.UsageState(sql.FieldEQ(FieldAccountKey, v))
}

// PoolSize applies equality check predicate on the "pool_size" field. It's identical to PoolSizeEQ.
func PoolSize(v int) predicate.UsageState {
	return predicate.UsageState(sql.FieldEQ(FieldPoolSize, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldEQ(FieldLastUpdated, v))
}

// LastResetTime applies equality check predicate on the "last_reset_time" field. It's identical to LastResetTimeEQ.
func LastResetTime(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldEQ(FieldLastResetTime, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldLTE(FieldUpdatedAt, v))
}

// AccountKeyEQ applies the EQ predicate on the "account_key" field.
func AccountKeyEQ(v string) predicate.UsageState {
	return predicate.UsageState(sql.FieldEQ(FieldAccountKey, v))
}

// AccountKeyNEQ applies the NEQ predicate on the "account_key" field.
func AccountKeyNEQ(v string) predicate.UsageState {
	return predicate.UsageState(sql.FieldNEQ(FieldAccountKey, v))
}

// AccountKeyIn applies the In predicate on the "account_key" field.
func AccountKeyIn(vs ...string) predicate.UsageState {
	return predicate.UsageState(sql.FieldIn(FieldAccountKey, vs...))
}

// AccountKeyNotIn applies the NotIn predicate on the "account_key" field.
func AccountKeyNotIn(vs ...string) predicate.UsageState {
	return predicate.UsageState(sql.FieldNotIn(FieldAccountKey, vs...))
}

// AccountKeyGT applies the GT predicate on the "account_key" field.
func AccountKeyGT(v string) predicate.UsageState {
	return predicate.UsageState(sql.FieldGT(FieldAccountKey, v))
}

// AccountKeyGTE applies the GTE predicate on the "account_key" field.
func AccountKeyGTE(v string) predicate.UsageState {
	return predicate.UsageState(sql.FieldGTE(FieldAccountKey, v))
}

// AccountKeyLT applies the LT predicate on the "account_key" field.
func AccountKeyLT(v string) predicate.UsageState {
	return predicate.UsageState(sql.FieldLT(FieldAccountKey, v))
}

// AccountKeyLTE applies the LTE predicate on the "account_key" field.
func AccountKeyLTE(v string) predicate.UsageState {
	return predicate.UsageState(sql.FieldLTE(FieldAccountKey, v))
}

// AccountKeyContains applies the Contains predicate on the "account_key" field.
func AccountKeyContains(v string) predicate.UsageState {
	return predicate.UsageState(sql.FieldContains(FieldAccountKey, v))
}

// AccountKeyHasPrefix applies the HasPrefix predicate on the "account_key" field.
func AccountKeyHasPrefix(v string) predicate.UsageState {
	return predicate.UsageState(sql.FieldHasPrefix(FieldAccountKey, v))
}

// AccountKeyHasSuffix applies the HasSuffix predicate on the "account_key" field.
func AccountKeyHasSuffix(v string) predicate.UsageState {
	return predicate.UsageState(sql.FieldHasSuffix(FieldAccountKey, v))
}

// AccountKeyEqualFold applies the EqualFold predicate on the "account_key" field.
func AccountKeyEqualFold(v string) predicate.UsageState {
	return predicate.UsageState(sql.FieldEqualFold(FieldAccountKey, v))
}

// AccountKeyContainsFold applies the ContainsFold predicate on the "account_key" field.
func AccountKeyContainsFold(v string) predicate.UsageState {
	return predicate.UsageState(sql.FieldContainsFold(FieldAccountKey, v))
}

// PoolSizeEQ applies the EQ predicate on the "pool_size" field.
func PoolSizeEQ(v int) predicate.UsageState {
	return predicate.UsageState(sql.FieldEQ(FieldPoolSize, v))
}

// PoolSizeNEQ applies the NEQ predicate on the "pool_size" field.
func PoolSizeNEQ(v int) predicate.UsageState {
	return predicate.UsageState(sql.FieldNEQ(FieldPoolSize, v))
}

// PoolSizeIn applies the In predicate on the "pool_size" field.
func PoolSizeIn(vs ...int) predicate.UsageState {
	return predicate.UsageState(sql.FieldIn(FieldPoolSize, vs...))
}

// PoolSizeNotIn applies the NotIn predicate on the "pool_size" field.
func PoolSizeNotIn(vs ...int) predicate.UsageState {
	return predicate.UsageState(sql.FieldNotIn(FieldPoolSize, vs...))
}

// PoolSizeGT applies the GT predicate on the "pool_size" field.
func PoolSizeGT(v int) predicate.UsageState {
	return predicate.UsageState(sql.FieldGT(FieldPoolSize, v))
}

// PoolSizeGTE applies the GTE predicate on the "pool_size" field.
func PoolSizeGTE(v int) predicate.UsageState {
	return predicate.UsageState(sql.FieldGTE(FieldPoolSize, v))
}

// PoolSizeLT applies the LT predicate on the "pool_size" field.
func PoolSizeLT(v int) predicate.UsageState {
	return predicate.UsageState(sql.FieldLT(FieldPoolSize, v))
}

// PoolSizeLTE applies the LTE predicate on the "pool_size" field.
func PoolSizeLTE(v int) predicate.UsageState {
	return predicate.UsageState(sql.FieldLTE(FieldPoolSize, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldLTE(FieldLastUpdated, v))
}

// LastResetTimeEQ applies the EQ predicate on the "last_reset_time" field.
func LastResetTimeEQ(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldEQ(FieldLastResetTime, v))
}

// LastResetTimeNEQ applies the NEQ predicate on the "last_reset_time" field.
func LastResetTimeNEQ(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldNEQ(FieldLastResetTime, v))
}

// LastResetTimeIn applies the In predicate on the "last_reset_time" field.
func LastResetTimeIn(vs ...time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldIn(FieldLastResetTime, vs...))
}

// LastResetTimeNotIn applies the NotIn predicate on the "last_reset_time" field.
func LastResetTimeNotIn(vs ...time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldNotIn(FieldLastResetTime, vs...))
}

// LastResetTimeGT applies the GT predicate on the "last_reset_time" field.
func LastResetTimeGT(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldGT(FieldLastResetTime, v))
}

// LastResetTimeGTE applies the GTE predicate on the "last_reset_time" field.
func LastResetTimeGTE(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldGTE(FieldLastResetTime, v))
}

// LastResetTimeLT applies the LT predicate on the "last_reset_time" field.
func LastResetTimeLT(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldLT(FieldLastResetTime, v))
}

// LastResetTimeLTE applies the LTE predicate on the "last_reset_time" field.
func LastResetTimeLTE(v time.Time) predicate.UsageState {
	return predicate.UsageState(sql.FieldLTE(FieldLastResetTime, v))
}

// LastResetTimeIsNil applies the IsNil predicate on the "last_reset_time" field.
func LastResetTimeIsNil() predicate.UsageState {
	return predicate.UsageState(sql.FieldIsNull(FieldLastResetTime))
}

// LastResetTimeNotNil applies the NotNil predicate on the "last_reset_time" field.
func LastResetTimeNotNil() predicate.UsageState {
	return predicate.UsageState(sql.FieldNotNull(FieldLastResetTime))
}

// CategoryResetTimesIsNil applies the IsNil predicate on the "category_reset_times" field.
func CategoryResetTimesIsNil() predicate.UsageState {
	return predicate.UsageState(sql.FieldIsNull(FieldCategoryResetTimes))
}

// CategoryResetTimesNotNil applies the NotNil predicate on the "category_reset_times" field.
func CategoryResetTimesNotNil() predicate.UsageState {
	return predicate.UsageState(sql.FieldNotNull(FieldCategoryResetTimes))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UsageState) predicate.UsageState {
	return predicate.UsageState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UsageState) predicate.UsageState {
	return predicate.UsageState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UsageState) predicate.UsageState {
	return predicate.UsageState(sql.NotPredicates(p))
}
