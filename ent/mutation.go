// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/quizbox/ent/game"
	"github.com/abhisek/quizbox/ent/predicate"
	"github.com/abhisek/quizbox/ent/usagestate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGame       = "Game"
	TypeUsageState = "UsageState"
)

// GameMutation represents an operation that mutates the Game nodes in the graph.
type GameMutation struct {
	config
	op                Op
	typ               string
	id                *int
	created_at        *time.Time
	updated_at        *time.Time
	game_id           *string
	account_id        *string
	started_at        *time.Time
	finished_at       *time.Time
	assigned          *map[string]interface{}
	legacy_used       *[]string
	appendlegacy_used []string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Game, error)
	predicates        []predicate.Game
}

var _ ent.Mutation = (*GameMutation)(nil)

// gameOption allows management of the mutation configuration using functional options.
type gameOption func(*GameMutation)

// newGameMutation creates new mutation for the Game entity.
func newGameMutation(c config, op Op, opts ...gameOption) *GameMutation {
	m := &GameMutation{
		config:        c,
		op:            op,
		typ:           TypeGame,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGameID sets the ID field of the mutation.
func withGameID(id int) gameOption {
	return func(m *GameMutation) {
		var (
			err   error
			once  sync.Once
			value *Game
		)
		m.oldValue = func(ctx context.Context) (*Game, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Game.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGame sets the old Game of the mutation.
func withGame(node *Game) gameOption {
	return func(m *GameMutation) {
		m.oldValue = func(context.Context) (*Game, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GameMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GameMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GameMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GameMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Game.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *GameMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GameMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GameMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GameMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GameMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GameMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetGameID sets the "game_id" field.
func (m *GameMutation) SetGameID(s string) {
	m.game_id = &s
}

// GameID returns the value of the "game_id" field in the mutation.
func (m *GameMutation) GameID() (r string, exists bool) {
	v := m.game_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGameID returns the old "game_id" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldGameID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGameID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGameID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGameID: %w", err)
	}
	return oldValue.GameID, nil
}

// ResetGameID resets all changes to the "game_id" field.
func (m *GameMutation) ResetGameID() {
	m.game_id = nil
}

// SetAccountID sets the "account_id" field.
func (m *GameMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *GameMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *GameMutation) ResetAccountID() {
	m.account_id = nil
}

// SetStartedAt sets the "started_at" field.
func (m *GameMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *GameMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *GameMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *GameMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *GameMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *GameMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[game.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *GameMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[game.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *GameMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, game.FieldFinishedAt)
}

// SetAssigned sets the "assigned" field.
func (m *GameMutation) SetAssigned(value map[string]interface{}) {
	m.assigned = &value
}

// Assigned returns the value of the "assigned" field in the mutation.
func (m *GameMutation) Assigned() (r map[string]interface{}, exists bool) {
	v := m.assigned
	if v == nil {
		return
	}
	return *v, true
}

// OldAssigned returns the old "assigned" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldAssigned(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssigned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssigned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssigned: %w", err)
	}
	return oldValue.Assigned, nil
}

// ClearAssigned clears the value of the "assigned" field.
func (m *GameMutation) ClearAssigned() {
	m.assigned = nil
	m.clearedFields[game.FieldAssigned] = struct{}{}
}

// AssignedCleared returns if the "assigned" field was cleared in this mutation.
func (m *GameMutation) AssignedCleared() bool {
	_, ok := m.clearedFields[game.FieldAssigned]
	return ok
}

// ResetAssigned resets all changes to the "assigned" field.
func (m *GameMutation) ResetAssigned() {
	m.assigned = nil
	delete(m.clearedFields, game.FieldAssigned)
}

// SetLegacyUsed sets the "legacy_used" field.
func (m *GameMutation) SetLegacyUsed(s []string) {
	m.legacy_used = &s
	m.appendlegacy_used = nil
}

// LegacyUsed returns the value of the "legacy_used" field in the mutation.
func (m *GameMutation) LegacyUsed() (r []string, exists bool) {
	v := m.legacy_used
	if v == nil {
		return
	}
	return *v, true
}

// OldLegacyUsed returns the old "legacy_used" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldLegacyUsed(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegacyUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegacyUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegacyUsed: %w", err)
	}
	return oldValue.LegacyUsed, nil
}

// AppendLegacyUsed adds s to the "legacy_used" field.
func (m *GameMutation) AppendLegacyUsed(s []string) {
	m.appendlegacy_used = append(m.appendlegacy_used, s...)
}

// AppendedLegacyUsed returns the list of values that were appended to the "legacy_used" field in this mutation.
func (m *GameMutation) AppendedLegacyUsed() ([]string, bool) {
	if len(m.appendlegacy_used) == 0 {
		return nil, false
	}
	return m.appendlegacy_used, true
}

// ClearLegacyUsed clears the value of the "legacy_used" field.
func (m *GameMutation) ClearLegacyUsed() {
	m.legacy_used = nil
	m.appendlegacy_used = nil
	m.clearedFields[game.FieldLegacyUsed] = struct{}{}
}

// LegacyUsedCleared returns if the "legacy_used" field was cleared in this mutation.
func (m *GameMutation) LegacyUsedCleared() bool {
	_, ok := m.clearedFields[game.FieldLegacyUsed]
	return ok
}

// ResetLegacyUsed resets all changes to the "legacy_used" field.
func (m *GameMutation) ResetLegacyUsed() {
	m.legacy_used = nil
	m.appendlegacy_used = nil
	delete(m.clearedFields, game.FieldLegacyUsed)
}

// Where appends a list predicates to the GameMutation builder.
func (m *GameMutation) Where(ps ...predicate.Game) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GameMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GameMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Game, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GameMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GameMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Game).
func (m *GameMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GameMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, game.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, game.FieldUpdatedAt)
	}
	if m.game_id != nil {
		fields = append(fields, game.FieldGameID)
	}
	if m.account_id != nil {
		fields = append(fields, game.FieldAccountID)
	}
	if m.started_at != nil {
		fields = append(fields, game.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, game.FieldFinishedAt)
	}
	if m.assigned != nil {
		fields = append(fields, game.FieldAssigned)
	}
	if m.legacy_used != nil {
		fields = append(fields, game.FieldLegacyUsed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GameMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case game.FieldCreatedAt:
		return m.CreatedAt()
	case game.FieldUpdatedAt:
		return m.UpdatedAt()
	case game.FieldGameID:
		return m.GameID()
	case game.FieldAccountID:
		return m.AccountID()
	case game.FieldStartedAt:
		return m.StartedAt()
	case game.FieldFinishedAt:
		return m.FinishedAt()
	case game.FieldAssigned:
		return m.Assigned()
	case game.FieldLegacyUsed:
		return m.LegacyUsed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GameMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case game.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case game.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case game.FieldGameID:
		return m.OldGameID(ctx)
	case game.FieldAccountID:
		return m.OldAccountID(ctx)
	case game.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case game.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case game.FieldAssigned:
		return m.OldAssigned(ctx)
	case game.FieldLegacyUsed:
		return m.OldLegacyUsed(ctx)
	}
	return nil, fmt.Errorf("unknown Game field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameMutation) SetField(name string, value ent.Value) error {
	switch name {
	case game.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case game.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case game.FieldGameID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGameID(v)
		return nil
	case game.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case game.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case game.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case game.FieldAssigned:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssigned(v)
		return nil
	case game.FieldLegacyUsed:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegacyUsed(v)
		return nil
	}
	return fmt.Errorf("unknown Game field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GameMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GameMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Game numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GameMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(game.FieldFinishedAt) {
		fields = append(fields, game.FieldFinishedAt)
	}
	if m.FieldCleared(game.FieldAssigned) {
		fields = append(fields, game.FieldAssigned)
	}
	if m.FieldCleared(game.FieldLegacyUsed) {
		fields = append(fields, game.FieldLegacyUsed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GameMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GameMutation) ClearField(name string) error {
	switch name {
	case game.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case game.FieldAssigned:
		m.ClearAssigned()
		return nil
	case game.FieldLegacyUsed:
		m.ClearLegacyUsed()
		return nil
	}
	return fmt.Errorf("unknown Game nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GameMutation) ResetField(name string) error {
	switch name {
	case game.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case game.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case game.FieldGameID:
		m.ResetGameID()
		return nil
	case game.FieldAccountID:
		m.ResetAccountID()
		return nil
	case game.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case game.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case game.FieldAssigned:
		m.ResetAssigned()
		return nil
	case game.FieldLegacyUsed:
		m.ResetLegacyUsed()
		return nil
	}
	return fmt.Errorf("unknown Game field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GameMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GameMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GameMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GameMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GameMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GameMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GameMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Game unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GameMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Game edge %s", name)
}

// UsageStateMutation represents an operation that mutates the UsageState nodes in the graph.
type UsageStateMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	created_at           *time.Time
	updated_at           *time.Time
	account_key          *string
	usage                *map[string]int
	pool_size            *int
	addpool_size         *int
	last_updated         *time.Time
	last_reset_time      *time.Time
	category_reset_times *map[string]time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*UsageState, error)
	predicates           []predicate.UsageState
}

var _ ent.Mutation = (*UsageStateMutation)(nil)

// usagestateOption allows management of the mutation configuration using functional options.
type usagestateOption func(*UsageStateMutation)

// newUsageStateMutation creates new mutation for the UsageState entity.
func newUsageStateMutation(c config, op Op, opts ...usagestateOption) *UsageStateMutation {
	m := &UsageStateMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageStateID sets the ID field of the mutation.
func withUsageStateID(id int) usagestateOption {
	return func(m *UsageStateMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageState
		)
		m.oldValue = func(ctx context.Context) (*UsageState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageState sets the old UsageState of the mutation.
func withUsageState(node *UsageState) usagestateOption {
	return func(m *UsageStateMutation) {
		m.oldValue = func(context.Context) (*UsageState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UsageStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UsageStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UsageState entity.
// If the UsageState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UsageStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UsageStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UsageStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UsageState entity.
// If the UsageState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UsageStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetAccountKey sets the "account_key" field.
func (m *UsageStateMutation) SetAccountKey(s string) {
	m.account_key = &s
}

// AccountKey returns the value of the "account_key" field in the mutation.
func (m *UsageStateMutation) AccountKey() (r string, exists bool) {
	v := m.account_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountKey returns the old "account_key" field's value of the UsageState entity.
// If the UsageState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageStateMutation) OldAccountKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountKey: %w", err)
	}
	return oldValue.AccountKey, nil
}

// ResetAccountKey resets all changes to the "account_key" field.
func (m *UsageStateMutation) ResetAccountKey() {
	m.account_key = nil
}

// SetUsage sets the "usage" field.
func (m *UsageStateMutation) SetUsage(value map[string]int) {
	m.usage = &value
}

// Usage returns the value of the "usage" field in the mutation.
func (m *UsageStateMutation) Usage() (r map[string]int, exists bool) {
	v := m.usage
	if v == nil {
		return
	}
	return *v, true
}

// OldUsage returns the old "usage" field's value of the UsageState entity.
// If the UsageState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageStateMutation) OldUsage(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsage: %w", err)
	}
	return oldValue.Usage, nil
}

// ResetUsage resets all changes to the "usage" field.
func (m *UsageStateMutation) ResetUsage() {
	m.usage = nil
}

// SetPoolSize sets the "pool_size" field.
func (m *UsageStateMutation) SetPoolSize(i int) {
	m.pool_size = &i
	m.addpool_size = nil
}

// PoolSize returns the value of the "pool_size" field in the mutation.
func (m *UsageStateMutation) PoolSize() (r int, exists bool) {
	v := m.pool_size
	if v == nil {
		return
	}
	return *v, true
}

// OldPoolSize returns the old "pool_size" field's value of the UsageState entity.
// If the UsageState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageStateMutation) OldPoolSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoolSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoolSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoolSize: %w", err)
	}
	return oldValue.PoolSize, nil
}

// AddPoolSize adds i to the "pool_size" field.
func (m *UsageStateMutation) AddPoolSize(i int) {
	if m.addpool_size != nil {
		*m.addpool_size += i
	} else {
		m.addpool_size = &i
	}
}

// AddedPoolSize returns the value that was added to the "pool_size" field in this mutation.
func (m *UsageStateMutation) AddedPoolSize() (r int, exists bool) {
	v := m.addpool_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetPoolSize resets all changes to the "pool_size" field.
func (m *UsageStateMutation) ResetPoolSize() {
	m.pool_size = nil
	m.addpool_size = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *UsageStateMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *UsageStateMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the UsageState entity.
// If the UsageState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageStateMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *UsageStateMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// SetLastResetTime sets the "last_reset_time" field.
func (m *UsageStateMutation) SetLastResetTime(t time.Time) {
	m.last_reset_time = &t
}

// LastResetTime returns the value of the "last_reset_time" field in the mutation.
func (m *UsageStateMutation) LastResetTime() (r time.Time, exists bool) {
	v := m.last_reset_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLastResetTime returns the old "last_reset_time" field's value of the UsageState entity.
// If the UsageState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageStateMutation) OldLastResetTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastResetTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastResetTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastResetTime: %w", err)
	}
	return oldValue.LastResetTime, nil
}

// ClearLastResetTime clears the value of the "last_reset_time" field.
func (m *UsageStateMutation) ClearLastResetTime() {
	m.last_reset_time = nil
	m.clearedFields[usagestate.FieldLastResetTime] = struct{}{}
}

// LastResetTimeCleared returns if the "last_reset_time" field was cleared in this mutation.
func (m *UsageStateMutation) LastResetTimeCleared() bool {
	_, ok := m.clearedFields[usagestate.FieldLastResetTime]
	return ok
}

// ResetLastResetTime resets all changes to the "last_reset_time" field.
func (m *UsageStateMutation) ResetLastResetTime() {
	m.last_reset_time = nil
	delete(m.clearedFields, usagestate.FieldLastResetTime)
}

// SetCategoryResetTimes sets the "category_reset_times" field.
func (m *UsageStateMutation) SetCategoryResetTimes(value map[string]time.Time) {
	m.category_reset_times = &value
}

// CategoryResetTimes returns the value of the "category_reset_times" field in the mutation.
func (m *UsageStateMutation) CategoryResetTimes() (r map[string]time.Time, exists bool) {
	v := m.category_reset_times
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryResetTimes returns the old "category_reset_times" field's value of the UsageState entity.
// If the UsageState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageStateMutation) OldCategoryResetTimes(ctx context.Context) (v map[string]time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryResetTimes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryResetTimes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryResetTimes: %w", err)
	}
	return oldValue.CategoryResetTimes, nil
}

// ClearCategoryResetTimes clears the value of the "category_reset_times" field.
func (m *UsageStateMutation) ClearCategoryResetTimes() {
	m.category_reset_times = nil
	m.clearedFields[usagestate.FieldCategoryResetTimes] = struct{}{}
}

// CategoryResetTimesCleared returns if the "category_reset_times" field was cleared in this mutation.
func (m *UsageStateMutation) CategoryResetTimesCleared() bool {
	_, ok := m.clearedFields[usagestate.FieldCategoryResetTimes]
	return ok
}

// ResetCategoryResetTimes resets all changes to the "category_reset_times" field.
func (m *UsageStateMutation) ResetCategoryResetTimes() {
	m.category_reset_times = nil
	delete(m.clearedFields, usagestate.FieldCategoryResetTimes)
}

// Where appends a list predicates to the UsageStateMutation builder.
func (m *UsageStateMutation) Where(ps ...predicate.UsageState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageState).
func (m *UsageStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageStateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, usagestate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usagestate.FieldUpdatedAt)
	}
	if m.account_key != nil {
		fields = append(fields, usagestate.FieldAccountKey)
	}
	if m.usage != nil {
		fields = append(fields, usagestate.FieldUsage)
	}
	if m.pool_size != nil {
		fields = append(fields, usagestate.FieldPoolSize)
	}
	if m.last_updated != nil {
		fields = append(fields, usagestate.FieldLastUpdated)
	}
	if m.last_reset_time != nil {
		fields = append(fields, usagestate.FieldLastResetTime)
	}
	if m.category_reset_times != nil {
		fields = append(fields, usagestate.FieldCategoryResetTimes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usagestate.FieldCreatedAt:
		return m.CreatedAt()
	case usagestate.FieldUpdatedAt:
		return m.UpdatedAt()
	case usagestate.FieldAccountKey:
		return m.AccountKey()
	case usagestate.FieldUsage:
		return m.Usage()
	case usagestate.FieldPoolSize:
		return m.PoolSize()
	case usagestate.FieldLastUpdated:
		return m.LastUpdated()
	case usagestate.FieldLastResetTime:
		return m.LastResetTime()
	case usagestate.FieldCategoryResetTimes:
		return m.CategoryResetTimes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usagestate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usagestate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case usagestate.FieldAccountKey:
		return m.OldAccountKey(ctx)
	case usagestate.FieldUsage:
		return m.OldUsage(ctx)
	case usagestate.FieldPoolSize:
		return m.OldPoolSize(ctx)
	case usagestate.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	case usagestate.FieldLastResetTime:
		return m.OldLastResetTime(ctx)
	case usagestate.FieldCategoryResetTimes:
		return m.OldCategoryResetTimes(ctx)
	}
	return nil, fmt.Errorf("unknown UsageState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usagestate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usagestate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case usagestate.FieldAccountKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountKey(v)
		return nil
	case usagestate.FieldUsage:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsage(v)
		return nil
	case usagestate.FieldPoolSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoolSize(v)
		return nil
	case usagestate.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	case usagestate.FieldLastResetTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastResetTime(v)
		return nil
	case usagestate.FieldCategoryResetTimes:
		v, ok := value.(map[string]time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryResetTimes(v)
		return nil
	}
	return fmt.Errorf("unknown UsageState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageStateMutation) AddedFields() []string {
	var fields []string
	if m.addpool_size != nil {
		fields = append(fields, usagestate.FieldPoolSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usagestate.FieldPoolSize:
		return m.AddedPoolSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usagestate.FieldPoolSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPoolSize(v)
		return nil
	}
	return fmt.Errorf("unknown UsageState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usagestate.FieldLastResetTime) {
		fields = append(fields, usagestate.FieldLastResetTime)
	}
	if m.FieldCleared(usagestate.FieldCategoryResetTimes) {
		fields = append(fields, usagestate.FieldCategoryResetTimes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageStateMutation) ClearField(name string) error {
	switch name {
	case usagestate.FieldLastResetTime:
		m.ClearLastResetTime()
		return nil
	case usagestate.FieldCategoryResetTimes:
		m.ClearCategoryResetTimes()
		return nil
	}
	return fmt.Errorf("unknown UsageState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageStateMutation) ResetField(name string) error {
	switch name {
	case usagestate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usagestate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case usagestate.FieldAccountKey:
		m.ResetAccountKey()
		return nil
	case usagestate.FieldUsage:
		m.ResetUsage()
		return nil
	case usagestate.FieldPoolSize:
		m.ResetPoolSize()
		return nil
	case usagestate.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	case usagestate.FieldLastResetTime:
		m.ResetLastResetTime()
		return nil
	case usagestate.FieldCategoryResetTimes:
		m.ResetCategoryResetTimes()
		return nil
	}
	return fmt.Errorf("unknown UsageState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UsageState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UsageState edge %s", name)
}
