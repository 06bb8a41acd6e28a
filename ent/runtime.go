// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/quizbox/ent/game"
	"github.com/abhisek/quizbox/ent/schema"
	"github.com/abhisek/quizbox/ent/usagestate"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	gameMixin := schema.Game{}.Mixin()
	gameMixinFields0 := gameMixin[0].Fields()
	_ = gameMixinFields0
	gameFields := schema.Game{}.Fields()
	_ = gameFields
	// gameDescCreatedAt is the schema descriptor for created_at field.
	gameDescCreatedAt := gameMixinFields0[0].Descriptor()
	// game.DefaultCreatedAt holds the default value on creation for the created_at field.
	game.DefaultCreatedAt = gameDescCreatedAt.Default.(func() time.Time)
	// gameDescUpdatedAt is the schema descriptor for updated_at field.
	gameDescUpdatedAt := gameMixinFields0[1].Descriptor()
	// game.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	game.DefaultUpdatedAt = gameDescUpdatedAt.Default.(func() time.Time)
	// game.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	game.UpdateDefaultUpdatedAt = gameDescUpdatedAt.UpdateDefault.(func() time.Time)
	// gameDescStartedAt is the schema descriptor for started_at field.
	gameDescStartedAt := gameFields[2].Descriptor()
	// game.DefaultStartedAt holds the default value on creation for the started_at field.
	game.DefaultStartedAt = gameDescStartedAt.Default.(func() time.Time)
	usagestateMixin := schema.UsageState{}.Mixin()
	usagestateMixinFields0 := usagestateMixin[0].Fields()
	_ = usagestateMixinFields0
	usagestateFields := schema.UsageState{}.Fields()
	_ = usagestateFields
	// usagestateDescCreatedAt is the schema descriptor for created_at field.
	usagestateDescCreatedAt := usagestateMixinFields0[0].Descriptor()
	// usagestate.DefaultCreatedAt holds the default value on creation for the created_at field.
	usagestate.DefaultCreatedAt = usagestateDescCreatedAt.Default.(func() time.Time)
	// usagestateDescUpdatedAt is the schema descriptor for updated_at field.
	usagestateDescUpdatedAt := usagestateMixinFields0[1].Descriptor()
	// usagestate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usagestate.DefaultUpdatedAt = usagestateDescUpdatedAt.Default.(func() time.Time)
	// usagestate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usagestate.UpdateDefaultUpdatedAt = usagestateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usagestateDescPoolSize is the schema descriptor for pool_size field.
	usagestateDescPoolSize := usagestateFields[2].Descriptor()
	// usagestate.DefaultPoolSize holds the default value on creation for the pool_size field.
	usagestate.DefaultPoolSize = usagestateDescPoolSize.Default.(int)
	// usagestateDescLastUpdated is the schema descriptor for last_updated field.
	usagestateDescLastUpdated := usagestateFields[3].Descriptor()
	// usagestate.DefaultLastUpdated holds the default value on creation for the last_updated field.
	usagestate.DefaultLastUpdated = usagestateDescLastUpdated.Default.(func() time.Time)
}
