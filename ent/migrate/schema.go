// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GamesColumns holds the columns for the "games" table.
	GamesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "game_id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "assigned", Type: field.TypeJSON, Nullable: true},
		{Name: "legacy_used", Type: field.TypeJSON, Nullable: true},
	}
	// GamesTable holds the schema information for the "games" table.
	GamesTable = &schema.Table{
		Name:       "games",
		Columns:    GamesColumns,
		PrimaryKey: []*schema.Column{GamesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "game_account_id",
				Unique:  false,
				Columns: []*schema.Column{GamesColumns[4]},
			},
			{
				Name:    "game_account_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{GamesColumns[4], GamesColumns[5]},
			},
		},
	}
	// UsageStatesColumns holds the columns for the "usage_states" table.
	UsageStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "account_key", Type: field.TypeString, Unique: true},
		{Name: "usage", Type: field.TypeJSON},
		{Name: "pool_size", Type: field.TypeInt, Default: 0},
		{Name: "last_updated", Type: field.TypeTime},
		{Name: "last_reset_time", Type: field.TypeTime, Nullable: true},
		{Name: "category_reset_times", Type: field.TypeJSON, Nullable: true},
	}
	// UsageStatesTable holds the schema information for the "usage_states" table.
	UsageStatesTable = &schema.Table{
		Name:       "usage_states",
		Columns:    UsageStatesColumns,
		PrimaryKey: []*schema.Column{UsageStatesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GamesTable,
		UsageStatesTable,
	}
)

func init() {
}
