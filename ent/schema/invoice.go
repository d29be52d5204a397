package schema

import (
	"time"

	"invoice-api/internal/models"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice holds the schema definition for the Invoice entity. Line items
// are embedded as a JSON document: they have no identity of their own and
// are replaced wholesale on every update.
type Invoice struct {
	ent.Schema
}

// Fields of the Invoice.
func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		// Natural key: updates and deletes address invoices by number.
		field.String("invoice_number").Unique(),

		field.String("customer_name").NotEmpty(),

		field.Time("date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),

		field.JSON("details", []models.LineItem{}).
			Default([]models.LineItem{}),

		field.Other("total_amount", decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}).
			Default(decimal.Zero),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes of the Invoice.
func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		// The list endpoint always orders by date descending.
		index.Fields("date"),
	}
}
