package repository

import (
	"context"

	"clinic-portal/internal/domain/entity"
)

// FilterOp is a comparison supported by the remote table API
type FilterOp string

const (
	OpEq FilterOp = "eq"
	OpIn FilterOp = "in"
)

// Filter restricts a select or update to matching rows
type Filter struct {
	Column string
	Op     FilterOp
	Values []interface{}
}

// Eq matches rows where column equals value
func Eq(column string, value interface{}) Filter {
	return Filter{Column: column, Op: OpEq, Values: []interface{}{value}}
}

// In matches rows where column is one of values
func In(column string, values ...interface{}) Filter {
	return Filter{Column: column, Op: OpIn, Values: values}
}

// InIDs is In for record identifiers
func InIDs(column string, ids []entity.RecordID) Filter {
	values := make([]interface{}, len(ids))
	for i, id := range ids {
		values[i] = id
	}
	return In(column, values...)
}

// Query describes a select against one table
type Query struct {
	Table   string
	Columns []string
	Filters []Filter
	// Order is a column name, suffixed with " desc" for descending order
	Order string
	Limit int
}

// TableStore is the generic table API of the remote store.
// Implementations wrap every failure in a *RemoteError.
type TableStore interface {
	// Select decodes matching rows into dest, a pointer to a slice
	Select(ctx context.Context, q Query, dest interface{}) error
	// Insert writes row and refreshes it from the stored representation,
	// so generated keys are populated
	Insert(ctx context.Context, table string, row interface{}) error
	// Update applies patch to matching rows and returns how many matched
	Update(ctx context.Context, table string, patch map[string]interface{}, filters ...Filter) (int64, error)
}
