package database

import (
	"context"
	"errors"
	"strings"

	"clinic-portal/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TableStore implements repository.TableStore directly on PostgreSQL through gorm
type TableStore struct {
	db *gorm.DB
}

var _ repository.TableStore = (*TableStore)(nil)

func NewTableStore(db *gorm.DB) *TableStore {
	return &TableStore{db: db}
}

func (s *TableStore) Select(ctx context.Context, q repository.Query, dest interface{}) error {
	tx := s.db.WithContext(ctx).Table(q.Table)
	if len(q.Columns) > 0 {
		tx = tx.Select(q.Columns)
	}
	tx = applyFilters(tx, q.Filters)
	if order, ok := orderClause(q.Order); ok {
		tx = tx.Order(order)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	if err := tx.Find(dest).Error; err != nil {
		return wrapError(q.Table, err)
	}
	return nil
}

func (s *TableStore) Insert(ctx context.Context, table string, row interface{}) error {
	if err := s.db.WithContext(ctx).Table(table).Create(row).Error; err != nil {
		return wrapError(table, err)
	}
	return nil
}

func (s *TableStore) Update(ctx context.Context, table string, patch map[string]interface{}, filters ...repository.Filter) (int64, error) {
	if len(filters) == 0 {
		return 0, repository.NewRemoteError(table, "", "update without filters refused", nil)
	}

	result := applyFilters(s.db.WithContext(ctx).Table(table), filters).Updates(patch)
	if result.Error != nil {
		return 0, wrapError(table, result.Error)
	}
	return result.RowsAffected, nil
}

func applyFilters(tx *gorm.DB, filters []repository.Filter) *gorm.DB {
	for _, f := range filters {
		column := clause.Column{Name: f.Column}
		switch f.Op {
		case repository.OpIn:
			tx = tx.Where(clause.IN{Column: column, Values: f.Values})
		default:
			var value interface{}
			if len(f.Values) > 0 {
				value = f.Values[0]
			}
			tx = tx.Where(clause.Eq{Column: column, Value: value})
		}
	}
	return tx
}

func orderClause(order string) (clause.OrderByColumn, bool) {
	fields := strings.Fields(order)
	if len(fields) == 0 {
		return clause.OrderByColumn{}, false
	}
	return clause.OrderByColumn{
		Column: clause.Column{Name: fields[0]},
		Desc:   len(fields) > 1 && strings.EqualFold(fields[1], "desc"),
	}, true
}

func wrapError(table string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return repository.NewRemoteError(table, pgErr.Code, pgErr.Message, err)
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return repository.NewUnavailableError(table, err)
	}
	return repository.NewRemoteError(table, "", "", err)
}
