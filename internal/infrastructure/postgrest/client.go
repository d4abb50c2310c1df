package postgrest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"
	"time"

	"clinic-portal/config"
	"clinic-portal/internal/domain/repository"

	"github.com/supabase-community/postgrest-go"
)

const (
	restPath             = "/rest/v1"
	returnRepresentation = "representation"
)

// postgrest-go renders error bodies as "(code) message"
var apiErrorPattern = regexp.MustCompile(`^\(([^)]*)\) (.*)$`)

// Client implements repository.TableStore over a PostgREST endpoint such as Supabase
type Client struct {
	baseURL string
	api     *postgrest.Client
	timeout time.Duration
}

var _ repository.TableStore = (*Client)(nil)

func NewClient(cfg config.StoreConfig) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" || strings.TrimSpace(cfg.Key) == "" {
		return nil, errors.New("store url and key are required")
	}
	if _, err := url.ParseRequestURI(cfg.URL); err != nil {
		return nil, fmt.Errorf("invalid store url: %w", err)
	}

	baseURL := strings.TrimRight(cfg.URL, "/") + restPath
	api := postgrest.NewClient(baseURL, "", map[string]string{"Accept": "application/json"})
	if api.ClientError != nil {
		return nil, fmt.Errorf("invalid store url: %w", api.ClientError)
	}
	api.SetApiKey(cfg.Key).SetAuthToken(cfg.Key)

	return &Client{
		baseURL: baseURL,
		api:     api,
		timeout: cfg.Timeout,
	}, nil
}

func (c *Client) Select(ctx context.Context, q repository.Query, dest interface{}) error {
	columns := "*"
	if len(q.Columns) > 0 {
		columns = strings.Join(q.Columns, ",")
	}

	query := applyFilters(c.api.From(q.Table).Select(columns, "", false), q.Filters)
	if column, ascending, ok := parseOrder(q.Order); ok {
		query = query.Order(column, &postgrest.OrderOpts{Ascending: ascending})
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit, "")
	}

	return c.execute(ctx, q.Table, query, dest)
}

func (c *Client) Insert(ctx context.Context, table string, row interface{}) error {
	var inserted []json.RawMessage
	query := c.api.From(table).Insert(row, false, "", returnRepresentation, "")
	if err := c.execute(ctx, table, query, &inserted); err != nil {
		return err
	}
	if len(inserted) == 0 {
		return repository.NewRemoteError(table, "", "insert returned no rows", nil)
	}
	if err := json.Unmarshal(inserted[0], row); err != nil {
		return repository.NewRemoteError(table, "", "", err)
	}
	return nil
}

func (c *Client) Update(ctx context.Context, table string, patch map[string]interface{}, filters ...repository.Filter) (int64, error) {
	if len(filters) == 0 {
		return 0, repository.NewRemoteError(table, "", "update without filters refused", nil)
	}

	var updated []json.RawMessage
	query := applyFilters(c.api.From(table).Update(patch, returnRepresentation, ""), filters)
	if err := c.execute(ctx, table, query, &updated); err != nil {
		return 0, err
	}
	return int64(len(updated)), nil
}

func (c *Client) execute(ctx context.Context, table string, query *postgrest.FilterBuilder, out interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, _, err := query.ExecuteWithContext(ctx)
	if err != nil {
		return classifyError(table, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return repository.NewRemoteError(table, "", "", err)
	}
	return nil
}

// classifyError turns a postgrest-go failure back into code and message
func classifyError(table string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return repository.NewUnavailableError(table, err)
	}

	if match := apiErrorPattern.FindStringSubmatch(err.Error()); match != nil {
		return repository.NewRemoteError(table, match[1], match[2], err)
	}
	return repository.NewRemoteError(table, "", err.Error(), err)
}

func applyFilters(query *postgrest.FilterBuilder, filters []repository.Filter) *postgrest.FilterBuilder {
	for _, f := range filters {
		switch f.Op {
		case repository.OpIn:
			values := make([]string, len(f.Values))
			for i, v := range f.Values {
				values[i] = fmt.Sprint(v)
			}
			query = query.In(f.Column, values)
		default:
			var value interface{}
			if len(f.Values) > 0 {
				value = f.Values[0]
			}
			query = query.Eq(f.Column, fmt.Sprint(value))
		}
	}
	return query
}

func parseOrder(order string) (column string, ascending bool, ok bool) {
	fields := strings.Fields(order)
	if len(fields) == 0 {
		return "", false, false
	}
	ascending = len(fields) == 1 || !strings.EqualFold(fields[1], "desc")
	return fields[0], ascending, true
}
