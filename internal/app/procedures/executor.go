package procedures

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/akademik/akademik/internal/pkg/apperrors"
	"github.com/akademik/akademik/internal/pkg/logger"
	"github.com/shopspring/decimal"
)

// Observer is notified after every execution
type Observer func(procedure string, elapsed time.Duration, err error)

// Executor runs procedure calls against a shared connection pool
type Executor struct {
	db       *sql.DB
	dialect  Dialect
	schema   string
	fold     bool
	observer Observer
}

// Option configures an Executor
type Option func(*Executor)

// WithSchema sets the schema procedures are qualified with
func WithSchema(schema string) Option {
	return func(e *Executor) {
		e.schema = schema
	}
}

// WithFoldedIdentifiers lowercases the schema, procedure and parameter names
// before they are quoted, matching PostgreSQL functions created without
// quoted identifiers.
func WithFoldedIdentifiers(fold bool) Option {
	return func(e *Executor) {
		e.fold = fold
	}
}

// WithObserver registers an execution observer
func WithObserver(observer Observer) Option {
	return func(e *Executor) {
		e.observer = observer
	}
}

// NewExecutor creates a new executor
func NewExecutor(db *sql.DB, dialect Dialect, opts ...Option) *Executor {
	e := &Executor{
		db:      db,
		dialect: dialect,
		schema:  "dbo",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dialect returns the dialect calls are rendered in
func (e *Executor) Dialect() Dialect {
	return e.dialect
}

// Execute runs call and returns its first recordset and output parameters
func (e *Executor) Execute(ctx context.Context, call *Call) (result *Result, err error) {
	start := time.Now()
	defer func() {
		if e.observer != nil {
			e.observer(call.Name, time.Since(start), err)
		}
	}()

	if e.db == nil {
		return nil, apperrors.NewProcedureError(call.Name, apperrors.ErrNoDatabase)
	}

	values, err := call.coerce()
	if err != nil {
		return nil, apperrors.NewProcedureError(call.Name, err)
	}

	target, schema := call, e.schema
	if e.fold {
		target, schema = call.folded(), strings.ToLower(schema)
	}
	query, args, err := e.dialect.Build(schema, target, values)
	if err != nil {
		return nil, apperrors.NewProcedureError(call.Name, err)
	}

	logger.Debug().Str("procedure", call.Name).Str("query", query).Msg("Executing stored procedure")

	switch e.dialect {
	case SQLServer:
		result, err = e.executeSQLServer(ctx, call, query, args)
	case MySQL:
		result, err = e.executeMySQL(ctx, call, query, args)
	default:
		result, err = e.executePostgres(ctx, call, query, args)
	}
	if err != nil {
		procErr := apperrors.NewProcedureError(call.Name, err)
		logger.Ctx(ctx).Error().Err(err).
			Str("procedure", call.Name).
			Str("message", procErr.Error()).
			Msg("Stored procedure failed")
		return nil, procErr
	}

	return result, nil
}

func (e *Executor) executePostgres(ctx context.Context, call *Call, query string, args []any) (*Result, error) {
	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recordset, err := readRecordset(rows)
	if err != nil {
		return nil, err
	}

	result := &Result{Recordset: recordset, Output: map[string]any{}}
	for _, name := range call.Outputs() {
		result.Output[name] = firstValue(recordset, name)
	}
	return result, nil
}

// executeSQLServer runs the EXEC batch. When the call has output parameters
// the batch's last result set holds them and the procedure's own first
// recordset, if any, precedes it.
func (e *Executor) executeSQLServer(ctx context.Context, call *Call, query string, args []any) (*Result, error) {
	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets [][]Row
	for {
		set, err := readRecordset(rows)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
		if !rows.NextResultSet() {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := &Result{Recordset: make([]Row, 0), Output: map[string]any{}}
	outputs := call.Outputs()
	if len(outputs) > 0 {
		last := sets[len(sets)-1]
		sets = sets[:len(sets)-1]
		for _, name := range outputs {
			result.Output[name] = firstValue(last, name)
		}
	}
	if len(sets) > 0 {
		result.Recordset = sets[0]
	}
	return result, nil
}

// firstValue returns column of the first row. Column names are matched
// without regard to case since folded identifiers come back lowercased.
func firstValue(recordset []Row, column string) any {
	if len(recordset) == 0 {
		return nil
	}
	if v, ok := recordset[0][column]; ok {
		return v
	}
	for k, v := range recordset[0] {
		if strings.EqualFold(k, column) {
			return v
		}
	}
	return nil
}

// executeMySQL pins one connection so the session variables holding output
// parameters are readable after the CALL.
func (e *Executor) executeMySQL(ctx context.Context, call *Call, query string, args []any) (*Result, error) {
	conn, err := e.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	recordset, err := readRecordset(rows)
	if err != nil {
		rows.Close()
		return nil, err
	}
	for rows.NextResultSet() {
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	result := &Result{Recordset: recordset, Output: map[string]any{}}

	outQuery := e.dialect.OutputQuery(call)
	if outQuery == "" {
		return result, nil
	}

	outRows, err := conn.QueryContext(ctx, outQuery)
	if err != nil {
		return nil, err
	}
	defer outRows.Close()

	outputs, err := readRecordset(outRows)
	if err != nil {
		return nil, err
	}
	for _, name := range call.Outputs() {
		result.Output[name] = firstValue(outputs, name)
	}
	return result, nil
}

// readRecordset reads every row of the current result set. The returned slice
// is never nil so it encodes as an empty JSON array.
func readRecordset(rows *sql.Rows) ([]Row, error) {
	recordset := make([]Row, 0)

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		types = nil
	}

	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			typeName := ""
			if i < len(types) && types[i] != nil {
				typeName = types[i].DatabaseTypeName()
			}
			row[col] = normalize(typeName, values[i])
		}
		recordset = append(recordset, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recordset, nil
}

// normalize turns driver values into JSON friendly Go values based on the
// column's database type.
func normalize(typeName string, v any) any {
	if b, ok := v.([]byte); ok {
		v = string(b)
	}
	if v == nil {
		return nil
	}

	switch strings.ToUpper(typeName) {
	case "DECIMAL", "NUMERIC", "NEWDECIMAL", "MONEY":
		switch x := v.(type) {
		case string:
			if d, err := decimal.NewFromString(x); err == nil {
				return d.InexactFloat64()
			}
		case float32:
			return float64(x)
		}
	case "FLOAT", "DOUBLE", "REAL", "FLOAT4", "FLOAT8":
		if s, ok := v.(string); ok {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f
			}
		}
	case "INT", "INTEGER", "INT2", "INT4", "INT8", "BIGINT", "SMALLINT", "TINYINT", "MEDIUMINT",
		"UNSIGNED INT", "UNSIGNED BIGINT", "UNSIGNED SMALLINT", "UNSIGNED TINYINT":
		switch x := v.(type) {
		case string:
			if n, err := strconv.ParseInt(x, 10, 64); err == nil {
				return n
			}
		case int32:
			return int64(x)
		case int16:
			return int64(x)
		case int:
			return int64(x)
		}
	case "BIT", "BOOL", "BOOLEAN":
		switch x := v.(type) {
		case string:
			return x == "1" || x == "\x01" || strings.EqualFold(x, "true") || x == "t"
		case int64:
			return x != 0
		}
	}
	return v
}

// Verify reports which of names are not installed in the database. It only
// reads the catalogue and never fails the caller for a missing routine.
func (e *Executor) Verify(ctx context.Context, names []string) ([]string, error) {
	if e.db == nil {
		return nil, apperrors.ErrNoDatabase
	}

	query, args, err := e.dialect.RoutinesQuery(e.schema)
	if err != nil {
		return nil, fmt.Errorf("failed to build routine query: %w", err)
	}

	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}
	defer rows.Close()

	installed := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan routine: %w", err)
		}
		installed[strings.ToLower(name)] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var missing []string
	for _, name := range names {
		if _, ok := installed[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)

	for _, name := range missing {
		logger.Warn().
			Str("procedure", name).
			Str("schema", e.schema).
			Err(apperrors.ErrMissingProcedure).
			Msg("Stored procedure is not installed")
	}
	return missing, nil
}

// IsProcedureError reports whether err came from a procedure execution
func IsProcedureError(err error) bool {
	var procErr *apperrors.ProcedureError
	return errors.As(err, &procErr)
}
