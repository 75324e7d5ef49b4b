package procedures

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/akademik/akademik/internal/pkg/apperrors"
)

// Dialect selects how a call is rendered for the target database
type Dialect string

const (
	SQLServer Dialect = "sqlserver"
	Postgres  Dialect = "postgres"
	MySQL     Dialect = "mysql"
)

// ParseDialect maps a configured driver name to a dialect
func ParseDialect(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "sqlserver", "mssql":
		return SQLServer, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	case "mysql", "mariadb":
		return MySQL, nil
	default:
		return "", fmt.Errorf("%w: %s", apperrors.ErrUnsupportedDB, driver)
	}
}

// DriverName is the database/sql driver registered for the dialect
func (d Dialect) DriverName() string {
	switch d {
	case SQLServer:
		return "sqlserver"
	case MySQL:
		return "mysql"
	default:
		return "pgx"
	}
}

func (d Dialect) quote(ident string) string {
	switch d {
	case SQLServer:
		return "[" + strings.ReplaceAll(ident, "]", "]]") + "]"
	case MySQL:
		return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
	default:
		return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
	}
}

func (d Dialect) qualify(schema, name string) string {
	if schema == "" {
		return d.quote(name)
	}
	return d.quote(schema) + "." + d.quote(name)
}

func (d Dialect) placeholders() squirrel.PlaceholderFormat {
	switch d {
	case SQLServer:
		return squirrel.AtP
	case MySQL:
		return squirrel.Question
	default:
		return squirrel.Dollar
	}
}

// Build renders the statement executing call. values are the coerced input
// values in declaration order.
//
// SQL Server procedures are EXECuted with named arguments; output parameters
// are declared as batch variables and selected as the batch's last result
// set. PostgreSQL functions are selected from with named notation and output
// parameters come back as columns. MySQL procedures are CALLed positionally
// with output parameters bound to session variables.
func (d Dialect) Build(schema string, call *Call, values []any) (string, []any, error) {
	inputs := call.Inputs()
	if len(inputs) != len(values) {
		return "", nil, fmt.Errorf("procedure %s: %d inputs but %d values", call.Name, len(inputs), len(values))
	}

	var query string
	switch d {
	case SQLServer:
		query = d.buildExec(schema, call)
	case Postgres:
		args := make([]string, 0, len(inputs))
		for _, p := range inputs {
			args = append(args, fmt.Sprintf("%s => ?::%s", d.quote(p.Name), p.Type.pgCast()))
		}
		query = fmt.Sprintf("SELECT * FROM %s(%s)", d.qualify(schema, call.Name), strings.Join(args, ", "))
	case MySQL:
		args := make([]string, 0, len(call.Params))
		for _, p := range call.Params {
			if p.Output {
				args = append(args, mysqlVar(p.Name))
				continue
			}
			args = append(args, "?")
		}
		query = fmt.Sprintf("CALL %s(%s)", d.qualify(schema, call.Name), strings.Join(args, ", "))
	default:
		return "", nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedDB, d)
	}

	query, err := d.placeholders().ReplacePlaceholders(query)
	if err != nil {
		return "", nil, fmt.Errorf("failed to build call to %s: %w", call.Name, err)
	}
	return query, values, nil
}

func (d Dialect) buildExec(schema string, call *Call) string {
	var declare, selects, args []string
	for _, p := range call.Params {
		if !p.Output {
			args = append(args, fmt.Sprintf("@%s = ?", p.Name))
			continue
		}
		declare = append(declare, fmt.Sprintf("DECLARE @%s %s;", p.Name, p.Type))
		args = append(args, fmt.Sprintf("@%s = @%s OUTPUT", p.Name, p.Name))
		selects = append(selects, fmt.Sprintf("@%s AS %s", p.Name, d.quote(p.Name)))
	}

	exec := "EXEC " + d.qualify(schema, call.Name)
	if len(args) > 0 {
		exec += " " + strings.Join(args, ", ")
	}
	exec += ";"
	if len(selects) == 0 {
		return exec
	}
	return strings.Join(declare, " ") + " " + exec + " SELECT " + strings.Join(selects, ", ") + ";"
}

// OutputQuery reads back MySQL output variables; empty for the other dialects
func (d Dialect) OutputQuery(call *Call) string {
	outputs := call.Outputs()
	if d != MySQL || len(outputs) == 0 {
		return ""
	}
	cols := make([]string, 0, len(outputs))
	for _, name := range outputs {
		cols = append(cols, fmt.Sprintf("%s AS %s", mysqlVar(name), d.quote(name)))
	}
	return "SELECT " + strings.Join(cols, ", ")
}

func mysqlVar(name string) string {
	return "@" + name
}

// RoutinesQuery lists the routines installed in schema
func (d Dialect) RoutinesQuery(schema string) (string, []any, error) {
	q := squirrel.Select("routine_name").
		From("information_schema.routines").
		PlaceholderFormat(d.placeholders())

	if schema == "" && d == MySQL {
		q = q.Where(squirrel.Expr("routine_schema = DATABASE()"))
	} else if schema == "" && d == SQLServer {
		q = q.Where(squirrel.Expr("routine_schema = SCHEMA_NAME()"))
	} else if schema == "" {
		q = q.Where(squirrel.Expr("routine_schema = current_schema()"))
	} else {
		q = q.Where(squirrel.Eq{"routine_schema": schema})
	}
	return q.ToSql()
}
