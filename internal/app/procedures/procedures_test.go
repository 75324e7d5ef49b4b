package procedures

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		value    any
		expected any
		errMsg   string
	}{
		{name: "int from path string", typ: Int, value: "42", expected: int64(42)},
		{name: "int from json number", typ: Int, value: float64(7), expected: int64(7)},
		{name: "int rejects text", typ: Int, value: "abc", errMsg: "Validation failed for parameter 'P'. Invalid number."},
		{name: "int rejects fraction", typ: Int, value: 2.5, errMsg: "Validation failed for parameter 'P'. Invalid number."},
		{name: "int from integral json fraction", typ: Int, value: json.Number("3.0"), expected: int64(3)},
		{name: "int from json exponent", typ: Int, value: json.Number("1e2"), expected: int64(100)},
		{name: "int from request param", typ: Int, value: dto.NewParam(json.Number("12")), expected: int64(12)},
		{name: "int rejects json fraction", typ: Int, value: json.Number("3.5"), errMsg: "Validation failed for parameter 'P'. Invalid number."},
		{name: "tinyint json range", typ: TinyInt, value: json.Number("2.56e2"), errMsg: "Validation failed for parameter 'P'. Value must be between 0 and 255."},
		{name: "tinyint range", typ: TinyInt, value: 300, errMsg: "Validation failed for parameter 'P'. Value must be between 0 and 255."},
		{name: "smallint", typ: SmallInt, value: int64(-5), expected: int64(-5)},
		{name: "bit from bool", typ: Bit, value: false, expected: false},
		{name: "bit from string", typ: Bit, value: "1", expected: true},
		{name: "bit rejects text", typ: Bit, value: "maybe", errMsg: "Validation failed for parameter 'P'. Invalid boolean."},
		{name: "decimal rounds to scale", typ: Decimal(5, 2), value: 87.456, expected: "87.46"},
		{name: "decimal from decimal", typ: Decimal(5, 2), value: decimal.RequireFromString("30"), expected: "30"},
		{name: "decimal from param holding decimal", typ: Decimal(5, 2), value: dto.NewParam(decimal.RequireFromString("30")), expected: "30"},
		{name: "decimal from int16", typ: Decimal(5, 2), value: int16(5), expected: "5"},
		{name: "decimal from uint8", typ: Decimal(5, 2), value: uint8(40), expected: "40"},
		{name: "decimal from uint64", typ: Decimal(5, 2), value: uint64(60), expected: "60"},
		{name: "decimal rejects text", typ: Decimal(5, 2), value: "x", errMsg: "Validation failed for parameter 'P'. Invalid number."},
		{name: "nvarchar from number", typ: NVarChar(20), value: 12, expected: "12"},
		{name: "char", typ: Char(1), value: "P", expected: "P"},
		{name: "date from string", typ: Date, value: "2024-09-16", expected: time.Date(2024, 9, 16, 0, 0, 0, 0, time.UTC)},
		{name: "date drops time of day", typ: Date, value: "2024-09-16T10:30:00Z", expected: time.Date(2024, 9, 16, 0, 0, 0, 0, time.UTC)},
		{name: "date rejects text", typ: Date, value: "yesterday", errMsg: "Validation failed for parameter 'P'. Invalid date."},
		{name: "time short form", typ: Time, value: "09:00", expected: "09:00:00"},
		{name: "time rejects text", typ: Time, value: "nine", errMsg: "Validation failed for parameter 'P'. Invalid time."},
		{name: "datetime2", typ: DateTime2, value: "2024-01-01T00:00:00", expected: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "nil is null", typ: Int, value: nil, expected: nil},
		{name: "nil pointer is null", typ: NVarChar(50), value: (*string)(nil), expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.typ.Coerce("P", tt.value)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
				assert.True(t, errors.Is(err, apperrors.ErrInvalidParameter))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "NVarChar(MAX)", NVarChar(MaxLength).String())
	assert.Equal(t, "Decimal(5,2)", Decimal(5, 2).String())
	assert.Equal(t, "Char(1)", Char(1).String())
}

func TestParseDialect(t *testing.T) {
	for _, name := range []string{"sqlserver", "mssql", " MSSQL "} {
		d, err := ParseDialect(name)
		require.NoError(t, err)
		assert.Equal(t, SQLServer, d)
		assert.Equal(t, "sqlserver", d.DriverName())
	}

	d, err := ParseDialect("pgx")
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)
	assert.Equal(t, "pgx", d.DriverName())

	d, err = ParseDialect("MySQL")
	require.NoError(t, err)
	assert.Equal(t, MySQL, d)
	assert.Equal(t, "mysql", d.DriverName())

	_, err = ParseDialect("oracle")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedDB)
}

func TestBuildSQLServer(t *testing.T) {
	call := New("sp_CreateCourse").
		In("CourseCode", NVarChar(20), "BIL101").
		In("Credit", Decimal(4, 2), 3).
		Out("NewCourseID", Int)

	query, args, err := SQLServer.Build("dbo", call, []any{"BIL101", "3"})
	require.NoError(t, err)
	assert.Equal(t, "DECLARE @NewCourseID Int; "+
		"EXEC [dbo].[sp_CreateCourse] @CourseCode = @p1, @Credit = @p2, @NewCourseID = @NewCourseID OUTPUT; "+
		"SELECT @NewCourseID AS [NewCourseID];", query)
	assert.Equal(t, []any{"BIL101", "3"}, args)

	query, _, err = SQLServer.Build("dbo", New("sp_GetGradeBook").In("OfferingID", Int, 1), []any{int64(1)})
	require.NoError(t, err)
	assert.Equal(t, "EXEC [dbo].[sp_GetGradeBook] @OfferingID = @p1;", query)

	query, _, err = SQLServer.Build("", New("sp_ListTerms"), nil)
	require.NoError(t, err)
	assert.Equal(t, "EXEC [sp_ListTerms];", query)
	assert.Empty(t, SQLServer.OutputQuery(call))
}

func TestBuildPostgres(t *testing.T) {
	call := New("sp_CreateCourse").
		In("Code", NVarChar(20), "BIL101").
		In("Credits", TinyInt, 4).
		Out("NewCourseID", Int)

	query, args, err := Postgres.Build("dbo", call, []any{"BIL101", int64(4)})
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "dbo"."sp_CreateCourse"("Code" => $1::varchar(20), "Credits" => $2::smallint)`, query)
	assert.Equal(t, []any{"BIL101", int64(4)}, args)
}

func TestBuildMySQL(t *testing.T) {
	call := New("sp_CreateCourse").
		In("Code", NVarChar(20), "BIL101").
		Out("NewCourseID", Int)

	query, _, err := MySQL.Build("dbo", call, []any{"BIL101"})
	require.NoError(t, err)
	assert.Equal(t, "CALL `dbo`.`sp_CreateCourse`(?, @NewCourseID)", query)
	assert.Equal(t, "SELECT @NewCourseID AS `NewCourseID`", MySQL.OutputQuery(call))
	assert.Empty(t, Postgres.OutputQuery(call))
}

func TestBuildRejectsMismatchedValues(t *testing.T) {
	call := New("sp_X").In("A", Int, 1)
	_, _, err := Postgres.Build("dbo", call, nil)
	assert.Error(t, err)
}

func newMock(t *testing.T) (*Executor, sqlmock.Sqlmock, *[]string) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var observed []string
	exec := NewExecutor(db, Postgres, WithObserver(func(name string, _ time.Duration, err error) {
		status := "ok"
		if err != nil {
			status = "error"
		}
		observed = append(observed, name+":"+status)
	}))
	return exec, mock, &observed
}

func TestExecuteReturnsRecordset(t *testing.T) {
	exec, mock, observed := newMock(t)

	rows := sqlmock.NewRows([]string{"StudentID", "FullName", "CurrentAverage"}).
		AddRow(int64(1), "Ayşe Yılmaz", 72.5).
		AddRow(int64(2), []byte("Mehmet Kaya"), nil)
	mock.ExpectQuery(`SELECT * FROM "dbo"."sp_GetGradeBook"("OfferingID" => $1::integer)`).
		WithArgs(int64(12)).
		WillReturnRows(rows)

	result, err := exec.Execute(context.Background(), New("sp_GetGradeBook").In("OfferingID", Int, "12"))
	require.NoError(t, err)
	require.Len(t, result.Recordset, 2)
	assert.Equal(t, "Ayşe Yılmaz", result.Recordset[0]["FullName"])
	assert.Equal(t, "Mehmet Kaya", result.Recordset[1]["FullName"])
	assert.Nil(t, result.Recordset[1]["CurrentAverage"])
	assert.Equal(t, []string{"sp_GetGradeBook:ok"}, *observed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteEmptyRecordsetIsNotNil(t *testing.T) {
	exec, mock, _ := newMock(t)

	mock.ExpectQuery(`SELECT * FROM "dbo"."sp_ListNotifications"("UserID" => $1::integer)`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"NotificationID"}))

	result, err := exec.Execute(context.Background(), New("sp_ListNotifications").In("UserID", Int, 3))
	require.NoError(t, err)
	assert.NotNil(t, result.Recordset)
	assert.Empty(t, result.Recordset)
}

func TestExecuteCollectsOutputColumns(t *testing.T) {
	exec, mock, _ := newMock(t)

	mock.ExpectQuery(`SELECT * FROM "dbo"."sp_CreateUser"("Username" => $1::varchar(50))`).
		WithArgs("ayse").
		WillReturnRows(sqlmock.NewRows([]string{"NewUserID"}).AddRow(int64(41)))

	result, err := exec.Execute(context.Background(),
		New("sp_CreateUser").In("Username", NVarChar(50), "ayse").Out("NewUserID", Int))
	require.NoError(t, err)
	assert.Equal(t, int64(41), result.OutputValue("NewUserID"))
}

func TestExecuteForwardsDatabaseMessage(t *testing.T) {
	exec, mock, observed := newMock(t)

	mock.ExpectQuery(`SELECT * FROM "dbo"."sp_EnrollStudent"("StudentID" => $1::integer, "OfferingID" => $2::integer)`).
		WithArgs(int64(1), int64(2)).
		WillReturnError(&pgconn.PgError{Code: "P0001", Message: "Kontenjan dolu"})

	_, err := exec.Execute(context.Background(),
		New("sp_EnrollStudent").In("StudentID", Int, 1).In("OfferingID", Int, 2))
	require.Error(t, err)
	assert.Equal(t, "Kontenjan dolu", err.Error())
	assert.True(t, IsProcedureError(err))
	assert.Equal(t, []string{"sp_EnrollStudent:error"}, *observed)
}

func TestExecuteCoercionFailureSkipsDatabase(t *testing.T) {
	exec, mock, _ := newMock(t)

	_, err := exec.Execute(context.Background(), New("sp_GetGradeBook").In("OfferingID", Int, "abc"))
	require.Error(t, err)
	assert.Equal(t, "Validation failed for parameter 'OfferingID'. Invalid number.", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteWithoutDatabase(t *testing.T) {
	exec := NewExecutor(nil, Postgres)
	_, err := exec.Execute(context.Background(), New("sp_X"))
	assert.ErrorIs(t, err, apperrors.ErrNoDatabase)
}

func TestExecuteMySQLReadsOutputVariables(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	exec := NewExecutor(db, MySQL)

	mock.ExpectQuery("CALL `dbo`.`sp_OpenCourseOffering`(?, @NewOfferingID)").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(nil))
	mock.ExpectQuery("SELECT @NewOfferingID AS `NewOfferingID`").
		WillReturnRows(sqlmock.NewRows([]string{"NewOfferingID"}).AddRow(int64(88)))

	result, err := exec.Execute(context.Background(),
		New("sp_OpenCourseOffering").In("CourseID", Int, 5).Out("NewOfferingID", Int))
	require.NoError(t, err)
	assert.Equal(t, int64(88), result.OutputValue("NewOfferingID"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newSQLServerMock(t *testing.T) (*Executor, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewExecutor(db, SQLServer), mock
}

func TestExecuteSQLServerReadsOutputParameter(t *testing.T) {
	exec, mock := newSQLServerMock(t)

	mock.ExpectQuery("DECLARE @NewUserID Int; "+
		"EXEC [dbo].[sp_CreateUser] @Username = @p1, @Phone = @p2, @NewUserID = @NewUserID OUTPUT; "+
		"SELECT @NewUserID AS [NewUserID];").
		WithArgs("ayse", nil).
		WillReturnRows(sqlmock.NewRows([]string{"NewUserID"}).AddRow(int64(41)))

	result, err := exec.Execute(context.Background(), New("sp_CreateUser").
		In("Username", NVarChar(50), "ayse").
		In("Phone", NVarChar(20), nil).
		Out("NewUserID", Int))
	require.NoError(t, err)
	assert.Equal(t, int64(41), result.OutputValue("NewUserID"))
	assert.NotNil(t, result.Recordset)
	assert.Empty(t, result.Recordset)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteSQLServerRecordsetBeforeOutputs(t *testing.T) {
	exec, mock := newSQLServerMock(t)

	recordset := sqlmock.NewRows([]string{"SessionID", "SessionDate"}).
		AddRow(int64(1), "2025-09-15").
		AddRow(int64(2), "2025-09-22")
	outputs := sqlmock.NewRows([]string{"SessionsCreated"}).AddRow(int64(2))

	mock.ExpectQuery("DECLARE @SessionsCreated Int; "+
		"EXEC [dbo].[sp_GenerateSessions] @OfferingID = @p1, @SessionsCreated = @SessionsCreated OUTPUT; "+
		"SELECT @SessionsCreated AS [SessionsCreated];").
		WithArgs(int64(7)).
		WillReturnRows(recordset, outputs)

	result, err := exec.Execute(context.Background(), New("sp_GenerateSessions").
		In("OfferingID", Int, json.Number("7")).
		Out("SessionsCreated", Int))
	require.NoError(t, err)
	require.Len(t, result.Recordset, 2)
	assert.Equal(t, int64(2), result.Recordset[1]["SessionID"])
	assert.Equal(t, int64(2), result.OutputValue("SessionsCreated"))
}

func TestExecuteSQLServerWithoutOutputs(t *testing.T) {
	exec, mock := newSQLServerMock(t)

	mock.ExpectQuery("EXEC [dbo].[sp_GetTranscript] @StudentID = @p1;").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"CourseCode", "LetterGrade"}).AddRow("BIL101", "BA"))

	result, err := exec.Execute(context.Background(), New("sp_GetTranscript").In("StudentID", Int, 9))
	require.NoError(t, err)
	require.Len(t, result.Recordset, 1)
	assert.Equal(t, "BA", result.Recordset[0]["LetterGrade"])
	assert.Empty(t, result.Output)
}

func TestExecuteFoldedIdentifiers(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	exec := NewExecutor(db, Postgres, WithSchema("DBO"), WithFoldedIdentifiers(true))

	mock.ExpectQuery(`SELECT * FROM "dbo"."sp_createuser"("username" => $1::varchar(50))`).
		WithArgs("ayse").
		WillReturnRows(sqlmock.NewRows([]string{"newuserid"}).AddRow(int64(41)))

	call := New("sp_CreateUser").In("Username", NVarChar(50), "ayse").Out("NewUserID", Int)
	result, err := exec.Execute(context.Background(), call)
	require.NoError(t, err)
	assert.Equal(t, int64(41), result.OutputValue("NewUserID"))
	assert.Equal(t, "sp_CreateUser", call.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifySQLServer(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	exec := NewExecutor(db, SQLServer)

	mock.ExpectQuery("SELECT routine_name FROM information_schema.routines WHERE routine_schema = @p1").
		WithArgs("dbo").
		WillReturnRows(sqlmock.NewRows([]string{"routine_name"}).AddRow("sp_GetGradeBook"))

	missing, err := exec.Verify(context.Background(), []string{"sp_GetGradeBook", "sp_LoginUser"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sp_LoginUser"}, missing)
	assert.Equal(t, SQLServer, exec.Dialect())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 87.5, normalize("NUMERIC", "87.50"))
	assert.Equal(t, 3.25, normalize("DECIMAL", []byte("3.25")))
	assert.Equal(t, int64(12), normalize("INT", []byte("12")))
	assert.Equal(t, true, normalize("BIT", []byte{1}))
	assert.Equal(t, false, normalize("BOOL", int64(0)))
	assert.Equal(t, "abc", normalize("VARCHAR", []byte("abc")))
	assert.Nil(t, normalize("INT", nil))
}

func TestFirstInt(t *testing.T) {
	assert.Equal(t, int64(0), (&Result{Recordset: []Row{}}).FirstInt("RecordedCount"))
	assert.Equal(t, int64(14), (&Result{Recordset: []Row{{"SessionsCreated": int64(14)}}}).FirstInt("SessionsCreated"))
	assert.Equal(t, int64(0), (&Result{Recordset: []Row{{"Other": int64(1)}}}).FirstInt("RecordedCount"))
}

func TestVerifyReportsMissingProcedures(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	exec := NewExecutor(db, Postgres)

	mock.ExpectQuery("SELECT routine_name FROM information_schema.routines WHERE routine_schema = $1").
		WithArgs("dbo").
		WillReturnRows(sqlmock.NewRows([]string{"routine_name"}).
			AddRow("sp_loginuser").
			AddRow("sp_GetGradeBook"))

	missing, err := exec.Verify(context.Background(), []string{"sp_LoginUser", "sp_GetGradeBook", "sp_SearchAuditLog"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sp_SearchAuditLog"}, missing)
}
