package checks

import (
	"regexp"
	"testing"

	"economy-manager/core/database/dbtest"
	economymodels "economy-manager/feature/economy/models"
	shopmodels "economy-manager/feature/shop/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func showColumns(table string) string {
	return regexp.QuoteMeta("SHOW COLUMNS FROM `" + table + "`")
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, economymodels.All())
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_RejectsModelsWithoutTableName(t *testing.T) {
	db, _ := setupMockDB(t)
	type loose struct {
		ID int `gorm:"column:id"`
	}

	_, err := CheckSchema(db, []any{&loose{}})
	assert.ErrorContains(t, err, "does not implement TableName")
}

func TestCheckSchema_MissingColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("uuid", "varchar(36)", "NO", "PRI", nil, "")
	rows.AddRow("coins", "double", "NO", "", "0", "")
	rows.AddRow("created_at", "datetime(3)", "YES", "", nil, "")
	mock.ExpectQuery(showColumns("accounts")).WillReturnRows(rows)

	report, err := CheckSchema(db, []any{&economymodels.Account{}})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl, ok := report.Tables["accounts"]
	require.True(t, ok)
	assert.Equal(t, "error", tbl.Status)
	assert.Equal(t, []string{"cash", "updated_at"}, tbl.MissingColumns)
	assert.Empty(t, tbl.TypeMismatches)
}

func TestCheckSchema_TypeMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("uuid", "int(11)", "NO", "PRI", nil, "")
	rows.AddRow("coins", "double", "NO", "", "0", "")
	rows.AddRow("cash", "double", "NO", "", "0", "")
	rows.AddRow("created_at", "datetime(3)", "YES", "", nil, "")
	rows.AddRow("updated_at", "datetime(3)", "YES", "", nil, "")
	mock.ExpectQuery(showColumns("accounts")).WillReturnRows(rows)

	report, err := CheckSchema(db, []any{&economymodels.Account{}})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, []string{"uuid: expected varchar(36), got int(11)"}, report.Tables["accounts"].TypeMismatches)
}

func TestCheckSchema_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery(showColumns("accounts")).WillReturnError(assert.AnError)

	report, err := CheckSchema(db, []any{&economymodels.Account{}})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "accounts")
}

func TestCheckSchema_SQLite(t *testing.T) {
	db := dbtest.New(t, economymodels.All()...)

	report, err := CheckSchema(db, economymodels.All())
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "ok", report.Tables["accounts"].Status)
	assert.Equal(t, "ok", report.Tables["ledger_entries"].Status)

	report, err = CheckSchema(db, shopmodels.All())
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, "missing", report.Tables["shops"].Status)
}
