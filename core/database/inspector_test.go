package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)

	err = db.Exec("CREATE TABLE accounts (uuid TEXT PRIMARY KEY, coins REAL NOT NULL, cash REAL)").Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "accounts")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "text", colMap["uuid"].Type)
	assert.Equal(t, "PRI", colMap["uuid"].Key)
	assert.Equal(t, "real", colMap["coins"].Type)
	assert.Equal(t, "NO", colMap["coins"].Null)
	assert.Equal(t, "YES", colMap["cash"].Null)

	// PRAGMA table_info returns an empty result for a missing table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	assert.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("UUID", "VARCHAR(36)", "NO", "PRI", nil, "").
		AddRow("coins", "DOUBLE", "NO", "", "0", "")
	mock.ExpectQuery("SHOW COLUMNS FROM `accounts`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "accounts")
	assert.NoError(t, err)
	assert.Len(t, columns, 2)
	assert.Equal(t, "uuid", columns[0].Field)
	assert.Equal(t, "varchar(36)", columns[0].Type)
	assert.Equal(t, "double", columns[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}
