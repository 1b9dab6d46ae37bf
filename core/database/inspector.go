package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes one column of a catalog table.
type ColumnInfo struct {
	Field string
	Type  string
}

// TableColumns retrieves the column definitions for a table, used by the
// status command to verify the catalog schema.
func TableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	if db.Dialector.Name() == "sqlite" {
		// SQLite exposes schema through PRAGMA table_info.
		type sqliteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DefaultVal *string
			Pk         int
		}
		var cols []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&cols).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		columns := make([]ColumnInfo, 0, len(cols))
		for _, col := range cols {
			columns = append(columns, ColumnInfo{
				Field: strings.ToLower(col.Name),
				Type:  strings.ToLower(col.Type),
			})
		}
		return columns, nil
	}

	var raw []struct {
		Field string
		Type  string
	}
	if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&raw).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	columns := make([]ColumnInfo, 0, len(raw))
	for _, col := range raw {
		columns = append(columns, ColumnInfo{
			Field: strings.ToLower(col.Field),
			Type:  strings.ToLower(col.Type),
		})
	}
	return columns, nil
}
