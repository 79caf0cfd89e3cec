// Package client provides result mapping utilities.
package client

import (
	"database/sql"
	"reflect"
	"strings"
)

// ScanRows scans SQL rows into a slice of structs
func ScanRows[T any](rows *sql.Rows) ([]T, error) {
	var results []T
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	for rows.Next() {
		var result T
		val := reflect.ValueOf(&result).Elem()
		typ := val.Type()

		values := make([]interface{}, len(columns))

		// Map columns to struct fields
		for i, colName := range columns {
			field := findFieldByName(typ, colName)
			if field.Name != "" {
				fieldVal := val.FieldByIndex(field.Index)
				if fieldVal.CanAddr() {
					values[i] = fieldVal.Addr().Interface()
					continue
				}
			}
			// Unmapped column - use sql.NullString
			var nullStr sql.NullString
			values[i] = &nullStr
		}

		if err := rows.Scan(values...); err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// findFieldByName finds a struct field by database column name (db tag or field name)
func findFieldByName(typ reflect.Type, colName string) reflect.StructField {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Name == colName {
			return field
		}
		// Check db tag
		dbTag := field.Tag.Get("db")
		if dbTag != "" {
			tagParts := strings.Split(dbTag, ",")
			if len(tagParts) > 0 && tagParts[0] == colName {
				return field
			}
		}
		// Case-insensitive match
		if strings.EqualFold(field.Name, colName) {
			return field
		}
	}
	return reflect.StructField{}
}
