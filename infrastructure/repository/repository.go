package repository

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// rowScanner é satisfeito por *sql.Row e por *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}
