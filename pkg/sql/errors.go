package sql

import "database/sql"

var ErrNoRows = sql.ErrNoRows
