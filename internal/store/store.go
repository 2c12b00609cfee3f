package store

import "time"

// defaultLoginColumn is the users-table column holding the durable login
// identifier, unless configuration names a legacy column.
const defaultLoginColumn = "login_identifier"

// NowISO returns the current UTC time in the ISO-8601-with-Z form the
// timestamp columns use. The fixed-width fraction keeps the strings
// lexicographically sortable.
func NowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000") + "Z"
}
