package entity

// Migration records the schema version the database is currently at.
type Migration struct {
	Base

	Version int
}
