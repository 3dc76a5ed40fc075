// Package models defines the typed records of the news board dataset.
// All state lives in the external storage engine; these types carry rows
// between the repositories and the JSON boundary.
package models

// Topic represents a discussion topic. Topics are immutable once referenced
// by an article; no update or delete operation exists for them.
type Topic struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}

// TableName returns the database table name for the Topic model.
func (t *Topic) TableName() string {
	return "topics"
}
