package models

// BaseFields holds the store-assigned identity key shared by persisted
// models. ID stays zero until the first successful persist.
type BaseFields struct {
	ID int64
}
