package repository

import "gorm.io/gorm"

// TxManager runs a function inside one database transaction. Services take
// this instead of a raw *gorm.DB so multi-step deletes and checkout can be
// unit-tested without a live database.
type TxManager interface {
	WithinTx(fn func(tx *gorm.DB) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) WithinTx(fn func(tx *gorm.DB) error) error {
	return m.db.Transaction(fn)
}
