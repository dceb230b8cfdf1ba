package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Record is a single transaction. Amount is kept as an exact decimal end to
// end (numeric in Postgres, quoted string on the wire) so money values never
// pass through a float.
type Record struct {
	ID         uint            `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID     uint            `gorm:"not null;index;column:user_id" json:"user_id"`
	CategoryID uint            `gorm:"not null;index;column:category_id" json:"category_id"`
	Datetime   time.Time       `gorm:"not null;index;column:datetime" json:"datetime"`
	Amount     decimal.Decimal `gorm:"type:numeric;not null;check:chk_records_amount_gt_zero,amount > 0;column:amount" json:"amount"`
	User       User            `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Category   Category        `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Record) TableName() string {
	return "records"
}

type RecordFilter struct {
	UserID     *uint
	CategoryID *uint
}

type RecordRepository interface {
	// CreateRecord resolves the referenced user and category inside the write
	// transaction and enforces the private-category ownership rule.
	CreateRecord(ctx context.Context, userID uint, categoryID uint, datetime time.Time, amount decimal.Decimal) (*Record, error)
	GetRecordByID(ctx context.Context, id uint) (*Record, error)
	DeleteRecord(ctx context.Context, id uint) (*Record, error)
	// QueryRecords applies the supplied filters with logical AND, ordered by
	// datetime descending then id descending.
	QueryRecords(ctx context.Context, filter RecordFilter) ([]Record, error)
}
