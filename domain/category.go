package domain

import "context"

// Category groups records. A nil OwnerID means the category is global and
// usable by every user; global names form their own uniqueness domain,
// separate from the per-owner (owner_id, name) one.
type Category struct {
	ID      uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name    string `gorm:"type:varchar(64);not null;column:name;index:uq_categories_owner_name,unique;index:uq_categories_global_name,unique,where:owner_id IS NULL" json:"category_name"`
	OwnerID *uint  `gorm:"column:owner_id;index:uq_categories_owner_name,unique" json:"user_id"`
	Owner   *User  `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

type CategoryRepository interface {
	CreateCategory(ctx context.Context, name string, ownerID *uint) (*Category, error)
	// ListCategories with a nil owner filter returns the global set only.
	ListCategories(ctx context.Context, ownerID *uint) ([]Category, error)
	DeleteCategory(ctx context.Context, id uint) (*Category, error)
}
