package sqlite

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// Los timestamps los asigna inventory.Store; GORM no debe reescribirlos.

type categoryModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:100;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (categoryModel) TableName() string { return "categories" }

func (m categoryModel) toEntity() *entity.Category {
	return &entity.Category{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

type productModel struct {
	ID         string          `gorm:"primaryKey;size:36"`
	Name       string          `gorm:"size:100;not null"`
	Price      decimal.Decimal `gorm:"type:text;not null"` // texto para no perder precisión
	CategoryID string          `gorm:"size:36;not null;index"`
	CreatedAt  time.Time       `gorm:"autoCreateTime:false;not null"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime:false;not null"`
}

func (productModel) TableName() string { return "products" }

func (m productModel) toEntity() *entity.Product {
	return &entity.Product{
		ID: m.ID, Name: m.Name, Price: m.Price, CategoryID: m.CategoryID,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

type sellerModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:100;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (sellerModel) TableName() string { return "sellers" }

func (m sellerModel) toEntity() *entity.Seller {
	return &entity.Seller{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

type productSourceModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	ProductID string    `gorm:"size:36;not null;index"`
	SellerID  string    `gorm:"size:36;not null;index"`
	Quantity  int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (productSourceModel) TableName() string { return "product_sources" }

func (m productSourceModel) toEntity() *entity.ProductSource {
	return &entity.ProductSource{
		ID: m.ID, ProductID: m.ProductID, SellerID: m.SellerID, Quantity: m.Quantity,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}
