// internal/services/product_view.go
package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/inventra/inventory-backend/internal/models"
)

type CategoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ProductView is what clients see of a product: the base record overlaid
// with its latest update, plus stock and category.
type ProductView struct {
	ID            uint            `json:"id"`
	Ref           string          `json:"ref"`
	Name          *string         `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	CreatedAt     string          `json:"createdAt"`
	Quantity      *int            `json:"quantity"`
	Category      CategoryView    `json:"category"`
	LastUpdateAt  *string         `json:"lastUpdateAt"`

	lastActivity time.Time
}

type ProductUpdateView struct {
	ID            uint             `json:"id"`
	Ref           *string          `json:"ref"`
	Name          *string          `json:"name"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SellingPrice  *decimal.Decimal `json:"sellingPrice"`
	UpdatedAt     string           `json:"updatedAt"`
}

// latestUpdateOrder puts the most recent delta first. The id breaks ties
// between deltas written within the same instant.
const latestUpdateOrder = "updated_at DESC, id DESC"

func buildProductView(tx *gorm.DB, product *models.Product) (*ProductView, error) {
	view := &ProductView{
		ID:            product.ID,
		Ref:           product.Ref,
		Name:          product.Name,
		PurchasePrice: product.PurchasePrice,
		SellingPrice:  product.SellingPrice,
		CreatedAt:     models.FormatDate(product.CreatedAt),
		lastActivity:  product.CreatedAt,
	}

	latest, err := findLatestUpdate(tx, product.ID)
	if err != nil {
		return nil, err
	}
	applyLatestUpdate(view, latest)

	var stocks []models.ProductStock
	if err := tx.Where("product_id = ?", product.ID).Limit(1).Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("failed to load product stock: %w", err)
	}
	if len(stocks) > 0 {
		view.Quantity = stocks[0].Quantity
	}

	var category models.Category
	if err := tx.First(&category, product.CategoryID).Error; err != nil {
		return nil, fmt.Errorf("failed to load category %d of product %d: %w", product.CategoryID, product.ID, err)
	}
	view.Category = CategoryView{ID: category.ID, Name: category.Name}

	return view, nil
}

func findLatestUpdate(tx *gorm.DB, productID uint) (*models.ProductUpdate, error) {
	var updates []models.ProductUpdate
	err := tx.Where("product_id = ?", productID).
		Order(latestUpdateOrder).
		Limit(1).
		Find(&updates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load latest product update: %w", err)
	}
	if len(updates) == 0 {
		return nil, nil
	}
	return &updates[0], nil
}

// applyLatestUpdate overlays the non-null fields of latest on view. Only
// the newest delta counts: a field it leaves null shows the base value even
// when an older delta had set it.
func applyLatestUpdate(view *ProductView, latest *models.ProductUpdate) {
	if latest == nil {
		return
	}

	if latest.Ref != nil {
		view.Ref = *latest.Ref
	}
	if latest.Name != nil {
		view.Name = latest.Name
	}
	if latest.PurchasePrice.Valid {
		view.PurchasePrice = latest.PurchasePrice.Decimal
	}
	if latest.SellingPrice.Valid {
		view.SellingPrice = latest.SellingPrice.Decimal
	}

	lastUpdateAt := models.FormatDate(latest.UpdatedAt)
	view.LastUpdateAt = &lastUpdateAt
	view.lastActivity = latest.UpdatedAt
}

// sortByActivity orders views by latest update (or creation when never
// updated), newest first, then by id descending.
func sortByActivity(views []ProductView) {
	sort.SliceStable(views, func(i, j int) bool {
		if !views[i].lastActivity.Equal(views[j].lastActivity) {
			return views[i].lastActivity.After(views[j].lastActivity)
		}
		return views[i].ID > views[j].ID
	})
}

func newProductUpdateView(update *models.ProductUpdate) ProductUpdateView {
	view := ProductUpdateView{
		ID:        update.ID,
		Ref:       update.Ref,
		Name:      update.Name,
		UpdatedAt: models.FormatDate(update.UpdatedAt),
	}
	if update.PurchasePrice.Valid {
		price := update.PurchasePrice.Decimal
		view.PurchasePrice = &price
	}
	if update.SellingPrice.Valid {
		price := update.SellingPrice.Decimal
		view.SellingPrice = &price
	}
	return view
}

func findProduct(tx *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := tx.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return &product, nil
}
