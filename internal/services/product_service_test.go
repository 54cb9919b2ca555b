package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/inventra/inventory-backend/internal/config"
	"github.com/inventra/inventory-backend/internal/database/databasetest"
	"github.com/inventra/inventory-backend/internal/models"
)

// stepClock advances one minute on every reading.
type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

type ProductServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	service  *ProductService
	stock    *StockService
	clock    *stepClock
	user     *Principal
	category models.Category
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.db = databasetest.New(suite.T())
	suite.service = NewProductService(suite.db, config.CatalogConfig{RefFilterCaseInsensitive: true})
	suite.clock = &stepClock{t: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	suite.service.now = suite.clock.Now
	suite.stock = NewStockService(suite.db)
	suite.user = &Principal{UserID: 1, Login: "clerk", Role: models.RoleUser}

	suite.category = models.Category{Name: "Tools"}
	require.NoError(suite.T(), suite.db.Create(&suite.category).Error)
}

func (suite *ProductServiceTestSuite) createProduct(ref string, sellingPrice int64) *ProductView {
	view, err := suite.service.CreateProduct(suite.user, &CreateProductRequest{
		Ref:           ref,
		PurchasePrice: decimal.NewFromInt(5),
		SellingPrice:  decimal.NewFromInt(sellingPrice),
		CategoryID:    int64(suite.category.ID),
	})
	require.NoError(suite.T(), err)
	return view
}

func (suite *ProductServiceTestSuite) assertPrice(expected int64, actual decimal.Decimal) {
	assert.True(suite.T(), actual.Equal(decimal.NewFromInt(expected)), "expected %d, got %s", expected, actual)
}

func (suite *ProductServiceTestSuite) TestCreateProduct() {
	name := "Hammer"
	view, err := suite.service.CreateProduct(suite.user, &CreateProductRequest{
		Ref:           "HAM-1",
		Name:          &name,
		PurchasePrice: decimal.NewFromInt(4),
		SellingPrice:  decimal.NewFromInt(9),
		CategoryID:    int64(suite.category.ID),
	})
	require.NoError(suite.T(), err)

	assert.NotZero(suite.T(), view.ID)
	assert.Equal(suite.T(), "HAM-1", view.Ref)
	require.NotNil(suite.T(), view.Name)
	assert.Equal(suite.T(), "Hammer", *view.Name)
	suite.assertPrice(4, view.PurchasePrice)
	suite.assertPrice(9, view.SellingPrice)
	assert.Equal(suite.T(), "2026-03-10", view.CreatedAt)
	assert.Nil(suite.T(), view.Quantity)
	assert.Nil(suite.T(), view.LastUpdateAt)
	assert.Equal(suite.T(), CategoryView{ID: suite.category.ID, Name: "Tools"}, view.Category)
}

func (suite *ProductServiceTestSuite) TestCreateProductUnknownCategory() {
	_, err := suite.service.CreateProduct(suite.user, &CreateProductRequest{
		Ref:           "X",
		PurchasePrice: decimal.NewFromInt(1),
		SellingPrice:  decimal.NewFromInt(2),
		CategoryID:    9999,
	})
	assert.ErrorIs(suite.T(), err, ErrUnknownCategory)

	var count int64
	suite.db.Model(&models.Product{}).Count(&count)
	assert.Zero(suite.T(), count)
}

func (suite *ProductServiceTestSuite) TestOnlyLatestUpdateOverridesBase() {
	product := suite.createProduct("A", 10)

	twenty := decimal.NewFromInt(20)
	view, err := suite.service.UpdateProduct(suite.user, product.ID, &UpdateProductRequest{SellingPrice: &twenty})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "A", view.Ref)
	suite.assertPrice(20, view.SellingPrice)

	ref := "B"
	view, err = suite.service.UpdateProduct(suite.user, product.ID, &UpdateProductRequest{Ref: &ref})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "B", view.Ref)
	suite.assertPrice(10, view.SellingPrice)

	fetched, err := suite.service.GetProduct(suite.user, product.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), view, fetched)

	var base models.Product
	require.NoError(suite.T(), suite.db.First(&base, product.ID).Error)
	assert.Equal(suite.T(), "A", base.Ref)
}

func (suite *ProductServiceTestSuite) TestEmptyUpdateRevertsToBase() {
	product := suite.createProduct("A", 10)

	ref := "B"
	twenty := decimal.NewFromInt(20)
	_, err := suite.service.UpdateProduct(suite.user, product.ID, &UpdateProductRequest{Ref: &ref, SellingPrice: &twenty})
	require.NoError(suite.T(), err)

	view, err := suite.service.UpdateProduct(suite.user, product.ID, &UpdateProductRequest{})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "A", view.Ref)
	suite.assertPrice(10, view.SellingPrice)
	require.NotNil(suite.T(), view.LastUpdateAt)
	assert.Equal(suite.T(), "2026-03-10", *view.LastUpdateAt)

	var count int64
	suite.db.Model(&models.ProductUpdate{}).Where("product_id = ?", product.ID).Count(&count)
	assert.Equal(suite.T(), int64(2), count)
}

func (suite *ProductServiceTestSuite) TestLatestUpdateWinsTimestampTies() {
	product := suite.createProduct("A", 10)

	at := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	suite.service.now = func() time.Time { return at }

	first, second := "FIRST", "SECOND"
	_, err := suite.service.UpdateProduct(suite.user, product.ID, &UpdateProductRequest{Ref: &first})
	require.NoError(suite.T(), err)
	view, err := suite.service.UpdateProduct(suite.user, product.ID, &UpdateProductRequest{Ref: &second})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "SECOND", view.Ref)
}

func (suite *ProductServiceTestSuite) TestUpdateMissingProduct() {
	_, err := suite.service.UpdateProduct(suite.user, 42, &UpdateProductRequest{})
	assert.ErrorIs(suite.T(), err, ErrProductNotFound)

	_, err = suite.service.GetProduct(suite.user, 42)
	assert.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func (suite *ProductServiceTestSuite) TestDeleteProductCascades() {
	product := suite.createProduct("A", 10)
	other := suite.createProduct("B", 10)

	qty := 3
	_, err := suite.stock.SetStock(suite.user, product.ID, &StockRequest{Quantity: &qty})
	require.NoError(suite.T(), err)
	_, err = suite.stock.SetStock(suite.user, other.ID, &StockRequest{Quantity: &qty})
	require.NoError(suite.T(), err)
	_, err = suite.service.UpdateProduct(suite.user, product.ID, &UpdateProductRequest{})
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.service.DeleteProduct(suite.user, product.ID))

	var updates, stocks, otherStocks int64
	suite.db.Model(&models.ProductUpdate{}).Where("product_id = ?", product.ID).Count(&updates)
	suite.db.Model(&models.ProductStock{}).Where("product_id = ?", product.ID).Count(&stocks)
	suite.db.Model(&models.ProductStock{}).Where("product_id = ?", other.ID).Count(&otherStocks)
	assert.Zero(suite.T(), updates)
	assert.Zero(suite.T(), stocks)
	assert.Equal(suite.T(), int64(1), otherStocks)

	_, err = suite.service.GetProduct(suite.user, product.ID)
	assert.ErrorIs(suite.T(), err, ErrProductNotFound)

	assert.ErrorIs(suite.T(), suite.service.DeleteProduct(suite.user, product.ID), ErrProductNotFound)
}

func (suite *ProductServiceTestSuite) TestSetStock() {
	product := suite.createProduct("A", 10)

	qty := 7
	view, err := suite.stock.SetStock(suite.user, product.ID, &StockRequest{Quantity: &qty})
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), view.Quantity)
	assert.Equal(suite.T(), 7, *view.Quantity)

	view, err = suite.stock.SetStock(suite.user, product.ID, &StockRequest{})
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), view.Quantity)

	var rows int64
	suite.db.Model(&models.ProductStock{}).Where("product_id = ?", product.ID).Count(&rows)
	assert.Equal(suite.T(), int64(1), rows)

	_, err = suite.stock.SetStock(suite.user, 999, &StockRequest{Quantity: &qty})
	assert.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func (suite *ProductServiceTestSuite) TestListUpdatesNewestFirst() {
	product := suite.createProduct("A", 10)

	b, c := "B", "C"
	twelve := decimal.NewFromInt(12)
	_, err := suite.service.UpdateProduct(suite.user, product.ID, &UpdateProductRequest{Ref: &b, SellingPrice: &twelve})
	require.NoError(suite.T(), err)
	_, err = suite.service.UpdateProduct(suite.user, product.ID, &UpdateProductRequest{Ref: &c})
	require.NoError(suite.T(), err)

	updates, err := suite.service.ListUpdates(suite.user, product.ID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), updates, 2)

	assert.Equal(suite.T(), "C", *updates[0].Ref)
	assert.Nil(suite.T(), updates[0].SellingPrice)
	assert.Equal(suite.T(), "B", *updates[1].Ref)
	require.NotNil(suite.T(), updates[1].SellingPrice)
	suite.assertPrice(12, *updates[1].SellingPrice)
	assert.Nil(suite.T(), updates[1].Name)

	_, err = suite.service.ListUpdates(suite.user, 999)
	assert.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func (suite *ProductServiceTestSuite) TestListOrdersByLatestActivity() {
	first := suite.createProduct("FIRST", 10)
	second := suite.createProduct("SECOND", 10)
	third := suite.createProduct("THIRD", 10)

	_, err := suite.service.UpdateProduct(suite.user, first.ID, &UpdateProductRequest{})
	require.NoError(suite.T(), err)

	views, err := suite.service.ListProducts(suite.user, ProductFilter{})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), views, 3)
	assert.Equal(suite.T(), []uint{first.ID, third.ID, second.ID}, []uint{views[0].ID, views[1].ID, views[2].ID})
}

func (suite *ProductServiceTestSuite) TestListEmpty() {
	views, err := suite.service.ListProducts(suite.user, ProductFilter{})
	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), views)
	assert.Empty(suite.T(), views)
}

func (suite *ProductServiceTestSuite) TestListFilters() {
	suite.createProduct("ABC-100", 10)
	suite.createProduct("abc-200", 15)
	suite.createProduct("50%OFF", 10)

	other := models.Category{Name: "Paint"}
	require.NoError(suite.T(), suite.db.Create(&other).Error)
	paint, err := suite.service.CreateProduct(suite.user, &CreateProductRequest{
		Ref:           "XYZ",
		PurchasePrice: decimal.NewFromInt(1),
		SellingPrice:  decimal.RequireFromString("12.50"),
		CategoryID:    int64(other.ID),
	})
	require.NoError(suite.T(), err)

	refs := func(filter ProductFilter) []string {
		views, err := suite.service.ListProducts(suite.user, filter)
		require.NoError(suite.T(), err)
		out := make([]string, 0, len(views))
		for _, v := range views {
			out = append(out, v.Ref)
		}
		return out
	}
	str := func(s string) *string { return &s }
	dec := func(s string) *decimal.Decimal { d := decimal.RequireFromString(s); return &d }
	day := func(s string) *time.Time { t, _ := time.Parse(models.DateLayout, s); return &t }

	assert.ElementsMatch(suite.T(), []string{"ABC-100", "abc-200"}, refs(ProductFilter{Ref: str("abc")}))
	assert.ElementsMatch(suite.T(), []string{"50%OFF"}, refs(ProductFilter{Ref: str("%")}))
	assert.ElementsMatch(suite.T(), []string{"ABC-100", "50%OFF"}, refs(ProductFilter{SellingPrice: dec("10")}))
	assert.ElementsMatch(suite.T(), []string{"XYZ"}, refs(ProductFilter{SellingPrice: dec("12.5")}))
	assert.ElementsMatch(suite.T(), []string{"XYZ"}, refs(ProductFilter{CategoryID: &paint.Category.ID}))
	assert.Len(suite.T(), refs(ProductFilter{CreatedAt: day("2026-03-10")}), 4)
	assert.Empty(suite.T(), refs(ProductFilter{CreatedAt: day("2026-03-11")}))
	assert.ElementsMatch(suite.T(), []string{"ABC-100"}, refs(ProductFilter{Ref: str("abc"), SellingPrice: dec("10")}))

	suite.service.refCaseInsensitive = false
	assert.ElementsMatch(suite.T(), []string{"abc-200"}, refs(ProductFilter{Ref: str("abc")}))
}

func (suite *ProductServiceTestSuite) TestRequiresAuthentication() {
	_, err := suite.service.ListProducts(nil, ProductFilter{})
	assert.ErrorIs(suite.T(), err, ErrUnauthenticated)

	_, err = suite.service.CreateProduct(nil, &CreateProductRequest{})
	assert.ErrorIs(suite.T(), err, ErrUnauthenticated)

	assert.ErrorIs(suite.T(), suite.service.DeleteProduct(nil, 1), ErrUnauthenticated)

	_, err = suite.stock.SetStock(nil, 1, &StockRequest{})
	assert.ErrorIs(suite.T(), err, ErrUnauthenticated)
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
