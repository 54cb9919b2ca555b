package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/inventra/inventory-backend/internal/config"
	"github.com/inventra/inventory-backend/internal/database/databasetest"
	"github.com/inventra/inventory-backend/internal/models"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *CategoryService
	admin   *Principal
	user    *Principal
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.db = databasetest.New(suite.T())
	suite.service = NewCategoryService(suite.db)
	suite.admin = &Principal{UserID: 1, Login: "admin", Role: models.RoleAdmin}
	suite.user = &Principal{UserID: 2, Login: "clerk", Role: models.RoleUser}
}

func (suite *CategoryServiceTestSuite) create(name string) *models.Category {
	category, err := suite.service.CreateCategory(suite.admin, &CategoryRequest{Name: name})
	require.NoError(suite.T(), err)
	return category
}

func (suite *CategoryServiceTestSuite) TestCreateAndGet() {
	created := suite.create("Tools")

	fetched, err := suite.service.GetCategory(suite.user, created.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Tools", fetched.Name)
}

func (suite *CategoryServiceTestSuite) TestGetMissing() {
	_, err := suite.service.GetCategory(suite.user, 404)
	assert.ErrorIs(suite.T(), err, ErrCategoryNotFound)
}

func (suite *CategoryServiceTestSuite) TestDuplicateNameRejected() {
	suite.create("Tools")

	_, err := suite.service.CreateCategory(suite.admin, &CategoryRequest{Name: "Tools"})
	assert.ErrorIs(suite.T(), err, ErrCategoryNameTaken)

	// Names are compared case-sensitively.
	_, err = suite.service.CreateCategory(suite.admin, &CategoryRequest{Name: "tools"})
	assert.NoError(suite.T(), err)
}

func (suite *CategoryServiceTestSuite) TestRename() {
	tools := suite.create("Tools")
	suite.create("Paint")

	renamed, err := suite.service.UpdateCategory(suite.admin, tools.ID, &CategoryRequest{Name: "Tools"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Tools", renamed.Name)

	_, err = suite.service.UpdateCategory(suite.admin, tools.ID, &CategoryRequest{Name: "Paint"})
	assert.ErrorIs(suite.T(), err, ErrCategoryNameTaken)

	renamed, err = suite.service.UpdateCategory(suite.admin, tools.ID, &CategoryRequest{Name: "Hardware"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Hardware", renamed.Name)

	_, err = suite.service.UpdateCategory(suite.admin, 999, &CategoryRequest{Name: "Nope"})
	assert.ErrorIs(suite.T(), err, ErrCategoryNotFound)
}

func (suite *CategoryServiceTestSuite) TestDelete() {
	empty := suite.create("Empty")
	require.NoError(suite.T(), suite.service.DeleteCategory(suite.admin, empty.ID))

	_, err := suite.service.GetCategory(suite.admin, empty.ID)
	assert.ErrorIs(suite.T(), err, ErrCategoryNotFound)

	assert.ErrorIs(suite.T(), suite.service.DeleteCategory(suite.admin, empty.ID), ErrCategoryNotFound)
}

func (suite *CategoryServiceTestSuite) TestDeleteWithProductsRejected() {
	tools := suite.create("Tools")

	products := NewProductService(suite.db, config.CatalogConfig{})
	_, err := products.CreateProduct(suite.user, &CreateProductRequest{
		Ref:           "HAM-1",
		PurchasePrice: decimal.NewFromInt(1),
		SellingPrice:  decimal.NewFromInt(2),
		CategoryID:    int64(tools.ID),
	})
	require.NoError(suite.T(), err)

	assert.ErrorIs(suite.T(), suite.service.DeleteCategory(suite.admin, tools.ID), ErrCategoryHasProducts)

	_, err = suite.service.GetCategory(suite.admin, tools.ID)
	assert.NoError(suite.T(), err)
}

func (suite *CategoryServiceTestSuite) TestWritesRequireAdmin() {
	tools := suite.create("Tools")

	_, err := suite.service.CreateCategory(suite.user, &CategoryRequest{Name: "Paint"})
	assert.ErrorIs(suite.T(), err, ErrForbidden)

	_, err = suite.service.UpdateCategory(suite.user, tools.ID, &CategoryRequest{Name: "Paint"})
	assert.ErrorIs(suite.T(), err, ErrForbidden)

	assert.ErrorIs(suite.T(), suite.service.DeleteCategory(suite.user, tools.ID), ErrForbidden)

	_, err = suite.service.CreateCategory(nil, &CategoryRequest{Name: "Paint"})
	assert.ErrorIs(suite.T(), err, ErrUnauthenticated)

	_, err = suite.service.ListCategories(nil)
	assert.ErrorIs(suite.T(), err, ErrUnauthenticated)
}

func (suite *CategoryServiceTestSuite) TestListSortedByName() {
	suite.create("Paint")
	suite.create("Garden")

	categories, err := suite.service.ListCategories(suite.user)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), categories, 2)
	assert.Equal(suite.T(), "Garden", categories[0].Name)
	assert.Equal(suite.T(), "Paint", categories[1].Name)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
