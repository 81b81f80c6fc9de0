package service

import (
	"go-parts-store/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// txManagerMock runs the callback immediately with a nil tx so repo mocks
// see the same calls a real transaction would issue
type txManagerMock struct {
	mock.Mock
}

func (m *txManagerMock) WithinTx(fn func(tx *gorm.DB) error) error {
	m.Called()
	return fn(nil)
}

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *userRepoMock) FindByID(id uuid.UUID) (*model.User, error) {
	args := m.Called(id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *userRepoMock) FindAll() ([]model.User, error) {
	args := m.Called()
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *userRepoMock) Create(user *model.User) error {
	return m.Called(user).Error(0)
}

func (m *userRepoMock) Update(user *model.User) error {
	return m.Called(user).Error(0)
}

func (m *userRepoMock) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *userRepoMock) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	return m.Called(userID, hashedPassword).Error(0)
}

func (m *userRepoMock) SetApproval(userID uuid.UUID, approved bool) error {
	return m.Called(userID, approved).Error(0)
}

type productRepoMock struct {
	mock.Mock
}

func (m *productRepoMock) Create(product *model.Product) error {
	return m.Called(product).Error(0)
}

func (m *productRepoMock) FindAll(filter model.ProductFilter) ([]model.Product, error) {
	args := m.Called(filter)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *productRepoMock) FindByID(id uuid.UUID) (*model.Product, error) {
	args := m.Called(id)
	product, _ := args.Get(0).(*model.Product)
	return product, args.Error(1)
}

func (m *productRepoMock) FindBySKU(sku string) (*model.Product, error) {
	args := m.Called(sku)
	product, _ := args.Get(0).(*model.Product)
	return product, args.Error(1)
}

func (m *productRepoMock) Update(product *model.Product) error {
	return m.Called(product).Error(0)
}

func (m *productRepoMock) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *productRepoMock) UpsertBySKU(product *model.Product) error {
	return m.Called(product).Error(0)
}

type cartRepoMock struct {
	mock.Mock
}

func (m *cartRepoMock) FindByUser(userID uuid.UUID) ([]model.CartItem, error) {
	args := m.Called(userID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *cartRepoMock) FindByID(id uuid.UUID) (*model.CartItem, error) {
	args := m.Called(id)
	item, _ := args.Get(0).(*model.CartItem)
	return item, args.Error(1)
}

func (m *cartRepoMock) FindByUserAndProduct(userID, productID uuid.UUID) (*model.CartItem, error) {
	args := m.Called(userID, productID)
	item, _ := args.Get(0).(*model.CartItem)
	return item, args.Error(1)
}

func (m *cartRepoMock) Create(item *model.CartItem) error {
	return m.Called(item).Error(0)
}

func (m *cartRepoMock) Update(item *model.CartItem) error {
	return m.Called(item).Error(0)
}

func (m *cartRepoMock) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *cartRepoMock) DeleteByUser(userID uuid.UUID) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *cartRepoMock) DeleteByUserTx(tx *gorm.DB, userID uuid.UUID) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

type orderRepoMock struct {
	mock.Mock
	// calls records the order of mutating operations so tests can assert
	// children go before parents
	calls []string
}

func (m *orderRepoMock) CreateTx(tx *gorm.DB, order *model.Order) error {
	m.calls = append(m.calls, "CreateTx")
	return m.Called(order).Error(0)
}

func (m *orderRepoMock) FindByID(id uuid.UUID) (*model.Order, error) {
	args := m.Called(id)
	order, _ := args.Get(0).(*model.Order)
	return order, args.Error(1)
}

func (m *orderRepoMock) FindByUser(userID uuid.UUID) ([]model.Order, error) {
	args := m.Called(userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *orderRepoMock) FindAll() ([]model.Order, error) {
	args := m.Called()
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *orderRepoMock) UpdateStatus(id uuid.UUID, status model.OrderStatus) error {
	return m.Called(id, status).Error(0)
}

func (m *orderRepoMock) AllIDsTx(tx *gorm.DB) ([]uuid.UUID, error) {
	args := m.Called()
	ids, _ := args.Get(0).([]uuid.UUID)
	return ids, args.Error(1)
}

func (m *orderRepoMock) DeleteItemsByOrderIDsTx(tx *gorm.DB, orderIDs []uuid.UUID) error {
	m.calls = append(m.calls, "DeleteItems")
	return m.Called(orderIDs).Error(0)
}

func (m *orderRepoMock) DeleteByIDsTx(tx *gorm.DB, orderIDs []uuid.UUID) (int64, error) {
	m.calls = append(m.calls, "DeleteOrders")
	args := m.Called(orderIDs)
	return args.Get(0).(int64), args.Error(1)
}

type importJobRepoMock struct {
	mock.Mock
}

func (m *importJobRepoMock) Create(job *model.ImportJob) error {
	return m.Called(job).Error(0)
}

func (m *importJobRepoMock) FindAll() ([]model.ImportJob, error) {
	args := m.Called()
	jobs, _ := args.Get(0).([]model.ImportJob)
	return jobs, args.Error(1)
}

func (m *importJobRepoMock) FindByID(id uuid.UUID) (*model.ImportJob, error) {
	args := m.Called(id)
	job, _ := args.Get(0).(*model.ImportJob)
	return job, args.Error(1)
}

func (m *importJobRepoMock) Update(job *model.ImportJob) error {
	return m.Called(job).Error(0)
}

type categoryRepoMock struct {
	mock.Mock
}

func (m *categoryRepoMock) Create(category *model.Category) error {
	return m.Called(category).Error(0)
}

func (m *categoryRepoMock) FindAll() ([]model.Category, error) {
	args := m.Called()
	categories, _ := args.Get(0).([]model.Category)
	return categories, args.Error(1)
}

func (m *categoryRepoMock) FindByID(id uuid.UUID) (*model.Category, error) {
	args := m.Called(id)
	category, _ := args.Get(0).(*model.Category)
	return category, args.Error(1)
}

func (m *categoryRepoMock) FindByName(name string) (*model.Category, error) {
	args := m.Called(name)
	category, _ := args.Get(0).(*model.Category)
	return category, args.Error(1)
}

func (m *categoryRepoMock) Update(category *model.Category) error {
	return m.Called(category).Error(0)
}

func (m *categoryRepoMock) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

type marketplaceRepoMock struct {
	mock.Mock
}

func (m *marketplaceRepoMock) Create(marketplace *model.Marketplace) error {
	return m.Called(marketplace).Error(0)
}

func (m *marketplaceRepoMock) FindAll() ([]model.Marketplace, error) {
	args := m.Called()
	marketplaces, _ := args.Get(0).([]model.Marketplace)
	return marketplaces, args.Error(1)
}

func (m *marketplaceRepoMock) FindByID(id uuid.UUID) (*model.Marketplace, error) {
	args := m.Called(id)
	marketplace, _ := args.Get(0).(*model.Marketplace)
	return marketplace, args.Error(1)
}

func (m *marketplaceRepoMock) Update(marketplace *model.Marketplace) error {
	return m.Called(marketplace).Error(0)
}

func (m *marketplaceRepoMock) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}
