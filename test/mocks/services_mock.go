// Code generated by MockGen. DO NOT EDIT.
// Source: ../../internal/core/ports/services.go
//
// Generated by this command:
//
//	mockgen -source=../../internal/core/ports/services.go -destination=services_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	uuid "github.com/google/uuid"
	domain "github.com/sondurak/garage-be/internal/core/domain"
	ports "github.com/sondurak/garage-be/internal/core/ports"
	paging "github.com/sondurak/garage-be/internal/pkg/paging"
	report "github.com/sondurak/garage-be/internal/report"
	gomock "go.uber.org/mock/gomock"
)

// MockPurchaseService is a mock of PurchaseService interface.
type MockPurchaseService struct {
	ctrl     *gomock.Controller
	recorder *MockPurchaseServiceMockRecorder
	isgomock struct{}
}

// MockPurchaseServiceMockRecorder is the mock recorder for MockPurchaseService.
type MockPurchaseServiceMockRecorder struct {
	mock *MockPurchaseService
}

// NewMockPurchaseService creates a new mock instance.
func NewMockPurchaseService(ctrl *gomock.Controller) *MockPurchaseService {
	mock := &MockPurchaseService{ctrl: ctrl}
	mock.recorder = &MockPurchaseServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPurchaseService) EXPECT() *MockPurchaseServiceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockPurchaseService) Create(ctx context.Context, p *domain.Purchase) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, p)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockPurchaseServiceMockRecorder) Create(ctx, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockPurchaseService)(nil).Create), ctx, p)
}

// Delete mocks base method.
func (m *MockPurchaseService) Delete(ctx context.Context, id uuid.UUID, permanent bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id, permanent)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockPurchaseServiceMockRecorder) Delete(ctx, id, permanent any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockPurchaseService)(nil).Delete), ctx, id, permanent)
}

// GetByID mocks base method.
func (m *MockPurchaseService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Purchase)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockPurchaseServiceMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockPurchaseService)(nil).GetByID), ctx, id)
}

// List mocks base method.
func (m *MockPurchaseService) List(ctx context.Context, q report.Query) (*paging.Page[*domain.Purchase], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, q)
	ret0, _ := ret[0].(*paging.Page[*domain.Purchase])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockPurchaseServiceMockRecorder) List(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockPurchaseService)(nil).List), ctx, q)
}

// Update mocks base method.
func (m *MockPurchaseService) Update(ctx context.Context, id uuid.UUID, p *domain.Purchase) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, id, p)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockPurchaseServiceMockRecorder) Update(ctx, id, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockPurchaseService)(nil).Update), ctx, id, p)
}

// MockRepairService is a mock of RepairService interface.
type MockRepairService struct {
	ctrl     *gomock.Controller
	recorder *MockRepairServiceMockRecorder
	isgomock struct{}
}

// MockRepairServiceMockRecorder is the mock recorder for MockRepairService.
type MockRepairServiceMockRecorder struct {
	mock *MockRepairService
}

// NewMockRepairService creates a new mock instance.
func NewMockRepairService(ctrl *gomock.Controller) *MockRepairService {
	mock := &MockRepairService{ctrl: ctrl}
	mock.recorder = &MockRepairServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepairService) EXPECT() *MockRepairServiceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockRepairService) Create(ctx context.Context, r *domain.Repair) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, r)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockRepairServiceMockRecorder) Create(ctx, r any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRepairService)(nil).Create), ctx, r)
}

// Delete mocks base method.
func (m *MockRepairService) Delete(ctx context.Context, id uuid.UUID, permanent bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id, permanent)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockRepairServiceMockRecorder) Delete(ctx, id, permanent any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockRepairService)(nil).Delete), ctx, id, permanent)
}

// GetByID mocks base method.
func (m *MockRepairService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Repair)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRepairServiceMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRepairService)(nil).GetByID), ctx, id)
}

// List mocks base method.
func (m *MockRepairService) List(ctx context.Context, q report.Query) (*paging.Page[*domain.Repair], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, q)
	ret0, _ := ret[0].(*paging.Page[*domain.Repair])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockRepairServiceMockRecorder) List(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockRepairService)(nil).List), ctx, q)
}

// Update mocks base method.
func (m *MockRepairService) Update(ctx context.Context, id uuid.UUID, r *domain.Repair) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, id, r)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockRepairServiceMockRecorder) Update(ctx, id, r any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRepairService)(nil).Update), ctx, id, r)
}

// MockExpenseService is a mock of ExpenseService interface.
type MockExpenseService struct {
	ctrl     *gomock.Controller
	recorder *MockExpenseServiceMockRecorder
	isgomock struct{}
}

// MockExpenseServiceMockRecorder is the mock recorder for MockExpenseService.
type MockExpenseServiceMockRecorder struct {
	mock *MockExpenseService
}

// NewMockExpenseService creates a new mock instance.
func NewMockExpenseService(ctrl *gomock.Controller) *MockExpenseService {
	mock := &MockExpenseService{ctrl: ctrl}
	mock.recorder = &MockExpenseServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExpenseService) EXPECT() *MockExpenseServiceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockExpenseService) Create(ctx context.Context, e *domain.Expense) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, e)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockExpenseServiceMockRecorder) Create(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockExpenseService)(nil).Create), ctx, e)
}

// Delete mocks base method.
func (m *MockExpenseService) Delete(ctx context.Context, id uuid.UUID, permanent bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id, permanent)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockExpenseServiceMockRecorder) Delete(ctx, id, permanent any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockExpenseService)(nil).Delete), ctx, id, permanent)
}

// GetByID mocks base method.
func (m *MockExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockExpenseServiceMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockExpenseService)(nil).GetByID), ctx, id)
}

// List mocks base method.
func (m *MockExpenseService) List(ctx context.Context, q report.Query) (*paging.Page[*domain.Expense], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, q)
	ret0, _ := ret[0].(*paging.Page[*domain.Expense])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockExpenseServiceMockRecorder) List(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockExpenseService)(nil).List), ctx, q)
}

// Update mocks base method.
func (m *MockExpenseService) Update(ctx context.Context, id uuid.UUID, e *domain.Expense) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, id, e)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockExpenseServiceMockRecorder) Update(ctx, id, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockExpenseService)(nil).Update), ctx, id, e)
}

// MockVehicleService is a mock of VehicleService interface.
type MockVehicleService struct {
	ctrl     *gomock.Controller
	recorder *MockVehicleServiceMockRecorder
	isgomock struct{}
}

// MockVehicleServiceMockRecorder is the mock recorder for MockVehicleService.
type MockVehicleServiceMockRecorder struct {
	mock *MockVehicleService
}

// NewMockVehicleService creates a new mock instance.
func NewMockVehicleService(ctrl *gomock.Controller) *MockVehicleService {
	mock := &MockVehicleService{ctrl: ctrl}
	mock.recorder = &MockVehicleServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVehicleService) EXPECT() *MockVehicleServiceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockVehicleService) Create(ctx context.Context, v *domain.CustomerVehicle) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, v)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockVehicleServiceMockRecorder) Create(ctx, v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockVehicleService)(nil).Create), ctx, v)
}

// Delete mocks base method.
func (m *MockVehicleService) Delete(ctx context.Context, id uuid.UUID, permanent bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id, permanent)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockVehicleServiceMockRecorder) Delete(ctx, id, permanent any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockVehicleService)(nil).Delete), ctx, id, permanent)
}

// GetByID mocks base method.
func (m *MockVehicleService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomerVehicle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.CustomerVehicle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockVehicleServiceMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockVehicleService)(nil).GetByID), ctx, id)
}

// History mocks base method.
func (m *MockVehicleService) History(ctx context.Context, id uuid.UUID) (*domain.VehicleHistory, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "History", ctx, id)
	ret0, _ := ret[0].(*domain.VehicleHistory)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// History indicates an expected call of History.
func (mr *MockVehicleServiceMockRecorder) History(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "History", reflect.TypeOf((*MockVehicleService)(nil).History), ctx, id)
}

// List mocks base method.
func (m *MockVehicleService) List(ctx context.Context, q report.Query) (*paging.Page[*domain.CustomerVehicle], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, q)
	ret0, _ := ret[0].(*paging.Page[*domain.CustomerVehicle])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockVehicleServiceMockRecorder) List(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockVehicleService)(nil).List), ctx, q)
}

// PublicHistory mocks base method.
func (m *MockVehicleService) PublicHistory(ctx context.Context, qrCode string) (*domain.VehicleHistory, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PublicHistory", ctx, qrCode)
	ret0, _ := ret[0].(*domain.VehicleHistory)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PublicHistory indicates an expected call of PublicHistory.
func (mr *MockVehicleServiceMockRecorder) PublicHistory(ctx, qrCode any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PublicHistory", reflect.TypeOf((*MockVehicleService)(nil).PublicHistory), ctx, qrCode)
}

// QRCodePNG mocks base method.
func (m *MockVehicleService) QRCodePNG(ctx context.Context, id uuid.UUID, size int) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "QRCodePNG", ctx, id, size)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// QRCodePNG indicates an expected call of QRCodePNG.
func (mr *MockVehicleServiceMockRecorder) QRCodePNG(ctx, id, size any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "QRCodePNG", reflect.TypeOf((*MockVehicleService)(nil).QRCodePNG), ctx, id, size)
}

// Update mocks base method.
func (m *MockVehicleService) Update(ctx context.Context, id uuid.UUID, v *domain.CustomerVehicle) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, id, v)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockVehicleServiceMockRecorder) Update(ctx, id, v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockVehicleService)(nil).Update), ctx, id, v)
}

// MockCatalogService is a mock of CatalogService interface.
type MockCatalogService struct {
	ctrl     *gomock.Controller
	recorder *MockCatalogServiceMockRecorder
	isgomock struct{}
}

// MockCatalogServiceMockRecorder is the mock recorder for MockCatalogService.
type MockCatalogServiceMockRecorder struct {
	mock *MockCatalogService
}

// NewMockCatalogService creates a new mock instance.
func NewMockCatalogService(ctrl *gomock.Controller) *MockCatalogService {
	mock := &MockCatalogService{ctrl: ctrl}
	mock.recorder = &MockCatalogServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCatalogService) EXPECT() *MockCatalogServiceMockRecorder {
	return m.recorder
}

// CreatePart mocks base method.
func (m *MockCatalogService) CreatePart(ctx context.Context, p *domain.Part) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePart", ctx, p)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreatePart indicates an expected call of CreatePart.
func (mr *MockCatalogServiceMockRecorder) CreatePart(ctx, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePart", reflect.TypeOf((*MockCatalogService)(nil).CreatePart), ctx, p)
}

// CreateSupplier mocks base method.
func (m *MockCatalogService) CreateSupplier(ctx context.Context, s *domain.Supplier) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateSupplier", ctx, s)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateSupplier indicates an expected call of CreateSupplier.
func (mr *MockCatalogServiceMockRecorder) CreateSupplier(ctx, s any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateSupplier", reflect.TypeOf((*MockCatalogService)(nil).CreateSupplier), ctx, s)
}

// DeletePart mocks base method.
func (m *MockCatalogService) DeletePart(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeletePart", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeletePart indicates an expected call of DeletePart.
func (mr *MockCatalogServiceMockRecorder) DeletePart(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeletePart", reflect.TypeOf((*MockCatalogService)(nil).DeletePart), ctx, id)
}

// DeleteSupplier mocks base method.
func (m *MockCatalogService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteSupplier", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteSupplier indicates an expected call of DeleteSupplier.
func (mr *MockCatalogServiceMockRecorder) DeleteSupplier(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteSupplier", reflect.TypeOf((*MockCatalogService)(nil).DeleteSupplier), ctx, id)
}

// GetPart mocks base method.
func (m *MockCatalogService) GetPart(ctx context.Context, id uuid.UUID) (*domain.Part, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPart", ctx, id)
	ret0, _ := ret[0].(*domain.Part)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPart indicates an expected call of GetPart.
func (mr *MockCatalogServiceMockRecorder) GetPart(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPart", reflect.TypeOf((*MockCatalogService)(nil).GetPart), ctx, id)
}

// GetSupplier mocks base method.
func (m *MockCatalogService) GetSupplier(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSupplier", ctx, id)
	ret0, _ := ret[0].(*domain.Supplier)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSupplier indicates an expected call of GetSupplier.
func (mr *MockCatalogServiceMockRecorder) GetSupplier(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSupplier", reflect.TypeOf((*MockCatalogService)(nil).GetSupplier), ctx, id)
}

// ListParts mocks base method.
func (m *MockCatalogService) ListParts(ctx context.Context, q report.Query) (*paging.Page[*domain.Part], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListParts", ctx, q)
	ret0, _ := ret[0].(*paging.Page[*domain.Part])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListParts indicates an expected call of ListParts.
func (mr *MockCatalogServiceMockRecorder) ListParts(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListParts", reflect.TypeOf((*MockCatalogService)(nil).ListParts), ctx, q)
}

// ListSuppliers mocks base method.
func (m *MockCatalogService) ListSuppliers(ctx context.Context, q report.Query) (*paging.Page[*domain.Supplier], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListSuppliers", ctx, q)
	ret0, _ := ret[0].(*paging.Page[*domain.Supplier])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListSuppliers indicates an expected call of ListSuppliers.
func (mr *MockCatalogServiceMockRecorder) ListSuppliers(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListSuppliers", reflect.TypeOf((*MockCatalogService)(nil).ListSuppliers), ctx, q)
}

// UpdatePart mocks base method.
func (m *MockCatalogService) UpdatePart(ctx context.Context, id uuid.UUID, p *domain.Part) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePart", ctx, id, p)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdatePart indicates an expected call of UpdatePart.
func (mr *MockCatalogServiceMockRecorder) UpdatePart(ctx, id, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePart", reflect.TypeOf((*MockCatalogService)(nil).UpdatePart), ctx, id, p)
}

// UpdateSupplier mocks base method.
func (m *MockCatalogService) UpdateSupplier(ctx context.Context, id uuid.UUID, s *domain.Supplier) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateSupplier", ctx, id, s)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateSupplier indicates an expected call of UpdateSupplier.
func (mr *MockCatalogServiceMockRecorder) UpdateSupplier(ctx, id, s any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateSupplier", reflect.TypeOf((*MockCatalogService)(nil).UpdateSupplier), ctx, id, s)
}

// MockAuthService is a mock of AuthService interface.
type MockAuthService struct {
	ctrl     *gomock.Controller
	recorder *MockAuthServiceMockRecorder
	isgomock struct{}
}

// MockAuthServiceMockRecorder is the mock recorder for MockAuthService.
type MockAuthServiceMockRecorder struct {
	mock *MockAuthService
}

// NewMockAuthService creates a new mock instance.
func NewMockAuthService(ctrl *gomock.Controller) *MockAuthService {
	mock := &MockAuthService{ctrl: ctrl}
	mock.recorder = &MockAuthServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthService) EXPECT() *MockAuthServiceMockRecorder {
	return m.recorder
}

// Authenticate mocks base method.
func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Authenticate", ctx, token)
	ret0, _ := ret[0].(*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Authenticate indicates an expected call of Authenticate.
func (mr *MockAuthServiceMockRecorder) Authenticate(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Authenticate", reflect.TypeOf((*MockAuthService)(nil).Authenticate), ctx, token)
}

// Login mocks base method.
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, *ports.AuthTokens, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", ctx, email, password)
	ret0, _ := ret[0].(*domain.User)
	ret1, _ := ret[1].(*ports.AuthTokens)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Login indicates an expected call of Login.
func (mr *MockAuthServiceMockRecorder) Login(ctx, email, password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthService)(nil).Login), ctx, email, password)
}

// Logout mocks base method.
func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Logout", ctx, token)
	ret0, _ := ret[0].(error)
	return ret0
}

// Logout indicates an expected call of Logout.
func (mr *MockAuthServiceMockRecorder) Logout(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Logout", reflect.TypeOf((*MockAuthService)(nil).Logout), ctx, token)
}

// Register mocks base method.
func (m *MockAuthService) Register(ctx context.Context, u *domain.User, password string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Register", ctx, u, password)
	ret0, _ := ret[0].(error)
	return ret0
}

// Register indicates an expected call of Register.
func (mr *MockAuthServiceMockRecorder) Register(ctx, u, password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Register", reflect.TypeOf((*MockAuthService)(nil).Register), ctx, u, password)
}

// MockAnalysisService is a mock of AnalysisService interface.
type MockAnalysisService struct {
	ctrl     *gomock.Controller
	recorder *MockAnalysisServiceMockRecorder
	isgomock struct{}
}

// MockAnalysisServiceMockRecorder is the mock recorder for MockAnalysisService.
type MockAnalysisServiceMockRecorder struct {
	mock *MockAnalysisService
}

// NewMockAnalysisService creates a new mock instance.
func NewMockAnalysisService(ctrl *gomock.Controller) *MockAnalysisService {
	mock := &MockAnalysisService{ctrl: ctrl}
	mock.recorder = &MockAnalysisServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAnalysisService) EXPECT() *MockAnalysisServiceMockRecorder {
	return m.recorder
}

// Analyze mocks base method.
func (m *MockAnalysisService) Analyze(ctx context.Context, q report.Query) (*domain.Analysis, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Analyze", ctx, q)
	ret0, _ := ret[0].(*domain.Analysis)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Analyze indicates an expected call of Analyze.
func (mr *MockAnalysisServiceMockRecorder) Analyze(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Analyze", reflect.TypeOf((*MockAnalysisService)(nil).Analyze), ctx, q)
}

// Refresh mocks base method.
func (m *MockAnalysisService) Refresh(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Refresh", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Refresh indicates an expected call of Refresh.
func (mr *MockAnalysisServiceMockRecorder) Refresh(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Refresh", reflect.TypeOf((*MockAnalysisService)(nil).Refresh), ctx)
}

// MockExportService is a mock of ExportService interface.
type MockExportService struct {
	ctrl     *gomock.Controller
	recorder *MockExportServiceMockRecorder
	isgomock struct{}
}

// MockExportServiceMockRecorder is the mock recorder for MockExportService.
type MockExportServiceMockRecorder struct {
	mock *MockExportService
}

// NewMockExportService creates a new mock instance.
func NewMockExportService(ctrl *gomock.Controller) *MockExportService {
	mock := &MockExportService{ctrl: ctrl}
	mock.recorder = &MockExportServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExportService) EXPECT() *MockExportServiceMockRecorder {
	return m.recorder
}

// ExpensesPDF mocks base method.
func (m *MockExportService) ExpensesPDF(ctx context.Context, q report.Query) (*ports.Export, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExpensesPDF", ctx, q)
	ret0, _ := ret[0].(*ports.Export)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExpensesPDF indicates an expected call of ExpensesPDF.
func (mr *MockExportServiceMockRecorder) ExpensesPDF(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExpensesPDF", reflect.TypeOf((*MockExportService)(nil).ExpensesPDF), ctx, q)
}

// PurchasesExcel mocks base method.
func (m *MockExportService) PurchasesExcel(ctx context.Context, q report.Query) (*ports.Export, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PurchasesExcel", ctx, q)
	ret0, _ := ret[0].(*ports.Export)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PurchasesExcel indicates an expected call of PurchasesExcel.
func (mr *MockExportServiceMockRecorder) PurchasesExcel(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PurchasesExcel", reflect.TypeOf((*MockExportService)(nil).PurchasesExcel), ctx, q)
}

// PurchasesPDF mocks base method.
func (m *MockExportService) PurchasesPDF(ctx context.Context, q report.Query) (*ports.Export, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PurchasesPDF", ctx, q)
	ret0, _ := ret[0].(*ports.Export)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PurchasesPDF indicates an expected call of PurchasesPDF.
func (mr *MockExportServiceMockRecorder) PurchasesPDF(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PurchasesPDF", reflect.TypeOf((*MockExportService)(nil).PurchasesPDF), ctx, q)
}

// RepairsPDF mocks base method.
func (m *MockExportService) RepairsPDF(ctx context.Context, q report.Query) (*ports.Export, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RepairsPDF", ctx, q)
	ret0, _ := ret[0].(*ports.Export)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RepairsPDF indicates an expected call of RepairsPDF.
func (mr *MockExportServiceMockRecorder) RepairsPDF(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RepairsPDF", reflect.TypeOf((*MockExportService)(nil).RepairsPDF), ctx, q)
}

// VehicleHistoryPDF mocks base method.
func (m *MockExportService) VehicleHistoryPDF(ctx context.Context, vehicleID uuid.UUID) (*ports.Export, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VehicleHistoryPDF", ctx, vehicleID)
	ret0, _ := ret[0].(*ports.Export)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// VehicleHistoryPDF indicates an expected call of VehicleHistoryPDF.
func (mr *MockExportServiceMockRecorder) VehicleHistoryPDF(ctx, vehicleID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VehicleHistoryPDF", reflect.TypeOf((*MockExportService)(nil).VehicleHistoryPDF), ctx, vehicleID)
}
