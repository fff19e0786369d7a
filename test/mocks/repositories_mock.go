// Code generated by MockGen. DO NOT EDIT.
// Source: ../../internal/core/ports/repositories.go
//
// Generated by this command:
//
//	mockgen -source=../../internal/core/ports/repositories.go -destination=repositories_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	uuid "github.com/google/uuid"
	domain "github.com/sondurak/garage-be/internal/core/domain"
	report "github.com/sondurak/garage-be/internal/report"
	gomock "go.uber.org/mock/gomock"
)

// MockPurchaseRepository is a mock of PurchaseRepository interface.
type MockPurchaseRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPurchaseRepositoryMockRecorder
	isgomock struct{}
}

// MockPurchaseRepositoryMockRecorder is the mock recorder for MockPurchaseRepository.
type MockPurchaseRepositoryMockRecorder struct {
	mock *MockPurchaseRepository
}

// NewMockPurchaseRepository creates a new mock instance.
func NewMockPurchaseRepository(ctrl *gomock.Controller) *MockPurchaseRepository {
	mock := &MockPurchaseRepository{ctrl: ctrl}
	mock.recorder = &MockPurchaseRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPurchaseRepository) EXPECT() *MockPurchaseRepositoryMockRecorder {
	return m.recorder
}

// Delete mocks base method.
func (m *MockPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockPurchaseRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockPurchaseRepository)(nil).Delete), ctx, id)
}

// FindAll mocks base method.
func (m *MockPurchaseRepository) FindAll(ctx context.Context, q report.Query) ([]*domain.Purchase, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindAll", ctx, q)
	ret0, _ := ret[0].([]*domain.Purchase)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// FindAll indicates an expected call of FindAll.
func (mr *MockPurchaseRepositoryMockRecorder) FindAll(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindAll", reflect.TypeOf((*MockPurchaseRepository)(nil).FindAll), ctx, q)
}

// FindByID mocks base method.
func (m *MockPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*domain.Purchase)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockPurchaseRepositoryMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockPurchaseRepository)(nil).FindByID), ctx, id)
}

// PurgeDeletedBefore mocks base method.
func (m *MockPurchaseRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PurgeDeletedBefore", ctx, cutoff)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PurgeDeletedBefore indicates an expected call of PurgeDeletedBefore.
func (mr *MockPurchaseRepositoryMockRecorder) PurgeDeletedBefore(ctx, cutoff any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PurgeDeletedBefore", reflect.TypeOf((*MockPurchaseRepository)(nil).PurgeDeletedBefore), ctx, cutoff)
}

// Save mocks base method.
func (m *MockPurchaseRepository) Save(ctx context.Context, p *domain.Purchase) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, p)
	ret0, _ := ret[0].(error)
	return ret0
}

// Save indicates an expected call of Save.
func (mr *MockPurchaseRepositoryMockRecorder) Save(ctx, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockPurchaseRepository)(nil).Save), ctx, p)
}

// SaveBatch mocks base method.
func (m *MockPurchaseRepository) SaveBatch(ctx context.Context, purchases []domain.Purchase) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveBatch", ctx, purchases)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveBatch indicates an expected call of SaveBatch.
func (mr *MockPurchaseRepositoryMockRecorder) SaveBatch(ctx, purchases any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveBatch", reflect.TypeOf((*MockPurchaseRepository)(nil).SaveBatch), ctx, purchases)
}

// SoftDelete mocks base method.
func (m *MockPurchaseRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SoftDelete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// SoftDelete indicates an expected call of SoftDelete.
func (mr *MockPurchaseRepositoryMockRecorder) SoftDelete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SoftDelete", reflect.TypeOf((*MockPurchaseRepository)(nil).SoftDelete), ctx, id)
}

// Update mocks base method.
func (m *MockPurchaseRepository) Update(ctx context.Context, p *domain.Purchase) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, p)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockPurchaseRepositoryMockRecorder) Update(ctx, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockPurchaseRepository)(nil).Update), ctx, p)
}

// MockRepairRepository is a mock of RepairRepository interface.
type MockRepairRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepairRepositoryMockRecorder
	isgomock struct{}
}

// MockRepairRepositoryMockRecorder is the mock recorder for MockRepairRepository.
type MockRepairRepositoryMockRecorder struct {
	mock *MockRepairRepository
}

// NewMockRepairRepository creates a new mock instance.
func NewMockRepairRepository(ctrl *gomock.Controller) *MockRepairRepository {
	mock := &MockRepairRepository{ctrl: ctrl}
	mock.recorder = &MockRepairRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepairRepository) EXPECT() *MockRepairRepositoryMockRecorder {
	return m.recorder
}

// Delete mocks base method.
func (m *MockRepairRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockRepairRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockRepairRepository)(nil).Delete), ctx, id)
}

// FindAll mocks base method.
func (m *MockRepairRepository) FindAll(ctx context.Context, q report.Query) ([]*domain.Repair, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindAll", ctx, q)
	ret0, _ := ret[0].([]*domain.Repair)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// FindAll indicates an expected call of FindAll.
func (mr *MockRepairRepositoryMockRecorder) FindAll(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindAll", reflect.TypeOf((*MockRepairRepository)(nil).FindAll), ctx, q)
}

// FindByID mocks base method.
func (m *MockRepairRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*domain.Repair)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockRepairRepositoryMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockRepairRepository)(nil).FindByID), ctx, id)
}

// FindByPlate mocks base method.
func (m *MockRepairRepository) FindByPlate(ctx context.Context, plate string) ([]*domain.Repair, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByPlate", ctx, plate)
	ret0, _ := ret[0].([]*domain.Repair)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByPlate indicates an expected call of FindByPlate.
func (mr *MockRepairRepositoryMockRecorder) FindByPlate(ctx, plate any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByPlate", reflect.TypeOf((*MockRepairRepository)(nil).FindByPlate), ctx, plate)
}

// PurgeDeletedBefore mocks base method.
func (m *MockRepairRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PurgeDeletedBefore", ctx, cutoff)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PurgeDeletedBefore indicates an expected call of PurgeDeletedBefore.
func (mr *MockRepairRepositoryMockRecorder) PurgeDeletedBefore(ctx, cutoff any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PurgeDeletedBefore", reflect.TypeOf((*MockRepairRepository)(nil).PurgeDeletedBefore), ctx, cutoff)
}

// Save mocks base method.
func (m *MockRepairRepository) Save(ctx context.Context, r *domain.Repair) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, r)
	ret0, _ := ret[0].(error)
	return ret0
}

// Save indicates an expected call of Save.
func (mr *MockRepairRepositoryMockRecorder) Save(ctx, r any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockRepairRepository)(nil).Save), ctx, r)
}

// SoftDelete mocks base method.
func (m *MockRepairRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SoftDelete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// SoftDelete indicates an expected call of SoftDelete.
func (mr *MockRepairRepositoryMockRecorder) SoftDelete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SoftDelete", reflect.TypeOf((*MockRepairRepository)(nil).SoftDelete), ctx, id)
}

// Update mocks base method.
func (m *MockRepairRepository) Update(ctx context.Context, r *domain.Repair) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, r)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockRepairRepositoryMockRecorder) Update(ctx, r any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRepairRepository)(nil).Update), ctx, r)
}

// MockExpenseRepository is a mock of ExpenseRepository interface.
type MockExpenseRepository struct {
	ctrl     *gomock.Controller
	recorder *MockExpenseRepositoryMockRecorder
	isgomock struct{}
}

// MockExpenseRepositoryMockRecorder is the mock recorder for MockExpenseRepository.
type MockExpenseRepositoryMockRecorder struct {
	mock *MockExpenseRepository
}

// NewMockExpenseRepository creates a new mock instance.
func NewMockExpenseRepository(ctrl *gomock.Controller) *MockExpenseRepository {
	mock := &MockExpenseRepository{ctrl: ctrl}
	mock.recorder = &MockExpenseRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExpenseRepository) EXPECT() *MockExpenseRepositoryMockRecorder {
	return m.recorder
}

// Delete mocks base method.
func (m *MockExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockExpenseRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockExpenseRepository)(nil).Delete), ctx, id)
}

// FindAll mocks base method.
func (m *MockExpenseRepository) FindAll(ctx context.Context, q report.Query) ([]*domain.Expense, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindAll", ctx, q)
	ret0, _ := ret[0].([]*domain.Expense)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// FindAll indicates an expected call of FindAll.
func (mr *MockExpenseRepositoryMockRecorder) FindAll(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindAll", reflect.TypeOf((*MockExpenseRepository)(nil).FindAll), ctx, q)
}

// FindByID mocks base method.
func (m *MockExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*domain.Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockExpenseRepositoryMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockExpenseRepository)(nil).FindByID), ctx, id)
}

// PurgeDeletedBefore mocks base method.
func (m *MockExpenseRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PurgeDeletedBefore", ctx, cutoff)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PurgeDeletedBefore indicates an expected call of PurgeDeletedBefore.
func (mr *MockExpenseRepositoryMockRecorder) PurgeDeletedBefore(ctx, cutoff any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PurgeDeletedBefore", reflect.TypeOf((*MockExpenseRepository)(nil).PurgeDeletedBefore), ctx, cutoff)
}

// Save mocks base method.
func (m *MockExpenseRepository) Save(ctx context.Context, e *domain.Expense) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, e)
	ret0, _ := ret[0].(error)
	return ret0
}

// Save indicates an expected call of Save.
func (mr *MockExpenseRepositoryMockRecorder) Save(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockExpenseRepository)(nil).Save), ctx, e)
}

// SoftDelete mocks base method.
func (m *MockExpenseRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SoftDelete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// SoftDelete indicates an expected call of SoftDelete.
func (mr *MockExpenseRepositoryMockRecorder) SoftDelete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SoftDelete", reflect.TypeOf((*MockExpenseRepository)(nil).SoftDelete), ctx, id)
}

// Update mocks base method.
func (m *MockExpenseRepository) Update(ctx context.Context, e *domain.Expense) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, e)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockExpenseRepositoryMockRecorder) Update(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockExpenseRepository)(nil).Update), ctx, e)
}

// MockVehicleRepository is a mock of VehicleRepository interface.
type MockVehicleRepository struct {
	ctrl     *gomock.Controller
	recorder *MockVehicleRepositoryMockRecorder
	isgomock struct{}
}

// MockVehicleRepositoryMockRecorder is the mock recorder for MockVehicleRepository.
type MockVehicleRepositoryMockRecorder struct {
	mock *MockVehicleRepository
}

// NewMockVehicleRepository creates a new mock instance.
func NewMockVehicleRepository(ctrl *gomock.Controller) *MockVehicleRepository {
	mock := &MockVehicleRepository{ctrl: ctrl}
	mock.recorder = &MockVehicleRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVehicleRepository) EXPECT() *MockVehicleRepositoryMockRecorder {
	return m.recorder
}

// Delete mocks base method.
func (m *MockVehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockVehicleRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockVehicleRepository)(nil).Delete), ctx, id)
}

// FindAll mocks base method.
func (m *MockVehicleRepository) FindAll(ctx context.Context, q report.Query) ([]*domain.CustomerVehicle, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindAll", ctx, q)
	ret0, _ := ret[0].([]*domain.CustomerVehicle)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// FindAll indicates an expected call of FindAll.
func (mr *MockVehicleRepositoryMockRecorder) FindAll(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindAll", reflect.TypeOf((*MockVehicleRepository)(nil).FindAll), ctx, q)
}

// FindByID mocks base method.
func (m *MockVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.CustomerVehicle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*domain.CustomerVehicle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockVehicleRepositoryMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockVehicleRepository)(nil).FindByID), ctx, id)
}

// FindByQRCode mocks base method.
func (m *MockVehicleRepository) FindByQRCode(ctx context.Context, code string) (*domain.CustomerVehicle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByQRCode", ctx, code)
	ret0, _ := ret[0].(*domain.CustomerVehicle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByQRCode indicates an expected call of FindByQRCode.
func (mr *MockVehicleRepositoryMockRecorder) FindByQRCode(ctx, code any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByQRCode", reflect.TypeOf((*MockVehicleRepository)(nil).FindByQRCode), ctx, code)
}

// PurgeDeletedBefore mocks base method.
func (m *MockVehicleRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PurgeDeletedBefore", ctx, cutoff)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PurgeDeletedBefore indicates an expected call of PurgeDeletedBefore.
func (mr *MockVehicleRepositoryMockRecorder) PurgeDeletedBefore(ctx, cutoff any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PurgeDeletedBefore", reflect.TypeOf((*MockVehicleRepository)(nil).PurgeDeletedBefore), ctx, cutoff)
}

// Save mocks base method.
func (m *MockVehicleRepository) Save(ctx context.Context, v *domain.CustomerVehicle) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, v)
	ret0, _ := ret[0].(error)
	return ret0
}

// Save indicates an expected call of Save.
func (mr *MockVehicleRepositoryMockRecorder) Save(ctx, v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockVehicleRepository)(nil).Save), ctx, v)
}

// SoftDelete mocks base method.
func (m *MockVehicleRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SoftDelete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// SoftDelete indicates an expected call of SoftDelete.
func (mr *MockVehicleRepositoryMockRecorder) SoftDelete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SoftDelete", reflect.TypeOf((*MockVehicleRepository)(nil).SoftDelete), ctx, id)
}

// Update mocks base method.
func (m *MockVehicleRepository) Update(ctx context.Context, v *domain.CustomerVehicle) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, v)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockVehicleRepositoryMockRecorder) Update(ctx, v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockVehicleRepository)(nil).Update), ctx, v)
}

// MockSupplierRepository is a mock of SupplierRepository interface.
type MockSupplierRepository struct {
	ctrl     *gomock.Controller
	recorder *MockSupplierRepositoryMockRecorder
	isgomock struct{}
}

// MockSupplierRepositoryMockRecorder is the mock recorder for MockSupplierRepository.
type MockSupplierRepositoryMockRecorder struct {
	mock *MockSupplierRepository
}

// NewMockSupplierRepository creates a new mock instance.
func NewMockSupplierRepository(ctrl *gomock.Controller) *MockSupplierRepository {
	mock := &MockSupplierRepository{ctrl: ctrl}
	mock.recorder = &MockSupplierRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSupplierRepository) EXPECT() *MockSupplierRepositoryMockRecorder {
	return m.recorder
}

// FindAll mocks base method.
func (m *MockSupplierRepository) FindAll(ctx context.Context, q report.Query) ([]*domain.Supplier, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindAll", ctx, q)
	ret0, _ := ret[0].([]*domain.Supplier)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// FindAll indicates an expected call of FindAll.
func (mr *MockSupplierRepositoryMockRecorder) FindAll(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindAll", reflect.TypeOf((*MockSupplierRepository)(nil).FindAll), ctx, q)
}

// FindByID mocks base method.
func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*domain.Supplier)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockSupplierRepositoryMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockSupplierRepository)(nil).FindByID), ctx, id)
}

// PurgeDeletedBefore mocks base method.
func (m *MockSupplierRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PurgeDeletedBefore", ctx, cutoff)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PurgeDeletedBefore indicates an expected call of PurgeDeletedBefore.
func (mr *MockSupplierRepositoryMockRecorder) PurgeDeletedBefore(ctx, cutoff any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PurgeDeletedBefore", reflect.TypeOf((*MockSupplierRepository)(nil).PurgeDeletedBefore), ctx, cutoff)
}

// Save mocks base method.
func (m *MockSupplierRepository) Save(ctx context.Context, s *domain.Supplier) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, s)
	ret0, _ := ret[0].(error)
	return ret0
}

// Save indicates an expected call of Save.
func (mr *MockSupplierRepositoryMockRecorder) Save(ctx, s any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockSupplierRepository)(nil).Save), ctx, s)
}

// SoftDelete mocks base method.
func (m *MockSupplierRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SoftDelete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// SoftDelete indicates an expected call of SoftDelete.
func (mr *MockSupplierRepositoryMockRecorder) SoftDelete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SoftDelete", reflect.TypeOf((*MockSupplierRepository)(nil).SoftDelete), ctx, id)
}

// Update mocks base method.
func (m *MockSupplierRepository) Update(ctx context.Context, s *domain.Supplier) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, s)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockSupplierRepositoryMockRecorder) Update(ctx, s any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockSupplierRepository)(nil).Update), ctx, s)
}

// MockPartRepository is a mock of PartRepository interface.
type MockPartRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPartRepositoryMockRecorder
	isgomock struct{}
}

// MockPartRepositoryMockRecorder is the mock recorder for MockPartRepository.
type MockPartRepositoryMockRecorder struct {
	mock *MockPartRepository
}

// NewMockPartRepository creates a new mock instance.
func NewMockPartRepository(ctrl *gomock.Controller) *MockPartRepository {
	mock := &MockPartRepository{ctrl: ctrl}
	mock.recorder = &MockPartRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPartRepository) EXPECT() *MockPartRepositoryMockRecorder {
	return m.recorder
}

// FindAll mocks base method.
func (m *MockPartRepository) FindAll(ctx context.Context, q report.Query) ([]*domain.Part, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindAll", ctx, q)
	ret0, _ := ret[0].([]*domain.Part)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// FindAll indicates an expected call of FindAll.
func (mr *MockPartRepositoryMockRecorder) FindAll(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindAll", reflect.TypeOf((*MockPartRepository)(nil).FindAll), ctx, q)
}

// FindByID mocks base method.
func (m *MockPartRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Part, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*domain.Part)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockPartRepositoryMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockPartRepository)(nil).FindByID), ctx, id)
}

// PurgeDeletedBefore mocks base method.
func (m *MockPartRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PurgeDeletedBefore", ctx, cutoff)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PurgeDeletedBefore indicates an expected call of PurgeDeletedBefore.
func (mr *MockPartRepositoryMockRecorder) PurgeDeletedBefore(ctx, cutoff any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PurgeDeletedBefore", reflect.TypeOf((*MockPartRepository)(nil).PurgeDeletedBefore), ctx, cutoff)
}

// Save mocks base method.
func (m *MockPartRepository) Save(ctx context.Context, p *domain.Part) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, p)
	ret0, _ := ret[0].(error)
	return ret0
}

// Save indicates an expected call of Save.
func (mr *MockPartRepositoryMockRecorder) Save(ctx, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockPartRepository)(nil).Save), ctx, p)
}

// SoftDelete mocks base method.
func (m *MockPartRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SoftDelete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// SoftDelete indicates an expected call of SoftDelete.
func (mr *MockPartRepositoryMockRecorder) SoftDelete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SoftDelete", reflect.TypeOf((*MockPartRepository)(nil).SoftDelete), ctx, id)
}

// Update mocks base method.
func (m *MockPartRepository) Update(ctx context.Context, p *domain.Part) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, p)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockPartRepositoryMockRecorder) Update(ctx, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockPartRepository)(nil).Update), ctx, p)
}

// MockUserRepository is a mock of UserRepository interface.
type MockUserRepository struct {
	ctrl     *gomock.Controller
	recorder *MockUserRepositoryMockRecorder
	isgomock struct{}
}

// MockUserRepositoryMockRecorder is the mock recorder for MockUserRepository.
type MockUserRepositoryMockRecorder struct {
	mock *MockUserRepository
}

// NewMockUserRepository creates a new mock instance.
func NewMockUserRepository(ctrl *gomock.Controller) *MockUserRepository {
	mock := &MockUserRepository{ctrl: ctrl}
	mock.recorder = &MockUserRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserRepository) EXPECT() *MockUserRepositoryMockRecorder {
	return m.recorder
}

// FindAll mocks base method.
func (m *MockUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindAll", ctx)
	ret0, _ := ret[0].([]*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindAll indicates an expected call of FindAll.
func (mr *MockUserRepositoryMockRecorder) FindAll(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindAll", reflect.TypeOf((*MockUserRepository)(nil).FindAll), ctx)
}

// FindByEmail mocks base method.
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByEmail", ctx, email)
	ret0, _ := ret[0].(*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByEmail indicates an expected call of FindByEmail.
func (mr *MockUserRepositoryMockRecorder) FindByEmail(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByEmail", reflect.TypeOf((*MockUserRepository)(nil).FindByEmail), ctx, email)
}

// FindByID mocks base method.
func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockUserRepositoryMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockUserRepository)(nil).FindByID), ctx, id)
}

// Save mocks base method.
func (m *MockUserRepository) Save(ctx context.Context, u *domain.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, u)
	ret0, _ := ret[0].(error)
	return ret0
}

// Save indicates an expected call of Save.
func (mr *MockUserRepositoryMockRecorder) Save(ctx, u any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockUserRepository)(nil).Save), ctx, u)
}

// SoftDelete mocks base method.
func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SoftDelete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// SoftDelete indicates an expected call of SoftDelete.
func (mr *MockUserRepositoryMockRecorder) SoftDelete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SoftDelete", reflect.TypeOf((*MockUserRepository)(nil).SoftDelete), ctx, id)
}

// Update mocks base method.
func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, u)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockUserRepositoryMockRecorder) Update(ctx, u any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockUserRepository)(nil).Update), ctx, u)
}

// MockAnalysisRepository is a mock of AnalysisRepository interface.
type MockAnalysisRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAnalysisRepositoryMockRecorder
	isgomock struct{}
}

// MockAnalysisRepositoryMockRecorder is the mock recorder for MockAnalysisRepository.
type MockAnalysisRepositoryMockRecorder struct {
	mock *MockAnalysisRepository
}

// NewMockAnalysisRepository creates a new mock instance.
func NewMockAnalysisRepository(ctrl *gomock.Controller) *MockAnalysisRepository {
	mock := &MockAnalysisRepository{ctrl: ctrl}
	mock.recorder = &MockAnalysisRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAnalysisRepository) EXPECT() *MockAnalysisRepositoryMockRecorder {
	return m.recorder
}

// Totals mocks base method.
func (m *MockAnalysisRepository) Totals(ctx context.Context, q report.Query) (*domain.Analysis, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Totals", ctx, q)
	ret0, _ := ret[0].(*domain.Analysis)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Totals indicates an expected call of Totals.
func (mr *MockAnalysisRepositoryMockRecorder) Totals(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Totals", reflect.TypeOf((*MockAnalysisRepository)(nil).Totals), ctx, q)
}
