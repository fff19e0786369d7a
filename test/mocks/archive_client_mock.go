// Code generated by MockGen. DO NOT EDIT.
// Source: ../../internal/adapters/storage/s3.go
//
// Generated by this command:
//
//	mockgen -source=../../internal/adapters/storage/s3.go -destination=archive_client_mock.go -package=mocks ArchiveClient
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	io "io"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockArchiveClient is a mock of ArchiveClient interface.
type MockArchiveClient struct {
	ctrl     *gomock.Controller
	recorder *MockArchiveClientMockRecorder
	isgomock struct{}
}

// MockArchiveClientMockRecorder is the mock recorder for MockArchiveClient.
type MockArchiveClientMockRecorder struct {
	mock *MockArchiveClient
}

// NewMockArchiveClient creates a new mock instance.
func NewMockArchiveClient(ctrl *gomock.Controller) *MockArchiveClient {
	mock := &MockArchiveClient{ctrl: ctrl}
	mock.recorder = &MockArchiveClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockArchiveClient) EXPECT() *MockArchiveClientMockRecorder {
	return m.recorder
}

// Delete mocks base method.
func (m *MockArchiveClient) Delete(ctx context.Context, key string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, key)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockArchiveClientMockRecorder) Delete(ctx, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockArchiveClient)(nil).Delete), ctx, key)
}

// Download mocks base method.
func (m *MockArchiveClient) Download(ctx context.Context, key string) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Download", ctx, key)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Download indicates an expected call of Download.
func (mr *MockArchiveClientMockRecorder) Download(ctx, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Download", reflect.TypeOf((*MockArchiveClient)(nil).Download), ctx, key)
}

// Exists mocks base method.
func (m *MockArchiveClient) Exists(ctx context.Context, key string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Exists", ctx, key)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Exists indicates an expected call of Exists.
func (mr *MockArchiveClientMockRecorder) Exists(ctx, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exists", reflect.TypeOf((*MockArchiveClient)(nil).Exists), ctx, key)
}

// GetPresignedURL mocks base method.
func (m *MockArchiveClient) GetPresignedURL(ctx context.Context, key string, duration time.Duration) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPresignedURL", ctx, key, duration)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPresignedURL indicates an expected call of GetPresignedURL.
func (mr *MockArchiveClientMockRecorder) GetPresignedURL(ctx, key, duration any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPresignedURL", reflect.TypeOf((*MockArchiveClient)(nil).GetPresignedURL), ctx, key, duration)
}

// List mocks base method.
func (m *MockArchiveClient) List(ctx context.Context, prefix string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, prefix)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockArchiveClientMockRecorder) List(ctx, prefix any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockArchiveClient)(nil).List), ctx, prefix)
}

// Upload mocks base method.
func (m *MockArchiveClient) Upload(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upload", ctx, key, data, contentType)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Upload indicates an expected call of Upload.
func (mr *MockArchiveClientMockRecorder) Upload(ctx, key, data, contentType any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upload", reflect.TypeOf((*MockArchiveClient)(nil).Upload), ctx, key, data, contentType)
}
