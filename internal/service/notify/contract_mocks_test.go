// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notify_test
//

// Package notify_test is a generated GoMock package.
package notify_test

import (
	context "context"
	entities "pickuppoint/internal/entities"
	logger "pickuppoint/pkg/logger"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockserviceLogger is a mock of serviceLogger interface.
type MockserviceLogger struct {
	ctrl     *gomock.Controller
	recorder *MockserviceLoggerMockRecorder
	isgomock struct{}
}

// MockserviceLoggerMockRecorder is the mock recorder for MockserviceLogger.
type MockserviceLoggerMockRecorder struct {
	mock *MockserviceLogger
}

// NewMockserviceLogger creates a new mock instance.
func NewMockserviceLogger(ctrl *gomock.Controller) *MockserviceLogger {
	mock := &MockserviceLogger{ctrl: ctrl}
	mock.recorder = &MockserviceLoggerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockserviceLogger) EXPECT() *MockserviceLoggerMockRecorder {
	return m.recorder
}

// Error mocks base method.
func (m *MockserviceLogger) Error(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Error", varargs...)
}

// Error indicates an expected call of Error.
func (mr *MockserviceLoggerMockRecorder) Error(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Error", reflect.TypeOf((*MockserviceLogger)(nil).Error), varargs...)
}

// Info mocks base method.
func (m *MockserviceLogger) Info(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Info", varargs...)
}

// Info indicates an expected call of Info.
func (mr *MockserviceLoggerMockRecorder) Info(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Info", reflect.TypeOf((*MockserviceLogger)(nil).Info), varargs...)
}

// Warn mocks base method.
func (m *MockserviceLogger) Warn(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Warn", varargs...)
}

// Warn indicates an expected call of Warn.
func (mr *MockserviceLoggerMockRecorder) Warn(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Warn", reflect.TypeOf((*MockserviceLogger)(nil).Warn), varargs...)
}

// With mocks base method.
func (m *MockserviceLogger) With(fields ...logger.Field) logger.Logger {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "With", varargs...)
	ret0, _ := ret[0].(logger.Logger)
	return ret0
}

// With indicates an expected call of With.
func (mr *MockserviceLoggerMockRecorder) With(fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "With", reflect.TypeOf((*MockserviceLogger)(nil).With), fields...)
}

// MockEmailGateway is a mock of EmailGateway interface.
type MockEmailGateway struct {
	ctrl     *gomock.Controller
	recorder *MockEmailGatewayMockRecorder
	isgomock struct{}
}

// MockEmailGatewayMockRecorder is the mock recorder for MockEmailGateway.
type MockEmailGatewayMockRecorder struct {
	mock *MockEmailGateway
}

// NewMockEmailGateway creates a new mock instance.
func NewMockEmailGateway(ctrl *gomock.Controller) *MockEmailGateway {
	mock := &MockEmailGateway{ctrl: ctrl}
	mock.recorder = &MockEmailGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEmailGateway) EXPECT() *MockEmailGatewayMockRecorder {
	return m.recorder
}

// Configured mocks base method.
func (m *MockEmailGateway) Configured() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Configured")
	ret0, _ := ret[0].(bool)
	return ret0
}

// Configured indicates an expected call of Configured.
func (mr *MockEmailGatewayMockRecorder) Configured() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Configured", reflect.TypeOf((*MockEmailGateway)(nil).Configured))
}

// Send mocks base method.
func (m *MockEmailGateway) Send(ctx context.Context, recipient, subject, htmlBody string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", ctx, recipient, subject, htmlBody)
	ret0, _ := ret[0].(error)
	return ret0
}

// Send indicates an expected call of Send.
func (mr *MockEmailGatewayMockRecorder) Send(ctx, recipient, subject, htmlBody any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*MockEmailGateway)(nil).Send), ctx, recipient, subject, htmlBody)
}

// MockWhatsappGateway is a mock of WhatsappGateway interface.
type MockWhatsappGateway struct {
	ctrl     *gomock.Controller
	recorder *MockWhatsappGatewayMockRecorder
	isgomock struct{}
}

// MockWhatsappGatewayMockRecorder is the mock recorder for MockWhatsappGateway.
type MockWhatsappGatewayMockRecorder struct {
	mock *MockWhatsappGateway
}

// NewMockWhatsappGateway creates a new mock instance.
func NewMockWhatsappGateway(ctrl *gomock.Controller) *MockWhatsappGateway {
	mock := &MockWhatsappGateway{ctrl: ctrl}
	mock.recorder = &MockWhatsappGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWhatsappGateway) EXPECT() *MockWhatsappGatewayMockRecorder {
	return m.recorder
}

// Configured mocks base method.
func (m *MockWhatsappGateway) Configured() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Configured")
	ret0, _ := ret[0].(bool)
	return ret0
}

// Configured indicates an expected call of Configured.
func (mr *MockWhatsappGatewayMockRecorder) Configured() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Configured", reflect.TypeOf((*MockWhatsappGateway)(nil).Configured))
}

// Send mocks base method.
func (m *MockWhatsappGateway) Send(ctx context.Context, phone, message string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", ctx, phone, message)
	ret0, _ := ret[0].(error)
	return ret0
}

// Send indicates an expected call of Send.
func (mr *MockWhatsappGatewayMockRecorder) Send(ctx, phone, message any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*MockWhatsappGateway)(nil).Send), ctx, phone, message)
}

// MockNotificationLog is a mock of NotificationLog interface.
type MockNotificationLog struct {
	ctrl     *gomock.Controller
	recorder *MockNotificationLogMockRecorder
	isgomock struct{}
}

// MockNotificationLogMockRecorder is the mock recorder for MockNotificationLog.
type MockNotificationLogMockRecorder struct {
	mock *MockNotificationLog
}

// NewMockNotificationLog creates a new mock instance.
func NewMockNotificationLog(ctrl *gomock.Controller) *MockNotificationLog {
	mock := &MockNotificationLog{ctrl: ctrl}
	mock.recorder = &MockNotificationLogMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNotificationLog) EXPECT() *MockNotificationLogMockRecorder {
	return m.recorder
}

// Append mocks base method.
func (m *MockNotificationLog) Append(ctx context.Context, entry entities.NotificationEntry) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Append", ctx, entry)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Append indicates an expected call of Append.
func (mr *MockNotificationLogMockRecorder) Append(ctx, entry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Append", reflect.TypeOf((*MockNotificationLog)(nil).Append), ctx, entry)
}

// MockLedger is a mock of Ledger interface.
type MockLedger struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerMockRecorder
	isgomock struct{}
}

// MockLedgerMockRecorder is the mock recorder for MockLedger.
type MockLedgerMockRecorder struct {
	mock *MockLedger
}

// NewMockLedger creates a new mock instance.
func NewMockLedger(ctrl *gomock.Controller) *MockLedger {
	mock := &MockLedger{ctrl: ctrl}
	mock.recorder = &MockLedgerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedger) EXPECT() *MockLedgerMockRecorder {
	return m.recorder
}

// Append mocks base method.
func (m *MockLedger) Append(ctx context.Context, entry entities.HistoryEntry) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Append", ctx, entry)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Append indicates an expected call of Append.
func (mr *MockLedgerMockRecorder) Append(ctx, entry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Append", reflect.TypeOf((*MockLedger)(nil).Append), ctx, entry)
}

// MockQrGenerator is a mock of QrGenerator interface.
type MockQrGenerator struct {
	ctrl     *gomock.Controller
	recorder *MockQrGeneratorMockRecorder
	isgomock struct{}
}

// MockQrGeneratorMockRecorder is the mock recorder for MockQrGenerator.
type MockQrGeneratorMockRecorder struct {
	mock *MockQrGenerator
}

// NewMockQrGenerator creates a new mock instance.
func NewMockQrGenerator(ctrl *gomock.Controller) *MockQrGenerator {
	mock := &MockQrGenerator{ctrl: ctrl}
	mock.recorder = &MockQrGeneratorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockQrGenerator) EXPECT() *MockQrGeneratorMockRecorder {
	return m.recorder
}

// ConfirmURL mocks base method.
func (m *MockQrGenerator) ConfirmURL(packageID int64) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ConfirmURL", packageID)
	ret0, _ := ret[0].(string)
	return ret0
}

// ConfirmURL indicates an expected call of ConfirmURL.
func (mr *MockQrGeneratorMockRecorder) ConfirmURL(packageID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConfirmURL", reflect.TypeOf((*MockQrGenerator)(nil).ConfirmURL), packageID)
}

// Generate mocks base method.
func (m *MockQrGenerator) Generate(ctx context.Context, packageID int64) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Generate", ctx, packageID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Generate indicates an expected call of Generate.
func (mr *MockQrGeneratorMockRecorder) Generate(ctx, packageID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Generate", reflect.TypeOf((*MockQrGenerator)(nil).Generate), ctx, packageID)
}
