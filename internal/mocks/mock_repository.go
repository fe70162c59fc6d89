package mocks

import (
	"time"

	"resumatch/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateFromVerification(verification *models.Verification) (*models.User, error) {
	args := m.Called(verification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(email, passwordHash string) error {
	args := m.Called(email, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfileCompletion(email string, completion int) error {
	args := m.Called(email, completion)
	return args.Error(0)
}

func (m *MockUserRepository) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

// Shared MockVerificationRepository
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Upsert(verification *models.Verification) error {
	args := m.Called(verification)
	return args.Error(0)
}

func (m *MockVerificationRepository) FindByEmail(email string) (*models.Verification, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Verification), args.Error(1)
}

func (m *MockVerificationRepository) UpdateCode(email, code string, expiresAt time.Time) error {
	args := m.Called(email, code, expiresAt)
	return args.Error(0)
}

func (m *MockVerificationRepository) DeleteByEmail(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

func (m *MockVerificationRepository) DeleteExpired(now time.Time) (int64, error) {
	args := m.Called(now)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockResetPasswordRepository
type MockResetPasswordRepository struct {
	mock.Mock
}

func (m *MockResetPasswordRepository) Upsert(resetPassword *models.ResetPassword) error {
	args := m.Called(resetPassword)
	return args.Error(0)
}

func (m *MockResetPasswordRepository) FindByEmailAndCode(email, code string) (*models.ResetPassword, error) {
	args := m.Called(email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ResetPassword), args.Error(1)
}

func (m *MockResetPasswordRepository) DeleteByEmail(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

func (m *MockResetPasswordRepository) DeleteExpired(now time.Time) (int64, error) {
	args := m.Called(now)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockResumeRepository
type MockResumeRepository struct {
	mock.Mock
}

func (m *MockResumeRepository) UpsertByOwner(resume *models.Resume) error {
	args := m.Called(resume)
	return args.Error(0)
}

func (m *MockResumeRepository) FindByOwner(email string) (*models.Resume, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resume), args.Error(1)
}

func (m *MockResumeRepository) FindByID(id uint) (*models.Resume, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resume), args.Error(1)
}

func (m *MockResumeRepository) FindAllByOwner(email string) ([]models.Resume, error) {
	args := m.Called(email)
	return args.Get(0).([]models.Resume), args.Error(1)
}

func (m *MockResumeRepository) Update(resume *models.Resume) error {
	args := m.Called(resume)
	return args.Error(0)
}

// Shared MockJobRepository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(job *models.JobPost) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockJobRepository) FindAll() ([]models.JobPost, error) {
	args := m.Called()
	return args.Get(0).([]models.JobPost), args.Error(1)
}

func (m *MockJobRepository) FindByID(id uint) (*models.JobPost, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobPost), args.Error(1)
}

func (m *MockJobRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockNotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(notification *models.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindByUserEmail(email string) ([]models.Notification, error) {
	args := m.Called(email)
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(email string, ids []uint) (int64, error) {
	args := m.Called(email, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(email string) (int64, error) {
	args := m.Called(email)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(activity *models.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockActivityRepository) FindRecentByUserEmail(email string, limit int) ([]models.Activity, error) {
	args := m.Called(email, limit)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) CountByUserEmail(email string) (int64, error) {
	args := m.Called(email)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockGeneratedResumeRepository
type MockGeneratedResumeRepository struct {
	mock.Mock
}

func (m *MockGeneratedResumeRepository) Create(resume *models.GeneratedResume) error {
	args := m.Called(resume)
	return args.Error(0)
}

func (m *MockGeneratedResumeRepository) FindAllByOwner(email string) ([]models.GeneratedResume, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GeneratedResume), args.Error(1)
}

func (m *MockGeneratedResumeRepository) FindByIDAndOwner(id uint, email string) (*models.GeneratedResume, error) {
	args := m.Called(id, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GeneratedResume), args.Error(1)
}

func (m *MockGeneratedResumeRepository) DeleteByIDAndOwner(id uint, email string) (int64, error) {
	args := m.Called(id, email)
	return args.Get(0).(int64), args.Error(1)
}
