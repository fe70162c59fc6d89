package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockMailer records outbound mail instead of dialing SMTP.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(recipient, subject, body string) error {
	args := m.Called(recipient, subject, body)
	return args.Error(0)
}
