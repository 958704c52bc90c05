package request_verification

import (
	"context"

	"github.com/LoLe05/jarimae-sub001/internal/service/verification/models"
)

type VerificationService interface {
	Issue(ctx context.Context, req *models.IssueCodeRequest) (*models.IssueCodeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
