package models

// Request модели

// IssueCodeRequest запрос на выдачу кода подтверждения
type IssueCodeRequest struct {
	Phone string `json:"phone"`
}

// ConfirmCodeRequest запрос на проверку кода подтверждения
type ConfirmCodeRequest struct {
	VerificationID string `json:"verificationId"`
	Code           string `json:"code"`
}

// Response модели

// IssueCodeResponse ответ с идентификатором выданного кода
type IssueCodeResponse struct {
	VerificationID   string `json:"verificationId"`
	ExpiresInSeconds int    `json:"expiresInSeconds"`
}

// ConfirmCodeResponse ответ с результатом проверки кода
type ConfirmCodeResponse struct {
	Phone    string `json:"phone"`
	Verified bool   `json:"verified"`
}
