package verification

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	cache "github.com/LoLe05/jarimae-sub001/internal/infra/cache/verification"
	"github.com/LoLe05/jarimae-sub001/internal/service/verification/models"
)

// phoneRegex допускает международный формат: опциональный "+" и 8-15 цифр
var phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

const codeDigits = 6

// Config настройки выдачи кодов подтверждения
type Config struct {
	CodeTTL        time.Duration // Время жизни кода
	IssuePerMinute float64       // Лимит выдачи кодов на один номер в минуту
	IssueBurst     int           // Допустимый всплеск запросов на один номер
}

// Service сервис выдачи и проверки кодов подтверждения телефона
type Service struct {
	codeStore CodeStore
	cfg       Config
	logger    Logger

	// Лимитер на каждый номер телефона. Карта растёт по мере появления
	// новых номеров и живёт столько же, сколько процесс.
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewService создает новый экземпляр сервиса кодов подтверждения
func NewService(codeStore CodeStore, cfg Config, logger Logger) *Service {
	return &Service{
		codeStore: codeStore,
		cfg:       cfg,
		logger:    logger,
		limiters:  make(map[string]*rate.Limiter),
	}
}

// Issue выдаёт новый код подтверждения для номера телефона.
// Код сохраняется в Redis с TTL, наружу уходит только идентификатор выдачи.
// Повторные запросы на один номер ограничены лимитером.
func (s *Service) Issue(ctx context.Context, req *models.IssueCodeRequest) (*models.IssueCodeResponse, error) {
	s.logger.Info("Issue: issuing verification code for phone=%s", maskPhone(req.Phone))

	// 1. Валидируем номер телефона
	if !phoneRegex.MatchString(req.Phone) {
		s.logger.Warn("Issue: invalid phone format")
		return nil, ErrInvalidPhone
	}

	// 2. Проверяем лимит выдачи на номер
	if !s.limiterFor(req.Phone).Allow() {
		s.logger.Warn("Issue: rate limit exceeded for phone=%s", maskPhone(req.Phone))
		return nil, ErrTooManyRequests
	}

	// 3. Генерируем код и идентификатор выдачи
	code, err := generateCode()
	if err != nil {
		s.logger.Error("Issue: failed to generate code: %v", err)
		return nil, fmt.Errorf("%w: Issue - failed to generate code: %v", ErrInternal, err)
	}
	verificationID := uuid.NewString()

	// 4. Сохраняем код с TTL
	record := cache.CodeRecord{
		Phone:    req.Phone,
		Code:     code,
		IssuedAt: time.Now(),
	}
	if err := s.codeStore.Save(ctx, verificationID, record, s.cfg.CodeTTL); err != nil {
		s.logger.Error("Issue: failed to save code: %v", err)
		return nil, fmt.Errorf("%w: Issue - failed to save code: %v", ErrInternal, err)
	}

	s.logger.Info("Issue: issued verification id=%s for phone=%s, ttl=%s",
		verificationID, maskPhone(req.Phone), s.cfg.CodeTTL)

	return &models.IssueCodeResponse{
		VerificationID:   verificationID,
		ExpiresInSeconds: int(s.cfg.CodeTTL.Seconds()),
	}, nil
}

// Confirm проверяет код подтверждения.
// Код читается из Redis с одновременным удалением, поэтому каждая выдача
// допускает ровно одну попытку проверки.
func (s *Service) Confirm(ctx context.Context, req *models.ConfirmCodeRequest) (*models.ConfirmCodeResponse, error) {
	s.logger.Info("Confirm: confirming verification id=%s", req.VerificationID)

	// 1. Валидируем входные данные
	if req.VerificationID == "" || req.Code == "" {
		s.logger.Warn("Confirm: empty verification id or code")
		return nil, fmt.Errorf("%w: verificationId and code are required", ErrInvalidInput)
	}

	// 2. Читаем и удаляем код
	record, err := s.codeStore.GetDel(ctx, req.VerificationID)
	if err != nil {
		if errors.Is(err, cache.ErrCodeNotFound) {
			s.logger.Warn("Confirm: code not found for id=%s", req.VerificationID)
			return nil, ErrCodeNotFound
		}
		s.logger.Error("Confirm: store error for id=%s: %v", req.VerificationID, err)
		return nil, fmt.Errorf("%w: Confirm - store error: %v", ErrInternal, err)
	}

	// 3. Сверяем код
	if record.Code != req.Code {
		s.logger.Warn("Confirm: code mismatch for id=%s", req.VerificationID)
		return nil, ErrCodeMismatch
	}

	s.logger.Info("Confirm: successfully confirmed phone=%s", maskPhone(record.Phone))
	return &models.ConfirmCodeResponse{
		Phone:    record.Phone,
		Verified: true,
	}, nil
}

// limiterFor возвращает лимитер для номера телефона, создавая его при первом обращении
func (s *Service) limiterFor(phone string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, ok := s.limiters[phone]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(s.cfg.IssuePerMinute/60.0), s.cfg.IssueBurst)
		s.limiters[phone] = limiter
	}
	return limiter
}

// generateCode генерирует случайный шестизначный код
func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", codeDigits, n), nil
}

// maskPhone скрывает номер телефона в логах, оставляя последние 4 цифры
func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return "****" + phone[len(phone)-4:]
}
