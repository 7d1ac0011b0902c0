package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"deployment-tracker-backend/internal/database/models"
	apperrors "deployment-tracker-backend/internal/errors"
	"deployment-tracker-backend/internal/logger"
	"deployment-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	// DefaultKeyName is the label of the key minted on first startup
	DefaultKeyName = "Default Key"

	secretBytes       = 32
	maskReveal        = 8
	createKeyAttempts = 3
)

// APIKeyService handles credential validation and key lifecycle
type APIKeyService struct {
	repo      repository.APIKeyRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewAPIKeyService creates a new API key service
func NewAPIKeyService(repo repository.APIKeyRepositoryInterface, validator *validator.Validate) *APIKeyService {
	return &APIKeyService{
		repo:      repo,
		validator: validator,
		log:       logger.New(),
	}
}

// CreateAPIKeyRequest represents the request to create an API key
type CreateAPIKeyRequest struct {
	KeyName string `json:"keyName" validate:"required,min=1,max=200"`
}

// CreatedAPIKey is the one response that carries a freshly minted secret
type CreatedAPIKey struct {
	ID      uint   `json:"id"`
	KeyName string `json:"keyName"`
	Key     string `json:"apiKey"`
}

// APIKeyResponse represents a key in listings, with the secret masked
type APIKeyResponse struct {
	ID       uint       `json:"id"`
	KeyName  string     `json:"key_name"`
	Key      string     `json:"api_key"`
	Created  time.Time  `json:"created"`
	LastUsed *time.Time `json:"last_used"`
	Active   bool       `json:"active"`
}

// MaskKey reveals only the first and last 8 characters of a secret.
// Secrets too short for that reveal to be safe are fully starred.
func MaskKey(key string) string {
	if len(key) <= 2*maskReveal {
		return strings.Repeat("*", len(key))
	}
	return key[:maskReveal] + "..." + key[len(key)-maskReveal:]
}

// Validate reports whether the presented secret belongs to an active key.
// It fails closed: an absent, unknown or inactive key is false. On success
// the key's last-used timestamp is updated in the background; that write is
// best-effort and never influences the validation result.
func (s *APIKeyService) Validate(key string) bool {
	if key == "" {
		return false
	}

	record, err := s.repo.GetActiveByKey(key)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.WithError(err).Error("failed to validate API key")
		}
		return false
	}

	go func(id uint) {
		if err := s.repo.TouchLastUsed(id); err != nil {
			s.log.WithError(err).WithField("key_id", id).Warn("failed to record API key last use")
		}
	}(record.ID)

	return true
}

// List retrieves all keys with their secrets masked
func (s *APIKeyService) List() ([]APIKeyResponse, error) {
	keys, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list API keys: %w", err)
	}

	responses := make([]APIKeyResponse, len(keys))
	for i, key := range keys {
		responses[i] = APIKeyResponse{
			ID:       key.ID,
			KeyName:  key.KeyName,
			Key:      MaskKey(key.Key),
			Created:  key.Created,
			LastUsed: key.LastUsed,
			Active:   key.Active,
		}
	}
	return responses, nil
}

// GetFullKey returns the raw secret for an explicit reveal action.
// Callers must treat this as higher-sensitivity than List.
func (s *APIKeyService) GetFullKey(id uint) (string, error) {
	key, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrAPIKeyNotFound
		}
		return "", fmt.Errorf("failed to get API key: %w", err)
	}
	return key.Key, nil
}

// Create mints a new key with a cryptographically random secret. The store's
// uniqueness constraint guards against collisions; the astronomically
// unlikely loser is retried with a fresh secret.
func (s *APIKeyService) Create(req *CreateAPIKeyRequest) (*CreatedAPIKey, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("keyName", "key name is required")
	}

	var lastErr error
	for attempt := 0; attempt < createKeyAttempts; attempt++ {
		secret, err := generateSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate API key secret: %w", err)
		}

		record := &models.APIKey{
			KeyName: req.KeyName,
			Key:     secret,
			Active:  true,
		}
		if err := s.repo.Create(record); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("failed to create API key: %w", err)
		}

		return &CreatedAPIKey{
			ID:      record.ID,
			KeyName: record.KeyName,
			Key:     record.Key,
		}, nil
	}

	return nil, fmt.Errorf("failed to create API key: %w", lastErr)
}

// SetActive activates or deactivates a key
func (s *APIKeyService) SetActive(id uint, active bool) error {
	affected, err := s.repo.SetActive(id, active)
	if err != nil {
		return fmt.Errorf("failed to update API key: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAPIKeyNotFound
	}
	return nil
}

// Delete removes a key permanently
func (s *APIKeyService) Delete(id uint) error {
	affected, err := s.repo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete API key: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAPIKeyNotFound
	}
	return nil
}

// EnsureDefaultKey mints one key named "Default Key" when no keys exist, so
// the system is usable out of the box. Idempotent across restarts: any
// existing key suppresses the bootstrap.
func (s *APIKeyService) EnsureDefaultKey() error {
	count, err := s.repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count API keys: %w", err)
	}
	if count > 0 {
		return nil
	}

	created, err := s.Create(&CreateAPIKeyRequest{KeyName: DefaultKeyName})
	if err != nil {
		return fmt.Errorf("failed to create default API key: %w", err)
	}

	// Logged once so a fresh install has a usable credential.
	s.log.WithField("key_id", created.ID).Infof("Default API key created successfully. Key: %s", created.Key)
	return nil
}

func generateSecret() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
