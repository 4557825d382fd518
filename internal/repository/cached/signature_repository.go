package cached

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/fleettrack/fleettrack/internal/pkg/redis"
	"github.com/fleettrack/fleettrack/internal/repository"
	"github.com/google/uuid"
)

const (
	signatureCachePrefix = "signature:"
	signatureCacheTTL    = 1 * time.Hour
)

// SignatureRepository добавляет кэширование к signature repository.
// Подпись читается при каждой печати документов и меняется редко -
// удачный кандидат на кэш.
type SignatureRepository struct {
	repo  repository.SignatureRepository
	cache *redis.Client
}

// NewSignatureRepository создает новый кэшируемый signature repository
func NewSignatureRepository(repo repository.SignatureRepository, cache *redis.Client) *SignatureRepository {
	return &SignatureRepository{
		repo:  repo,
		cache: cache,
	}
}

// GetByOwnerID возвращает подпись пользователя (с кэшированием)
func (r *SignatureRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Signature, error) {
	cacheKey := signatureCachePrefix + ownerID.String()

	// 1. Проверяем кэш. Любая ошибка кэша (промах или недоступный
	// Redis) не фатальна - продолжаем работу с БД
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		signature := &domain.Signature{}
		if jsonErr := json.Unmarshal([]byte(cached), signature); jsonErr == nil {
			return signature, nil
		}
		// Битое значение в кэше - выбрасываем и идем в БД
		_ = r.cache.Del(ctx, cacheKey)
	}

	// 2. Cache miss - идем в БД
	signature, err := r.repo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// 3. Сохраняем результат в кэш (ошибка записи не критична)
	if data, jsonErr := json.Marshal(signature); jsonErr == nil {
		_ = r.cache.Set(ctx, cacheKey, data, signatureCacheTTL)
	}

	return signature, nil
}

// Upsert сохраняет подпись и инвалидирует кэш
func (r *SignatureRepository) Upsert(ctx context.Context, signature *domain.Signature) error {
	if err := r.repo.Upsert(ctx, signature); err != nil {
		return err
	}

	_ = r.cache.Del(ctx, signatureCachePrefix+signature.OwnerID.String())

	return nil
}

// DeleteByOwnerID удаляет подпись и инвалидирует кэш
func (r *SignatureRepository) DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error {
	if err := r.repo.DeleteByOwnerID(ctx, ownerID); err != nil {
		return err
	}

	_ = r.cache.Del(ctx, signatureCachePrefix+ownerID.String())

	return nil
}
