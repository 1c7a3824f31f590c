package service

import (
	"context"
	"fmt"
	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/ledger/model/dto"
	"lodge/internal/domains/ledger/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const cacheGetLedger = "ledger:range"

type Ledger interface {
	GetRange(ctx context.Context, roomID string, from, to time.Time) (dto.GetLedgerResponse, error)
}

type serviceImpl struct {
	repo  repository.Ledger
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Ledger, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Ledger {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetRange(ctx context.Context, roomID string, from, to time.Time) (res dto.GetLedgerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.GetRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	if to.Before(from) {
		return res, failure.BadRequestFromString("from must not be after to") //nolint:wrapcheck
	}

	fromStr := timezone.Format(from, constant.CalendarFormat)
	toStr := timezone.Format(to, constant.CalendarFormat)
	cacheKey := shared.BuildCacheKey(cacheGetLedger, roomID, fromStr, toStr)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for revenue ledger")

		return res, nil
	}

	entries, err := s.repo.GetRange(ctx, roomID, from, to)
	if err != nil {
		log.Error().Err(err).Str("roomID", roomID).Msg("failed to get revenue ledger")

		return res, fmt.Errorf("failed to get revenue ledger: %w", err)
	}

	res.FromModels(roomID, fromStr, toStr, entries)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save revenue ledger to cache")
		}
	}()

	return res, nil
}
