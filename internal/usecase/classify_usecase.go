package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/gcaponi/S4all-BOT/internal/domain/entity"
	"github.com/gcaponi/S4all-BOT/internal/domain/repository"
	"github.com/gcaponi/S4all-BOT/internal/domain/service"
	"github.com/gcaponi/S4all-BOT/internal/infrastructure/cache"
	"github.com/gcaponi/S4all-BOT/internal/infrastructure/metrics"
)

// Error definitions for the classify usecase
var (
	ErrMessageTooLong        = errors.New("message exceeds maximum length")
	ErrVocabularyUnavailable = errors.New("vocabulary source unavailable")
)

// MaxMessageLength bounds accepted messages; classification cost is linear
// in input size and chat transports cap far below this anyway
const MaxMessageLength = 4096

// ClassifyInput represents the input for classifying a message
type ClassifyInput struct {
	Message string `json:"message"`
}

// ClassifyOutput represents the classification of one message
type ClassifyOutput struct {
	Intent         string   `json:"intent"`
	Confidence     float64  `json:"confidence"`
	Reason         string   `json:"reason"`
	MatchedSignals []string `json:"matched_signals"`
	Cached         bool     `json:"cached"`
}

// VocabularyOutput reports the loaded reference vocabulary
type VocabularyOutput struct {
	Counts     map[string]int `json:"counts"`
	ReloadedAt string         `json:"reloaded_at,omitempty"`
}

// ClassifyUsecase defines the interface for classification business logic
type ClassifyUsecase interface {
	Classify(ctx context.Context, input *ClassifyInput) (*ClassifyOutput, error)
	ReloadVocabulary(ctx context.Context) (*VocabularyOutput, error)
	VocabularyInfo(ctx context.Context) (*VocabularyOutput, error)
}

type classifyUsecase struct {
	classifier service.IntentClassifier
	vocabRepo  repository.VocabularyRepository
	results    *cache.ResultCache
	log        *zap.Logger

	// generation invalidates cached results across vocabulary reloads
	generation atomic.Int64
	reloadedAt atomic.Pointer[time.Time]
}

// NewClassifyUsecase creates a new classify usecase. The result cache is
// optional; pass nil to classify without caching.
func NewClassifyUsecase(
	classifier service.IntentClassifier,
	vocabRepo repository.VocabularyRepository,
	results *cache.ResultCache,
	log *zap.Logger,
) ClassifyUsecase {
	return &classifyUsecase{
		classifier: classifier,
		vocabRepo:  vocabRepo,
		results:    results,
		log:        log,
	}
}

func (u *classifyUsecase) Classify(ctx context.Context, input *ClassifyInput) (*ClassifyOutput, error) {
	if len(input.Message) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	generation := u.generation.Load()
	if u.results != nil {
		if result, ok := u.results.Get(ctx, generation, input.Message); ok {
			metrics.CacheHitsTotal.WithLabelValues("hit").Inc()
			return toClassifyOutput(result, true), nil
		}
		metrics.CacheHitsTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	result := u.classifier.Classify(input.Message)
	elapsed := time.Since(start)

	metrics.ClassificationsTotal.WithLabelValues(string(result.Intent)).Inc()
	metrics.ClassificationSeconds.Observe(elapsed.Seconds())

	u.log.Debug("classified message",
		zap.String("intent", string(result.Intent)),
		zap.Float64("confidence", result.Confidence),
		zap.String("reason", result.Reason),
		zap.Strings("signals", result.MatchedSignals),
		zap.Duration("elapsed", elapsed),
	)

	if u.results != nil {
		u.results.Set(ctx, generation, input.Message, result)
	}

	return toClassifyOutput(result, false), nil
}

func (u *classifyUsecase) ReloadVocabulary(ctx context.Context) (*VocabularyOutput, error) {
	refs, err := u.vocabRepo.LoadReferenceSets(ctx)
	if err != nil {
		metrics.VocabularyReloadsTotal.WithLabelValues("error").Inc()
		u.log.Error("vocabulary load failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrVocabularyUnavailable, err)
	}

	if err := u.classifier.Reload(refs); err != nil {
		metrics.VocabularyReloadsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	metrics.VocabularyReloadsTotal.WithLabelValues("ok").Inc()
	u.generation.Add(1)
	now := time.Now().UTC()
	u.reloadedAt.Store(&now)

	counts := u.classifier.ReferenceCounts()
	u.log.Info("vocabulary reloaded", zap.Any("counts", counts))

	return u.vocabularyOutput(counts), nil
}

func (u *classifyUsecase) VocabularyInfo(_ context.Context) (*VocabularyOutput, error) {
	return u.vocabularyOutput(u.classifier.ReferenceCounts()), nil
}

func (u *classifyUsecase) vocabularyOutput(counts map[string]int) *VocabularyOutput {
	out := &VocabularyOutput{Counts: counts}
	if ts := u.reloadedAt.Load(); ts != nil {
		out.ReloadedAt = ts.Format(time.RFC3339)
	}
	return out
}

func toClassifyOutput(r entity.ClassificationResult, cached bool) *ClassifyOutput {
	return &ClassifyOutput{
		Intent:         string(r.Intent),
		Confidence:     r.Confidence,
		Reason:         r.Reason,
		MatchedSignals: r.MatchedSignals,
		Cached:         cached,
	}
}
