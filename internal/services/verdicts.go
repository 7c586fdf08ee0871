package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clarifai/internal/classifier"
	"clarifai/internal/factcheck"
	"clarifai/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

var (
	// ErrEmptyContent rejects claims that are empty after trimming,
	// before any I/O happens.
	ErrEmptyContent = errors.New("content is required")

	// ErrStorage reports that the verdict store could not be reached.
	// The caller must not fall back to reclassification, that would
	// defeat the dedup guarantee.
	ErrStorage = errors.New("verdict store unavailable")
)

// Where a resolved verdict came from.
const (
	OriginDatabase = "database"
	OriginModel    = "model"
)

// Resolution is the outcome of resolving one claim.
type Resolution struct {
	Content string `json:"content"`
	Verdict string `json:"verdict"`
	Source  string `json:"source"`
}

// VerdictService resolves claim text to a cached or freshly classified
// verdict. Uniqueness is enforced by the content_key index, not here:
// concurrent resolvers racing on the same key both insert, the database
// keeps one row, and the loser re-reads the winner's verdict. Within this
// process a singleflight group additionally collapses concurrent misses for
// the same key into a single classifier call.
type VerdictService struct {
	db         *gorm.DB
	classifier classifier.Classifier
	timeout    time.Duration
	group      singleflight.Group
}

// NewVerdictService creates a new verdict service
func NewVerdictService(db *gorm.DB, clf classifier.Classifier) *VerdictService {
	return &VerdictService{
		db:         db,
		classifier: clf,
		timeout:    30 * time.Second,
	}
}

// Get looks up the stored verdict for an already-normalized key. A missing
// row is (nil, nil), not an error.
func (s *VerdictService) Get(key string) (*models.FactCheck, error) {
	var fc models.FactCheck
	err := s.db.Where("content_key = ?", key).First(&fc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &fc, nil
}

// Put inserts a verdict for the claim. created is false when another caller
// already stored a verdict for the same normalized key; that is a normal
// outcome, not an error.
func (s *VerdictService) Put(content, verdict string) (created bool, err error) {
	fc := models.FactCheck{
		ID:            uuid.New(),
		ContentKey:    models.NormalizeKey(content),
		Content:       strings.TrimSpace(content),
		Verdict:       verdict,
		SeverityScore: factcheck.AssignSeverity(content),
	}
	if _, matched, ok := factcheck.MatchSeverity(content); ok {
		fc.MatchedKeywords = matched
	}

	err = s.db.Create(&fc).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return true, nil
}

// Resolve returns the verdict for the claim, from the store when one exists
// and from the classifier otherwise. For any normalized key the classifier
// runs at most once and exactly one row exists afterward; every caller sees
// the same verdict.
func (s *VerdictService) Resolve(ctx context.Context, text string) (*Resolution, error) {
	key := models.NormalizeKey(text)
	if key == "" {
		return nil, ErrEmptyContent
	}

	existing, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &Resolution{
			Content: existing.Content,
			Verdict: existing.Verdict,
			Source:  OriginDatabase,
		}, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.classifyAndStore(ctx, key, text)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Resolution), nil
}

func (s *VerdictService) classifyAndStore(ctx context.Context, key, text string) (*Resolution, error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	pred, err := s.classifier.Classify(cctx, strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}

	verdict := models.VerdictGenuine
	if pred.Label == classifier.LabelFake {
		verdict = models.VerdictFake
	}

	created, err := s.Put(text, verdict)
	if err != nil {
		return nil, err
	}
	if !created {
		// Lost the insert race to a resolver in another process; the
		// winner's row is authoritative.
		winner, err := s.Get(key)
		if err != nil {
			return nil, err
		}
		if winner == nil {
			return nil, fmt.Errorf("%w: verdict vanished after duplicate insert", ErrStorage)
		}
		return &Resolution{
			Content: winner.Content,
			Verdict: winner.Verdict,
			Source:  OriginDatabase,
		}, nil
	}

	return &Resolution{
		Content: strings.TrimSpace(text),
		Verdict: verdict,
		Source:  OriginModel,
	}, nil
}
