package service

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"sahaayak/internal/chat"
	"sahaayak/internal/oracle"
	"sahaayak/internal/safety"
	"sahaayak/internal/store"
)

var (
	ErrMessageEmpty      = errors.New("message text is required")
	ErrTitleRequired     = errors.New("title is required")
	ErrContentRequired   = errors.New("content is required")
	ErrUnknownStreak     = errors.New("unknown streak type")
	ErrUnknownJourney    = errors.New("unknown journey")
	ErrJourneyNotStarted = errors.New("journey not started")
	ErrUnknownTask       = errors.New("task not found in current day")
	ErrIntentionNotFound = errors.New("intention not found")
	ErrPostNotFound      = errors.New("post not found")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrContactNotFound   = errors.New("contact not found")
	ErrContentBlocked    = errors.New("content blocked")
)

const dateLayout = "2006-01-02"

type Service struct {
	store        store.Store
	oracle       *oracle.Client
	classifier   *safety.Classifier
	moderator    *safety.Moderator
	orchestrator *chat.Orchestrator
	logger       *zap.Logger
}

func New(st store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		store:  st,
		logger: logger,
	}
	s.buildEngines(nil)
	return s
}

// SetOracleClient wires the language-model client into every engine. Passing
// nil reverts all of them to their deterministic local fallbacks.
func (s *Service) SetOracleClient(client *oracle.Client) {
	s.oracle = client
	s.buildEngines(client)
}

func (s *Service) buildEngines(client *oracle.Client) {
	s.classifier = safety.NewClassifier(client, s.logger)
	s.moderator = safety.NewModerator(client, s.logger)
	selector := chat.NewSelector(client, s.logger)
	s.orchestrator = chat.NewOrchestrator(s.classifier, selector, client, s.logger)
}

func today() string {
	return time.Now().Format(dateLayout)
}

// dayDiff returns the whole-day difference between two YYYY-MM-DD dates,
// positive when b is after a. A parse failure on either side returns ok=false.
func dayDiff(a, b string) (int, bool) {
	ta, err := time.Parse(dateLayout, a)
	if err != nil {
		return 0, false
	}
	tb, err := time.Parse(dateLayout, b)
	if err != nil {
		return 0, false
	}
	return int(tb.Sub(ta).Hours() / 24), true
}
