package scraper

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/schedule"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/semester"
)

// Service is the single entry point for schedule queries: it fetches,
// extracts, caches and indexes timetable weeks.
type Service struct {
	client *Client
	cache  Cache
	logger *zap.Logger
	flight singleflight.Group
}

// Option customizes a Service.
type Option func(*Service)

// WithClient substitutes the HTTP client, e.g. one pointed at a test server.
func WithClient(c *Client) Option {
	return func(s *Service) { s.client = c }
}

// WithCache substitutes the week cache.
func WithCache(c Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithLogger attaches a logger; without one, degraded-extraction conditions
// go unlogged.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates a Service with the real endpoint and a non-expiring
// in-memory cache unless options say otherwise.
func NewService(opts ...Option) *Service {
	s := &Service{
		client: NewClient(),
		cache:  NewMemoryCache(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetWeek returns the timetable of one group for one week, fetching it at
// most once per (group, week) pair for the lifetime of the cache. Concurrent
// requests for the same uncached pair share a single in-flight fetch.
// Failed fetches are not cached.
func (s *Service) GetWeek(ctx context.Context, groupID, week int) (schedule.Week, error) {
	key := Key{GroupID: groupID, Week: week}
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	v, err, _ := s.flight.Do(key.String(), func() (interface{}, error) {
		if cached, ok := s.cache.Get(key); ok {
			return cached, nil
		}
		fetched, err := s.fetchWeek(ctx, groupID, week)
		if err != nil {
			return schedule.Week{}, err
		}
		s.cache.Set(key, fetched)
		return fetched, nil
	})
	if err != nil {
		return schedule.Week{}, err
	}
	return v.(schedule.Week), nil
}

func (s *Service) fetchWeek(ctx context.Context, groupID, week int) (schedule.Week, error) {
	resp, err := s.client.GetTimetable(ctx, groupID, week)
	if err != nil {
		return schedule.Week{}, err
	}
	defer resp.Body.Close()

	return ParseWeek(resp.Body, week, s.logger)
}

// GetDay answers "what is the schedule for this group on this date".
// Sundays short-circuit to an empty day without touching the network, since
// the timetable page only models Monday through Saturday. Extraction errors
// propagate to the caller untranslated.
func (s *Service) GetDay(ctx context.Context, groupID int, date time.Time) (schedule.Day, error) {
	if date.Weekday() == time.Sunday {
		return schedule.Day{Date: date}, nil
	}

	week, err := s.GetWeek(ctx, groupID, semester.WeekNumber(date))
	if err != nil {
		return schedule.Day{}, err
	}

	weekdayIndex := (int(date.Weekday()) + 6) % 7 // Monday=0 .. Saturday=5
	return week.Days[weekdayIndex], nil
}
