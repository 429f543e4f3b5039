// SPDX-License-Identifier: MIT

package window

import (
	"fmt"
	"runtime"
	"slices"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pppaal/saju-astro-chat-sub036/calendar"
	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
	"github.com/pppaal/saju-astro-chat-sub036/profile"
)

// Limits on the result.
const (
	MaxBestDays = 3
	MaxReasons  = 5
)

// PriorityReasons are surfaced ahead of other factor keys, in this order.
var PriorityReasons = []string{
	profile.FactorNobility,
	profile.FactorYongsin,
	profile.FactorThreeCombination,
	profile.FactorSixCombination,
	"건록",
}

// bestDayWeights weight the top days in the period score.
var bestDayWeights = [MaxBestDays]float64{0.5, 0.3, 0.2}

// AstrologyBonus supplies an extra score for a date from an astrology chart
// computed elsewhere. The chart value is opaque to this package.
type AstrologyBonus interface {
	Bonus(chart any, date time.Time, event EventType) float64
}

// AstrologyBonusFunc adapts a function to AstrologyBonus.
type AstrologyBonusFunc func(chart any, date time.Time, event EventType) float64

// Bonus implements AstrologyBonus.
func (f AstrologyBonusFunc) Bonus(chart any, date time.Time, event EventType) float64 {
	return f(chart, date, event)
}

// Subject is the person a window is scored for. Chart is the optional
// astrology chart handed to the scorer's AstrologyBonus; nil omits the bonus.
type Subject struct {
	Profile profile.Profile
	Chart   any
}

// DayScore is the breakdown of one scored day.
type DayScore struct {
	Date     time.Time      `json:"date"`
	Pillar   lexicon.Pillar `json:"pillar"`
	Score    int            `json:"score"`
	Reasons  []string       `json:"reasons"`
	Analysis profile.Result `json:"analysis"`
	Bonus    float64        `json:"astrology_bonus,omitempty"`
}

// PeriodScore is the result of scoring a date range. Days lists every day
// in calendar order.
type PeriodScore struct {
	Score        int         `json:"score"`
	Reasons      []string    `json:"reasons"`
	BestDays     []time.Time `json:"best_days"`
	BestDay      time.Time   `json:"best_day"`
	BestDayScore int         `json:"best_day_score"`
	Days         []DayScore  `json:"days,omitempty"`
}

// Options configures a Scorer.
type Options struct {
	// Calendar supplies day and month pillars. Default calendar.Solar.
	Calendar calendar.Calendar
	// Astrology adds a bonus for subjects with a chart. Default nil.
	Astrology AstrologyBonus
	// Parallelism bounds concurrent day computations. Default GOMAXPROCS.
	Parallelism int
	// CacheSize is the number of per-day analyses kept; 0 disables the cache.
	CacheSize int
	// Metrics records Prometheus metrics when non-nil.
	Metrics *Metrics
	// Logger receives debug output. Default zap.NewNop.
	Logger *zap.Logger
}

// DefaultCacheSize holds roughly three years of days for one profile.
const DefaultCacheSize = 1024

// DefaultOptions returns the solar calendar, no astrology, GOMAXPROCS
// workers, a DefaultCacheSize cache, no metrics and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Calendar:    calendar.Solar{},
		Parallelism: runtime.GOMAXPROCS(0),
		CacheSize:   DefaultCacheSize,
		Logger:      zap.NewNop(),
	}
}

// Option mutates Options.
type Option func(*Options)

// WithCalendar replaces the pillar calendar. Panics on nil.
func WithCalendar(c calendar.Calendar) Option {
	if c == nil {
		panic("window: WithCalendar(nil)")
	}
	return func(o *Options) { o.Calendar = c }
}

// WithAstrology installs an astrology bonus source.
func WithAstrology(a AstrologyBonus) Option {
	return func(o *Options) { o.Astrology = a }
}

// WithParallelism bounds concurrent day computations. Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("window: WithParallelism(%d): need at least 1", n))
	}
	return func(o *Options) { o.Parallelism = n }
}

// WithCacheSize sets the per-day analysis cache size; 0 disables it.
// Panics if n < 0.
func WithCacheSize(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("window: WithCacheSize(%d): negative size", n))
	}
	return func(o *Options) { o.CacheSize = n }
}

// WithMetrics records to m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithLogger sets the debug logger; nil means no-op.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// Scorer ranks the days of a range. It is safe for concurrent use.
type Scorer struct {
	cal         calendar.Calendar
	astro       AstrologyBonus
	parallelism int
	cache       *lru.Cache[string, profile.Result]
	metrics     *Metrics
	log         *zap.Logger
}

// NewScorer builds a Scorer from DefaultOptions and opts.
func NewScorer(opts ...Option) *Scorer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Scorer{
		cal:         o.Calendar,
		astro:       o.Astrology,
		parallelism: max(o.Parallelism, 1),
		metrics:     o.Metrics,
		log:         o.Logger,
	}
	if o.CacheSize > 0 {
		// lru.New fails only for a non-positive size.
		s.cache, _ = lru.New[string, profile.Result](o.CacheSize)
	}
	return s
}

var defaultScorer = NewScorer()

// ScoreWindow scores [start, end] with a shared default Scorer.
func ScoreWindow(subject Subject, start, end time.Time, event EventType, cond Conditions) (PeriodScore, error) {
	return defaultScorer.Score(subject, start, end, event, cond)
}

// Score scores every calendar day from start to end inclusive, read in
// start's location. It returns ErrInvertedRange when end is on an earlier
// day and panics when cond has no positive weight.
func (s *Scorer) Score(subject Subject, start, end time.Time, event EventType, cond Conditions) (PeriodScore, error) {
	if cond.Empty() {
		panic("window: Score called with empty conditions")
	}
	began := time.Now()
	end = end.In(start.Location())
	n := calendar.DaysBetween(start, end) + 1
	if n < 1 {
		return PeriodScore{}, fmt.Errorf("%s .. %s: %w",
			start.Format(time.DateOnly), end.Format(time.DateOnly), ErrInvertedRange)
	}

	y, m, d := start.Date()
	loc := start.Location()
	fp := fingerprint(subject.Profile)
	days := make([]DayScore, n)

	var g errgroup.Group
	g.SetLimit(s.parallelism)
	for i := range days {
		g.Go(func() error {
			date := time.Date(y, m, d+i, 0, 0, 0, 0, loc)
			days[i] = s.scoreDay(subject, fp, date, event, cond)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return PeriodScore{}, err
	}

	out := summarize(days)
	elapsed := time.Since(began)
	s.metrics.observeWindow(event, n, elapsed)
	s.log.Debug("scored window",
		zap.Stringer("event", event),
		zap.String("start", start.Format(time.DateOnly)),
		zap.Int("days", n),
		zap.Int("score", out.Score),
		zap.Duration("elapsed", elapsed),
	)
	return out, nil
}

func (s *Scorer) scoreDay(subject Subject, fp string, date time.Time, event EventType, cond Conditions) DayScore {
	p := subject.Profile
	day := s.cal.DayPillar(date)
	r := s.analyze(p, fp, date, day)

	deltas := eventDeltas(cond, p, day)
	var bonus float64
	if s.astro != nil && subject.Chart != nil {
		bonus = s.astro.Bonus(subject.Chart, date, event)
	}
	return DayScore{
		Date:     date,
		Pillar:   day,
		Score:    blend(cond, r, deltas, bonus),
		Reasons:  dayReasons(cond, r, deltas),
		Analysis: r,
		Bonus:    bonus,
	}
}

// analyze runs profile.Analyze through the cache. Results do not depend on
// the event, so one entry serves every event type. Callers get their own
// copy of the factor keys.
func (s *Scorer) analyze(p profile.Profile, fp string, date time.Time, day lexicon.Pillar) profile.Result {
	key := fp + "@" + date.Format(time.DateOnly)
	if s.cache != nil {
		if r, ok := s.cache.Get(key); ok {
			s.metrics.cacheLookup(true)
			return r.Clone()
		}
		s.metrics.cacheLookup(false)
	}
	month := s.cal.MonthPillar(date)
	r := profile.Analyze(profile.Input{
		Profile:     p,
		Day:         day,
		Month:       &month,
		TargetYear:  calendar.SajuYear(date),
		TargetMonth: date.Month(),
		Date:        date,
	})
	if s.cache != nil {
		s.cache.Add(key, r.Clone())
	}
	return r
}

// fingerprint identifies a profile for cache keys.
func fingerprint(p profile.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d/%d/%d/%d/%v/%v", p.DayMaster, p.DayBranch, p.BirthYear, p.Geokguk, p.Yongsin, p.Kisin)
	for _, c := range p.Daeun {
		fmt.Fprintf(&b, "/%d%d:%d-%d:%d", c.Stem, c.Branch, c.StartAge, c.EndAge, c.Element)
	}
	return b.String()
}

// summarize ranks the days and reduces the top ones to a PeriodScore.
func summarize(days []DayScore) PeriodScore {
	ranked := slices.Clone(days)
	slices.SortStableFunc(ranked, func(a, b DayScore) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return a.Date.Compare(b.Date)
	})
	top := ranked[:min(MaxBestDays, len(ranked))]

	var sum, total float64
	best := make([]time.Time, len(top))
	for i, d := range top {
		best[i] = d.Date
		sum += bestDayWeights[i] * float64(d.Score)
		total += bestDayWeights[i]
	}
	return PeriodScore{
		Score:        profile.Clamp(int(sum/total + 0.5)),
		Reasons:      periodReasons(top),
		BestDays:     best,
		BestDay:      top[0].Date,
		BestDayScore: top[0].Score,
		Days:         days,
	}
}

// periodReasons merges the top days' reasons, priority terms first.
func periodReasons(top []DayScore) []string {
	var merged []string
	for _, d := range top {
		for _, r := range d.Reasons {
			if !slices.Contains(merged, r) {
				merged = append(merged, r)
			}
		}
	}
	out := make([]string, 0, MaxReasons)
	for _, p := range PriorityReasons {
		if slices.Contains(merged, p) {
			out = append(out, p)
		}
	}
	for _, r := range merged {
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	if len(out) > MaxReasons {
		out = out[:MaxReasons]
	}
	return out
}
