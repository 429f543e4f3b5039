// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pppaal/saju-astro-chat-sub036/calendar"
	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
	"github.com/pppaal/saju-astro-chat-sub036/profile"
	"github.com/pppaal/saju-astro-chat-sub036/relations"
	"github.com/pppaal/saju-astro-chat-sub036/window"
)

// timeLayouts are tried in order for --birth, --date, --from and --to.
var timeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

func parseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q (want YYYY-MM-DD[ HH:MM])", s)
}

// birthFlags are shared by every command that works from a birth moment.
type birthFlags struct {
	birth  string
	gender string
}

func (f *birthFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.birth, "birth", "", "birth time, YYYY-MM-DD HH:MM (required)")
	cmd.Flags().StringVar(&f.gender, "gender", "", "male or female (required)")
	_ = cmd.MarkFlagRequired("birth")
	_ = cmd.MarkFlagRequired("gender")
}

// natal is a resolved birth: its chart and derived profile.
type natal struct {
	birth   time.Time
	chart   lexicon.FourPillars
	profile profile.Profile
}

func (f *birthFlags) resolve(loc *time.Location) (natal, error) {
	birth, err := parseTime(f.birth, loc)
	if err != nil {
		return natal{}, err
	}
	g, err := profile.ParseGender(f.gender)
	if err != nil {
		return natal{}, err
	}
	chart := calendar.Chart(birth)
	p, err := profile.Derive(chart, birth, g)
	if err != nil {
		return natal{}, err
	}
	return natal{birth: birth, chart: chart, profile: p}, nil
}

// chartView renders four pillars as "year month day time" plus the parts.
type chartView struct {
	Text  string         `json:"text"`
	Year  lexicon.Pillar `json:"year"`
	Month lexicon.Pillar `json:"month"`
	Day   lexicon.Pillar `json:"day"`
	Time  lexicon.Pillar `json:"time"`
}

func viewChart(fp lexicon.FourPillars) chartView {
	return chartView{
		Text:  fmt.Sprintf("%s %s %s %s", fp.Year, fp.Month, fp.Day, fp.Time),
		Year:  fp.Year,
		Month: fp.Month,
		Day:   fp.Day,
		Time:  fp.Time,
	}
}

func newRelationsCmd(a *app) *cobra.Command {
	var heavenly, earthly, void bool
	cmd := &cobra.Command{
		Use:   "relations <year> <month> <day> <time>",
		Short: "List the stem and branch interactions of a chart",
		Long: `Pillars are given as four stem-branch pairs in Hanja or Hangul, either as
four arguments or one quoted string:

  saju relations 甲子 乙丑 丙寅 丁卯
  saju relations "갑자 을축 병인 정묘" --clash-mode 5 --gongmang both`,
		Args: cobra.RangeArgs(1, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := lexicon.ParseFourPillars(strings.Join(args, " "))
			if err != nil {
				return err
			}
			opts, err := a.cfg.RelationOptions()
			if err != nil {
				return err
			}
			opts = append(opts,
				relations.WithHeavenly(heavenly),
				relations.WithEarthly(earthly),
				relations.WithGongmang(void),
			)
			hits := relations.Analyze(fp, opts...)
			a.logger.Debug("analyzed chart", zap.Int("hits", len(hits)))
			return writeJSON(cmd.OutOrStdout(), struct {
				Chart  chartView              `json:"chart"`
				Hits   []relations.Hit        `json:"hits"`
				Counts map[relations.Kind]int `json:"counts"`
			}{viewChart(fp), hits, relations.Counts(hits)})
		},
	}
	f := cmd.Flags()
	f.BoolVar(&heavenly, "heavenly", true, "report stem combinations and clashes")
	f.BoolVar(&earthly, "earthly", true, "report branch interactions")
	f.BoolVar(&void, "void", true, "report void (공망) branches")
	f.String("clash-mode", relations.DefaultHeavenlyClashMode.String(), "heavenly clash table, 4 or 5")
	f.String("gongmang", relations.DefaultGongmangPolicy.String(), "void basis: day, year or both")
	f.Bool("self-punish", relations.DefaultIncludeSelfPunish, "report 자형 for repeated 辰午酉亥")
	f.Bool("transform-note", relations.DefaultIncludeHeavenlyTransformNote, "annotate heavenly combinations with their element")
	_ = a.v.BindPFlag("relations.clash_mode", f.Lookup("clash-mode"))
	_ = a.v.BindPFlag("relations.gongmang", f.Lookup("gongmang"))
	_ = a.v.BindPFlag("relations.self_punish", f.Lookup("self-punish"))
	_ = a.v.BindPFlag("relations.transform_note", f.Lookup("transform-note"))
	return cmd
}

func newChartCmd(a *app) *cobra.Command {
	var bf birthFlags
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Compute a birth chart and derive its profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := bf.resolve(a.loc)
			if err != nil {
				return err
			}
			opts, err := a.cfg.RelationOptions()
			if err != nil {
				return err
			}
			bal := profile.ElementBalance(n.chart)
			weights := make(map[lexicon.Element]float64, lexicon.NumElements)
			for e, w := range bal.Weights {
				weights[lexicon.Element(e)] = w
			}
			stars := make([]string, 0)
			for _, s := range lexicon.SpecialStars(n.chart) {
				stars = append(stars, fmt.Sprintf("%s %s@%s", s.Name, s.Branch, s.Position))
			}
			return writeJSON(cmd.OutOrStdout(), struct {
				Chart     chartView                   `json:"chart"`
				Profile   profile.Profile             `json:"profile"`
				Balance   map[lexicon.Element]float64 `json:"balance"`
				Strong    bool                        `json:"strong"`
				Stars     []string                    `json:"stars"`
				Relations []relations.Hit             `json:"relations"`
			}{
				Chart:     viewChart(n.chart),
				Profile:   n.profile,
				Balance:   weights,
				Strong:    bal.Strong(),
				Stars:     stars,
				Relations: relations.Analyze(n.chart, opts...),
			})
		},
	}
	bf.register(cmd)
	return cmd
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		bf   birthFlags
		date string
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score one date on the six horizons",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := bf.resolve(a.loc)
			if err != nil {
				return err
			}
			d, err := parseTime(date, a.loc)
			if err != nil {
				return err
			}
			month := calendar.MonthPillar(d)
			r := profile.Analyze(profile.Input{
				Profile:     n.profile,
				Day:         calendar.DayPillar(d),
				Month:       &month,
				TargetYear:  calendar.SajuYear(d),
				TargetMonth: d.Month(),
				Date:        d,
			})
			return writeJSON(cmd.OutOrStdout(), r)
		},
	}
	bf.register(cmd)
	cmd.Flags().StringVar(&date, "date", "", "date to score, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newWindowCmd(a *app) *cobra.Command {
	var (
		bf       birthFlags
		event    string
		from, to string
		days     bool
	)
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Rank the days of a date range for an event",
		Long: `Scores every day from --from to --to inclusive for the event and reports the
period score with its best days. Event conditions can be overridden with a
YAML file (window.conditions_file):

  saju window --birth "1990-05-17 14:30" --gender f --event marriage \
    --from 2026-10-01 --to 2026-10-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := bf.resolve(a.loc)
			if err != nil {
				return err
			}
			e, err := window.ParseEventType(event)
			if err != nil {
				return err
			}
			start, err := parseTime(from, a.loc)
			if err != nil {
				return err
			}
			end, err := parseTime(to, a.loc)
			if err != nil {
				return err
			}
			table, err := a.cfg.Conditions()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			opts := append(a.cfg.WindowOptions(),
				window.WithLogger(a.logger),
				window.WithMetrics(window.MustNewMetrics(reg)),
			)
			out, err := window.NewScorer(opts...).
				Score(window.Subject{Profile: n.profile}, start, end, e, table.For(e))
			if err != nil {
				return err
			}
			logMetrics(a.logger, reg)
			if !days {
				out.Days = nil
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	bf.register(cmd)
	f := cmd.Flags()
	f.StringVar(&event, "event", "", "event type, see 'saju events' (required)")
	f.StringVar(&from, "from", "", "first day, YYYY-MM-DD (required)")
	f.StringVar(&to, "to", "", "last day, YYYY-MM-DD (required)")
	f.BoolVar(&days, "days", false, "include every day's breakdown")
	f.Int("parallelism", 0, "concurrent day computations (0: GOMAXPROCS)")
	f.String("conditions", "", "YAML file overriding the event conditions")
	for _, name := range []string{"event", "from", "to"} {
		_ = cmd.MarkFlagRequired(name)
	}
	_ = a.v.BindPFlag("window.parallelism", f.Lookup("parallelism"))
	_ = a.v.BindPFlag("window.conditions_file", f.Lookup("conditions"))
	return cmd
}

// logMetrics writes the gathered scorer metrics at debug level.
func logMetrics(logger *zap.Logger, g prometheus.Gatherer) {
	if !logger.Core().Enabled(zap.DebugLevel) {
		return
	}
	families, err := g.Gather()
	if err != nil {
		logger.Warn("gather metrics", zap.Error(err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				v = m.GetHistogram().GetSampleSum()
			}
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			logger.Debug("metric",
				zap.String("name", mf.GetName()),
				zap.Strings("labels", labels),
				zap.Float64("value", v),
			)
		}
	}
}

func newEventsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List the event types and their effective conditions",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.cfg.Conditions()
			if err != nil {
				return err
			}
			type eventView struct {
				Event     window.EventType        `json:"event"`
				Weights   map[string]float64      `json:"weights"`
				Elements  map[lexicon.Element]int `json:"elements,omitempty"`
				Sibsin    map[lexicon.Sibsin]int  `json:"sibsin,omitempty"`
				Relations map[string]int          `json:"relations,omitempty"`
				Stars     map[string]int          `json:"stars,omitempty"`
			}
			views := make([]eventView, 0, window.NumEvents)
			for _, e := range window.Events() {
				c := table.For(e)
				v := eventView{
					Event:    e,
					Weights:  make(map[string]float64, profile.NumHorizons),
					Elements: c.Elements,
					Sibsin:   c.Sibsin,
					Stars:    c.Stars,
				}
				for h, w := range c.Weights {
					if w > 0 {
						v.Weights[profile.Horizon(h).String()] = w
					}
				}
				if len(c.Relations) > 0 {
					v.Relations = make(map[string]int, len(c.Relations))
					for k, d := range c.Relations {
						v.Relations[k.String()] = d
					}
				}
				views = append(views, v)
			}
			return writeJSON(cmd.OutOrStdout(), views)
		},
	}
}
