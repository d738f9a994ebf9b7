package vote

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/duelboard/duelboard/internal/config"
	"github.com/duelboard/duelboard/internal/domain/tracing"
	"github.com/duelboard/duelboard/internal/domain/vote"
)

// ArchiveJob runs the vote event archiver on a fixed interval via the
// standard robfig/cron. Overlapping runs are delayed, not stacked, so a
// slow archive pass never races against the next one.
type ArchiveJob struct {
	cron     *cron.Cron
	archiver vote.Archiver
	settings config.VotesArchive
	tracer   tracing.Tracer

	getUTC func() time.Time
}

func NewArchiveJob(archiver vote.Archiver, settings config.VotesArchive, tracer tracing.Tracer) *ArchiveJob {
	return &ArchiveJob{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		archiver: archiver,
		settings: settings,
		tracer:   tracer,
		getUTC: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// For testing
func (j *ArchiveJob) SetUTCGetter(getter func() time.Time) {
	j.getUTC = getter
}

func (j *ArchiveJob) Start() error {
	job := cron.NewChain(
		cron.Recover(zeroLogCronLogger{}),
		cron.DelayIfStillRunning(zeroLogCronLogger{}),
	).Then(cron.FuncJob(j.runOnce))

	j.cron.Schedule(cron.Every(j.settings.RunInterval), job)
	j.cron.Start()
	log.Info().
		Dur("run_interval", j.settings.RunInterval).
		Dur("archive_after", j.settings.ArchiveAfter).
		Msg("Vote event archiving scheduled")
	return nil
}

func (j *ArchiveJob) Stop() {
	j.cron.Stop()
}

func (j *ArchiveJob) runOnce() {
	tx := j.tracer.BackgroundTx("vote-events-archive")
	ctx := tx.Context()
	defer tx.End()

	cutoff := j.getUTC().Add(-j.settings.ArchiveAfter)
	if err := j.archiver.ArchiveOldEvents(ctx, cutoff, j.settings.ScrollSize, j.settings.ScrollTtl); err != nil {
		log.Error().
			Err(err).
			Time("created_before", cutoff).
			Msg("Vote event archiving run failed")
	}
}

type zeroLogCronLogger struct {
}

func (z zeroLogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	if log.Info().Enabled() {
		log.Info().Fields(asFieldsMap(keysAndValues)).Msg(msg)
	}
}

func (z zeroLogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	if log.Error().Enabled() {
		log.Error().Err(err).Fields(asFieldsMap(keysAndValues)).Msg(msg)
	}
}

// asFieldsMap turns cron's even-odd key-value pair slice into a map,
// formatting time.Time values as RFC3339
func asFieldsMap(keysAndValues []interface{}) map[string]interface{} {
	formattedArgs := make(map[string]interface{}, len(keysAndValues)/2)
	for idx := 0; idx < len(keysAndValues); idx += 2 {
		var key string
		if s, ok := keysAndValues[idx].(string); ok {
			key = s
		} else {
			key = fmt.Sprint(keysAndValues[idx])
		}
		valueIdx := idx + 1
		if len(keysAndValues) > valueIdx {
			value := keysAndValues[valueIdx]
			if t, ok := value.(time.Time); ok {
				value = t.Format(time.RFC3339)
			}
			formattedArgs[key] = value
		}
	}
	return formattedArgs
}
