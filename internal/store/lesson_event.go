package store

import (
	"context"
	"fmt"

	"github.com/abhisek/courseforge/ent"
	"github.com/abhisek/courseforge/ent/lessonrunevent"
)

func (r *eventRepo) AppendLessonRun(ctx context.Context, data LessonRunData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LessonRunEvent.Create().
		SetSequence(seqNum).
		SetTopic(data.Topic).
		SetSlug(data.Slug).
		SetDifficulty(data.Difficulty).
		SetOutputDir(data.OutputDir).
		SetModulesTotal(data.ModulesTotal).
		SetModulesSucceeded(data.ModulesSucceeded).
		SetQualityScore(data.QualityScore).
		SetPassed(data.Passed).
		SetAiCalls(data.AICalls).
		SetCacheHits(data.CacheHits).
		SetFallbackCalls(data.FallbackCalls).
		SetDurationMs(data.DurationMs).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson run event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListLessonRuns(ctx context.Context, opts QueryOpts) ([]LessonRunRecord, error) {
	q := r.client.LessonRunEvent.Query().
		Order(ent.Desc(lessonrunevent.FieldSequence))

	if opts.Slug != "" {
		q = q.Where(lessonrunevent.SlugEQ(opts.Slug))
	}
	if opts.After > 0 {
		q = q.Where(lessonrunevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(lessonrunevent.SequenceLT(opts.Before))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lesson run events: %w", err)
	}

	out := make([]LessonRunRecord, len(rows))
	for i, e := range rows {
		out[i] = entToLessonRecord(e)
	}
	return out, nil
}

func (r *eventRepo) GetLessonRun(ctx context.Context, id int) (*LessonRunRecord, error) {
	e, err := r.client.LessonRunEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lesson run event %d: %w", id, err)
	}
	rec := entToLessonRecord(e)
	return &rec, nil
}

func entToLessonRecord(e *ent.LessonRunEvent) LessonRunRecord {
	return LessonRunRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LessonRunData: LessonRunData{
			Topic:            e.Topic,
			Slug:             e.Slug,
			Difficulty:       e.Difficulty,
			OutputDir:        e.OutputDir,
			ModulesTotal:     e.ModulesTotal,
			ModulesSucceeded: e.ModulesSucceeded,
			QualityScore:     e.QualityScore,
			Passed:           e.Passed,
			AICalls:          e.AiCalls,
			CacheHits:        e.CacheHits,
			FallbackCalls:    e.FallbackCalls,
			DurationMs:       e.DurationMs,
			ErrorMessage:     e.ErrorMessage,
		},
	}
}
