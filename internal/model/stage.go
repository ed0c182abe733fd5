package model

import (
	"time"

	"yourfuture/internal/serrors"
)

// Stage is a growth phase of a startup.
type Stage string

const (
	StageIdea        Stage = "idea"
	StageMVP         Stage = "mvp"
	StagePMF         Stage = "pmf"
	StageScaling     Stage = "scaling"
	StageEstablished Stage = "established"
)

// AllowedStages is ordered from earliest to latest.
var AllowedStages = []Stage{StageIdea, StageMVP, StagePMF, StageScaling, StageEstablished} //nolint: gochecknoglobals

const timelineDateLayout = "2006-01-02"

// StageOrder returns the rank of s in AllowedStages, or -1 if s is unknown.
func StageOrder(s Stage) int {
	for i, st := range AllowedStages {
		if st == s {
			return i
		}
	}

	return -1
}

// StageTimeline maps future stages to planned dates (YYYY-MM-DD) or nil.
// It never holds a key at or before the startup's current stage.
type StageTimeline map[Stage]*string

// SeedTimeline returns one undated entry per stage after current.
func SeedTimeline(current Stage) StageTimeline {
	order := StageOrder(current)
	tl := make(StageTimeline, len(AllowedStages))
	for i, st := range AllowedStages {
		if i > order {
			tl[st] = nil
		}
	}

	return tl
}

// ApplyTimelineEdits validates every edit against current and returns a new
// timeline with the edits applied. Values must be nil or a date string; each
// provided value replaces the previous one for its key. Nothing is applied
// if any edit is invalid.
func ApplyTimelineEdits(current Stage, timeline StageTimeline, edits map[string]any) (StageTimeline, error) {
	currentOrder := StageOrder(current)

	out := make(StageTimeline, len(timeline)+len(edits))
	for k, v := range timeline {
		out[k] = v
	}

	for key, raw := range edits {
		stage := Stage(key)
		order := StageOrder(stage)
		if order == -1 {
			return nil, serrors.New(serrors.ErrBadRequest, "unknown stage %q", key)
		}
		if order <= currentOrder {
			return nil, serrors.New(serrors.ErrBadRequest, "stage %q is not after the current stage %q", key, current)
		}

		switch v := raw.(type) {
		case nil:
			out[stage] = nil
		case string:
			if _, err := time.Parse(timelineDateLayout, v); err != nil {
				return nil, serrors.New(serrors.ErrBadRequest, "invalid date for stage %q, use YYYY-MM-DD", key)
			}
			date := v
			out[stage] = &date
		default:
			return nil, serrors.New(serrors.ErrBadRequest, "invalid date for stage %q, use YYYY-MM-DD", key)
		}
	}

	return out, nil
}
