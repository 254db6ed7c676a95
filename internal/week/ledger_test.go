package week_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tolgay/weekhours/internal/week"
)

// Wednesday of an arbitrary week.
var wednesday = time.Date(2026, time.August, 19, 9, 0, 0, 0, time.UTC)

func entriesTotal(l week.Ledger) int {
	sum := 0
	for _, e := range l.Entries {
		sum += e.TotalMinutes
		daySum := 0
		for _, s := range e.Sessions {
			daySum += s.DurationMinutes
		}
		if daySum != e.TotalMinutes {
			return -1
		}
	}
	return sum
}

func session(id string, start time.Time, minutes int) week.Session {
	return week.Session{
		ID:              id,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
	}
}

func TestRecordSessionMergesIntoDay(t *testing.T) {
	l := week.NewLedger(wednesday)

	l.RecordSession(session("a", wednesday, 120), wednesday)
	l.RecordSession(session("b", wednesday.Add(3*time.Hour), 60), wednesday.Add(3*time.Hour))

	require.Len(t, l.Entries, 1)
	require.Equal(t, week.DateKey(wednesday), l.Entries[0].DateKey)
	require.Len(t, l.Entries[0].Sessions, 2)
	require.Equal(t, 180, l.Entries[0].TotalMinutes)
	require.Equal(t, 180, l.TotalMinutes)
	require.Equal(t, l.TotalMinutes, entriesTotal(l))
}

func TestRecordSessionKeepsDayOrder(t *testing.T) {
	l := week.NewLedger(wednesday)
	thursday := wednesday.AddDate(0, 0, 1)

	l.RecordSession(session("a", wednesday, 60), wednesday)
	l.RecordSession(session("b", thursday, 30), thursday)
	l.RecordSession(session("c", thursday.Add(time.Hour), 30), thursday.Add(time.Hour))

	require.Len(t, l.Entries, 2)
	require.Equal(t, week.DateKey(wednesday), l.Entries[0].DateKey)
	require.Equal(t, week.DateKey(thursday), l.Entries[1].DateKey)
	require.Equal(t, 120, l.TotalMinutes)
	require.Equal(t, l.TotalMinutes, entriesTotal(l))
}

func TestRecordManual(t *testing.T) {
	l := week.NewLedger(wednesday)

	s, err := l.RecordManual(480, wednesday)
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)
	require.True(t, s.StartTime.Equal(s.EndTime), "manual sessions use a placeholder start/end")
	require.Equal(t, 480, s.DurationMinutes)
	require.Equal(t, 480, l.TotalMinutes)
	require.Equal(t, "Wed, Aug 19", l.Entries[0].DisplayDate)
}

func TestRecordManualRejectsNonPositive(t *testing.T) {
	l := week.NewLedger(wednesday)

	_, err := l.RecordManual(0, wednesday)
	require.ErrorIs(t, err, week.ErrInvalidDuration)
	_, err = l.RecordManual(-30, wednesday)
	require.ErrorIs(t, err, week.ErrInvalidDuration)
	require.Zero(t, l.TotalMinutes)
	require.Empty(t, l.Entries)
}

func TestUndoLastRemovesSession(t *testing.T) {
	l := week.NewLedger(wednesday)
	l.RecordSession(session("a", wednesday, 120), wednesday)
	l.RecordSession(session("b", wednesday.Add(3*time.Hour), 60), wednesday.Add(3*time.Hour))

	undone, err := l.UndoLast()
	require.NoError(t, err)
	require.Equal(t, "b", undone.ID)
	require.Equal(t, 120, l.TotalMinutes)
	require.Len(t, l.Entries, 1)
	require.Len(t, l.Entries[0].Sessions, 1)
	require.Equal(t, l.TotalMinutes, entriesTotal(l))
}

func TestUndoLastDropsEmptyEntry(t *testing.T) {
	l := week.NewLedger(wednesday)
	_, err := l.RecordManual(480, wednesday)
	require.NoError(t, err)

	_, err = l.UndoLast()
	require.NoError(t, err)
	require.Empty(t, l.Entries)
	require.Zero(t, l.TotalMinutes)
}

func TestUndoLastOnEmptyLedger(t *testing.T) {
	l := week.NewLedger(wednesday)

	_, err := l.UndoLast()
	require.ErrorIs(t, err, week.ErrNothingToUndo)
}

func TestUndoLastTargetsNewestDay(t *testing.T) {
	l := week.NewLedger(wednesday)
	thursday := wednesday.AddDate(0, 0, 1)
	l.RecordSession(session("a", wednesday, 60), wednesday)
	l.RecordSession(session("b", thursday, 30), thursday)

	undone, err := l.UndoLast()
	require.NoError(t, err)
	require.Equal(t, "b", undone.ID)
	require.Len(t, l.Entries, 1)
	require.Equal(t, week.DateKey(wednesday), l.Entries[0].DateKey)
}

func TestResetClearsEverything(t *testing.T) {
	l := week.NewLedger(wednesday)
	l.RecordSession(session("a", wednesday, 60), wednesday)
	require.NoError(t, l.StartWork(wednesday.Add(2*time.Hour)))

	monday := time.Date(2026, time.August, 24, 0, 1, 0, 0, time.UTC)
	l.Reset(monday)

	require.Zero(t, l.TotalMinutes)
	require.Empty(t, l.Entries)
	require.Nil(t, l.Active, "an in-progress session is discarded at reset")
	require.True(t, l.LastReset.Equal(monday))
}

func TestLedgerRoundTrip(t *testing.T) {
	l := week.NewLedger(wednesday)
	l.RecordSession(session("a", wednesday, 510), wednesday)
	_, err := l.RecordManual(480, wednesday.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.NoError(t, l.StartWork(wednesday.Add(10*time.Hour)))

	data, err := json.Marshal(l)
	require.NoError(t, err)

	var got week.Ledger
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, l, got)
	require.Equal(t, got.TotalMinutes, entriesTotal(got))
}

func TestLedgerJSONLayout(t *testing.T) {
	l := week.NewLedger(wednesday)
	l.RecordSession(session("a", wednesday, 510), wednesday)

	data, err := json.Marshal(l)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Contains(t, doc, "totalMinutes")
	require.Contains(t, doc, "entries")
	require.Contains(t, doc, "lastResetDate")
	require.NotContains(t, doc, "activeSession", "omitted while idle")

	entry := doc["entries"].([]any)[0].(map[string]any)
	require.Contains(t, entry, "dateKey")
	require.Contains(t, entry, "displayDate")
	require.Contains(t, entry, "sessions")
	require.Contains(t, entry, "totalMinutes")
}
