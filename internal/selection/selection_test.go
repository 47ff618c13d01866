package selection_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/penbot/penbot-web/internal/calendar"
	"github.com/penbot/penbot-web/internal/selection"
)

var today = calendar.New(2025, time.August, 1)

func day(d int) calendar.Date {
	return calendar.New(2025, time.August, d)
}

func TestClickSequenceBuildsRange(t *testing.T) {
	var s selection.Selector

	require.True(t, s.Range().Empty())

	s.Click(day(10), today)
	r := s.Range()
	require.Equal(t, day(10), *r.Start)
	require.Nil(t, r.End)

	s.Click(day(13), today)
	r = s.Range()
	require.True(t, r.Complete())
	require.Equal(t, day(10), *r.Start)
	require.Equal(t, day(13), *r.End)
}

func TestClickAfterCompleteStartsFreshSelection(t *testing.T) {
	var s selection.Selector
	s.Click(day(10), today)
	s.Click(day(13), today)

	s.Click(day(20), today)
	r := s.Range()
	require.Equal(t, day(20), *r.Start)
	require.Nil(t, r.End)
}

func TestClickOnOrBeforeStartReanchors(t *testing.T) {
	var s selection.Selector
	s.Click(day(10), today)

	// Same day: re-anchor, never a zero-night range.
	s.Click(day(10), today)
	r := s.Range()
	require.Equal(t, day(10), *r.Start)
	require.Nil(t, r.End)

	// Earlier day: re-anchor to it.
	s.Click(day(5), today)
	r = s.Range()
	require.Equal(t, day(5), *r.Start)
	require.Nil(t, r.End)
}

func TestPastDateClickIsNoOpInEveryState(t *testing.T) {
	past := calendar.New(2025, time.July, 20)

	var s selection.Selector
	s.Click(past, today)
	require.True(t, s.Range().Empty())

	s.Click(day(10), today)
	s.Click(past, today)
	require.Equal(t, day(10), *s.Range().Start)
	require.Nil(t, s.Range().End)

	s.Click(day(13), today)
	s.Click(past, today)
	require.Equal(t, day(13), *s.Range().End)
}

func TestCompleteRangeEndAlwaysAfterStart(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var s selection.Selector
	for i := 0; i < 2000; i++ {
		d := today.AddDays(rng.Intn(90) - 10)
		s.Click(d, today)
		if r := s.Range(); r.Complete() {
			require.True(t, r.End.After(*r.Start))
		}
	}
}

func TestIntervalDefaultsToOneNight(t *testing.T) {
	var s selection.Selector
	s.Click(day(10), today)

	start, end, ok := s.Range().Interval()
	require.True(t, ok)
	require.Equal(t, "2025-08-10", start.ISO())
	require.Equal(t, "2025-08-11", end.ISO())
}

func TestIntervalEmptySelection(t *testing.T) {
	var s selection.Selector
	_, _, ok := s.Range().Interval()
	require.False(t, ok)
}

func TestRenderingPredicates(t *testing.T) {
	var s selection.Selector
	s.Click(day(10), today)
	s.Click(day(13), today)

	require.True(t, s.IsStart(day(10)))
	require.True(t, s.IsEnd(day(13)))
	require.False(t, s.InRange(day(10)))
	require.False(t, s.InRange(day(13)))
	require.True(t, s.InRange(day(11)))
	require.True(t, s.InRange(day(12)))
	require.False(t, s.InRange(day(14)))
}

func TestDisplay(t *testing.T) {
	var s selection.Selector
	require.Equal(t, "날짜를 선택해주세요", s.Range().Display())

	s.Click(day(10), today)
	require.Equal(t, "8월 10일 (1박)", s.Range().Display())

	s.Click(day(13), today)
	require.Equal(t, "8월 10일 ~ 8월 13일 (3박)", s.Range().Display())
}

func TestResetClearsSelection(t *testing.T) {
	var s selection.Selector
	s.Click(day(10), today)
	s.Reset()
	require.True(t, s.Range().Empty())
}
