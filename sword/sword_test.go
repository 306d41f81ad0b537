package sword

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-drones/container"
	"github.com/arloliu/go-drones/internal/intstream"
	"github.com/arloliu/go-drones/logger"
)

func TestSchedule(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want []CleaningTime
	}{
		{
			name: "every request waits",
			in: Input{
				Swords:       1,
				DefaultTime:  5,
				ServiceTimes: []int64{2},
				RequestTimes: []int64{0, 1, 10},
			},
			want: []CleaningTime{{2, 2}, {7, 6}, {12, 2}},
		},
		{
			name: "ready swords fill follow-on requests then idle",
			in: Input{
				Swords:       2,
				DefaultTime:  5,
				ServiceTimes: []int64{1, 1},
				RequestTimes: []int64{5, 6, 20},
			},
			want: []CleaningTime{{5, 0}, {6, 0}, {25, 5}},
		},
		{
			name: "follow-on requests until swords run out",
			in: Input{
				Swords:       3,
				DefaultTime:  2,
				ServiceTimes: []int64{1, 5, 1},
				RequestTimes: []int64{10, 11, 12, 13},
			},
			want: []CleaningTime{{10, 0}, {11, 0}, {12, 0}, {15, 2}},
		},
		{
			name: "ready sword without follow-on",
			in: Input{
				Swords:       3,
				DefaultTime:  9,
				ServiceTimes: []int64{1, 1, 1},
				RequestTimes: []int64{0, 1, 100},
			},
			want: []CleaningTime{{1, 1}, {2, 1}, {100, 0}},
		},
		{
			name: "more swords than requests",
			in: Input{
				Swords:       5,
				DefaultTime:  1,
				ServiceTimes: []int64{3},
				RequestTimes: []int64{1},
			},
			want: []CleaningTime{{3, 2}},
		},
		{
			name: "no requests",
			in:   Input{Swords: 2, DefaultTime: 1, ServiceTimes: []int64{}},
			want: []CleaningTime{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewScheduler().Schedule(tt.in)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Schedule() diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScheduleOnePerRequest(t *testing.T) {
	in := Input{Swords: 4, DefaultTime: 3, ServiceTimes: []int64{2, 7, 1, 4}}
	for i := range 200 {
		in.RequestTimes = append(in.RequestTimes, int64(i*2))
	}

	got, err := NewScheduler().Schedule(in)
	require.NoError(t, err)
	require.Len(t, got, 200)

	for i, ct := range got {
		assert.GreaterOrEqual(t, ct.Wait, int64(0), "request %d", i)
		assert.Equal(t, in.RequestTimes[i]+ct.Wait, ct.Filled, "request %d", i)
	}
}

func TestScheduleInvalidInput(t *testing.T) {
	s := NewScheduler()

	_, err := s.Schedule(Input{Swords: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Schedule(Input{Swords: 2, ServiceTimes: []int64{1}, RequestTimes: []int64{1, 2}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestScheduleContainerOptions(t *testing.T) {
	in := Input{Swords: 1, DefaultTime: 1, ServiceTimes: []int64{1}}
	for i := range 64 {
		in.RequestTimes = append(in.RequestTimes, int64(i))
	}

	_, err := NewScheduler(WithContainerOptions(container.WithMaxCapacity(32))).Schedule(in)
	assert.ErrorIs(t, err, container.ErrCapacityExhausted)
}

func TestScheduleLogsFilledRequests(t *testing.T) {
	m := logger.NewMockLogger()
	m.On("Debug", "request filled", mock.Anything).Return()

	_, err := NewScheduler(WithLogger(m)).Schedule(Input{
		Swords:       1,
		DefaultTime:  5,
		ServiceTimes: []int64{2},
		RequestTimes: []int64{0, 1, 10},
	})
	require.NoError(t, err)

	m.AssertCalled(t, "Debug", "request filled", []any{"request", 0, "filled", int64(2), "wait", int64(2)})
	m.AssertNumberOfCalls(t, "Debug", 3)
}

func TestParseInput(t *testing.T) {
	in, err := ParseInput(strings.NewReader("1 3 5\n2\n0\n1\n10\n"))
	require.NoError(t, err)

	want := Input{
		Swords:       1,
		DefaultTime:  5,
		ServiceTimes: []int64{2},
		RequestTimes: []int64{0, 1, 10},
	}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Errorf("ParseInput() diff (-want +got):\n%s", diff)
	}
}

func TestParseInputErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "", want: intstream.ErrUnexpectedEOF},
		{name: "short header", input: "1 3", want: intstream.ErrUnexpectedEOF},
		{name: "missing cleaning time", input: "2 3 5\n1\n", want: intstream.ErrUnexpectedEOF},
		{name: "missing request", input: "1 3 5\n2\n0\n1\n", want: intstream.ErrUnexpectedEOF},
		{name: "malformed", input: "1 3 five\n", want: intstream.ErrMalformed},
		{name: "negative count", input: "1 -3 5\n", want: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInput(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCleaningTimesFromFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "swords.txt")
	require.NoError(t, os.WriteFile(name, []byte("2 3 5\n1\n1\n5\n6\n20\n"), 0o600))

	got, err := NewScheduler().CleaningTimesFromFile(name)
	require.NoError(t, err)
	assert.Equal(t, []CleaningTime{{5, 0}, {6, 0}, {25, 5}}, got)

	_, err = NewScheduler().CleaningTimesFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
