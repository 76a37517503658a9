package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStats int

func (f fakeStats) Len() int          { return int(f) }
func (f fakeStats) ValueBytes() int64 { return int64(f) * 10 }

func TestReporterEmptyScheduleIsNoop(t *testing.T) {
	r := NewReporter("", fakeStats(0))

	require.NoError(t, r.Start())
	r.Stop()
}

func TestReporterRejectsBadSchedule(t *testing.T) {
	r := NewReporter("every now and then", fakeStats(0))

	err := r.Start()
	assert.Error(t, err)
}

func TestReporterStartStop(t *testing.T) {
	r := NewReporter("* * * * *", fakeStats(5))

	require.NoError(t, r.Start())
	r.Stop()

	// Stop twice is safe.
	r.Stop()
}
