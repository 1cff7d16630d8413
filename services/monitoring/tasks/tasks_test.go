package tasks_test

import (
	"context"
	"testing"
	"time"

	"github.com/Upkraft/Upkraft-Backend/services/monitoring/logging"
	"github.com/Upkraft/Upkraft-Backend/services/monitoring/tasks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newScheduler() *tasks.TaskScheduler {
	return tasks.NewTaskScheduler(&logging.Logger{Logger: logrus.New()})
}

func TestAddTaskRejectsDuplicates(t *testing.T) {
	ts := newScheduler()
	defer ts.Stop()

	_, err := ts.AddTask("cleanup", "Cleanup", func(context.Context) error { return nil }, 0)
	require.NoError(t, err)

	_, err = ts.AddTask("cleanup", "Cleanup", func(context.Context) error { return nil }, 0)
	require.Error(t, err)
}

func TestRunTask(t *testing.T) {
	ts := newScheduler()
	defer ts.Stop()

	ran := make(chan struct{})
	_, err := ts.AddTask("probe", "Probe", func(context.Context) error {
		close(ran)
		return nil
	}, 0)
	require.NoError(t, err)

	require.NoError(t, ts.RunTask("probe"))
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run")
	}

	require.Error(t, ts.RunTask("missing"))
}

func TestScheduleRecurringTask(t *testing.T) {
	ts := newScheduler()
	defer ts.Stop()

	runs := make(chan struct{}, 4)
	_, err := ts.AddTask("tick", "Tick", func(context.Context) error {
		runs <- struct{}{}
		return nil
	}, 10*time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, ts.ScheduleTask("tick", time.Millisecond))

	for i := 0; i < 2; i++ {
		select {
		case <-runs:
		case <-time.After(2 * time.Second):
			t.Fatalf("run %d never fired", i)
		}
	}
}

func TestStopCancelsScheduledTask(t *testing.T) {
	ts := newScheduler()

	ran := make(chan struct{}, 1)
	_, err := ts.AddTask("never", "Never", func(context.Context) error {
		ran <- struct{}{}
		return nil
	}, 0)
	require.NoError(t, err)

	require.NoError(t, ts.ScheduleTask("never", time.Hour))
	ts.Stop()

	select {
	case <-ran:
		t.Fatal("cancelled task still ran")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRemoveAndGetTask(t *testing.T) {
	ts := newScheduler()
	defer ts.Stop()

	_, err := ts.AddTask("once", "Once", func(context.Context) error { return nil }, 0)
	require.NoError(t, err)

	task, err := ts.GetTask("once")
	require.NoError(t, err)
	require.Equal(t, "Once", task.Name)
	require.False(t, task.IsRecurring)

	require.NoError(t, ts.RemoveTask("once"))
	_, err = ts.GetTask("once")
	require.Error(t, err)
}
