package service

import (
	"context"
	"strings"
	"testing"
	"time"

	perr "daydash/internal/platform/errors"
	"daydash/internal/services/api/schedule/repo"
)

type fakeRepo struct {
	rows []repo.RowSchedule
	err  error
}

func (f *fakeRepo) List(ctx context.Context, userID string) ([]repo.RowSchedule, error) {
	return f.rows, f.err
}

func (f *fakeRepo) Create(ctx context.Context, userID string, in repo.RowSchedule) (repo.RowSchedule, error) {
	return in, f.err
}

func (f *fakeRepo) Get(ctx context.Context, userID, id string) (repo.RowSchedule, error) {
	return repo.RowSchedule{}, f.err
}

func (f *fakeRepo) Update(ctx context.Context, userID, id string, in repo.RowSchedule) (repo.RowSchedule, error) {
	return in, f.err
}

func (f *fakeRepo) Delete(ctx context.Context, userID, id string) error { return f.err }

func testSvc(rows []repo.RowSchedule, now time.Time) *Svc {
	return &Svc{
		Repo: &fakeRepo{rows: rows},
		now:  func() time.Time { return now },
	}
}

// 2026-01-07 is a Wednesday; its week runs Sunday Jan 4 through Saturday Jan 10
func fixtureRows() []repo.RowSchedule {
	return []repo.RowSchedule{
		{ID: "s1", Name: "Linear Algebra", Day: "Monday", StartTime: "10:15", EndTime: "12:00"},
		{ID: "s2", Name: "Gym", Day: "wednesday", StartTime: "18:00", EndTime: "19:00"},
	}
}

func TestEventsWeekWindow(t *testing.T) {
	s := testSvc(fixtureRows(), time.Date(2026, 1, 7, 9, 0, 0, 0, time.Local))

	out, err := s.Events(context.Background(), "u1", "week", "2026-01-07")
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if out.View != "week" {
		t.Fatalf("view = %q, want week", out.View)
	}
	if len(out.Events) != 2 {
		t.Fatalf("got %d events, want 2: %+v", len(out.Events), out.Events)
	}

	// schedule-major: s1's Monday instance before s2's Wednesday instance
	if out.Events[0].SourceID != "s1" || out.Events[1].SourceID != "s2" {
		t.Fatalf("order mismatch: %+v", out.Events)
	}
	if !strings.HasPrefix(out.Events[0].Start, "2026-01-05T10:15") {
		t.Fatalf("s1 start = %q", out.Events[0].Start)
	}
	if !strings.HasPrefix(out.Events[1].Start, "2026-01-07T18:00") {
		t.Fatalf("s2 start = %q", out.Events[1].Start)
	}
}

func TestEventsMonthWindowRepeatsWeekly(t *testing.T) {
	s := testSvc(fixtureRows()[:1], time.Now())

	out, err := s.Events(context.Background(), "u1", "month", "2026-01-15")
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	// January 2026 has four Mondays: 5, 12, 19, 26
	if len(out.Events) != 4 {
		t.Fatalf("got %d events, want 4", len(out.Events))
	}
	for i, day := range []string{"05", "12", "19", "26"} {
		if !strings.HasPrefix(out.Events[i].Start, "2026-01-"+day) {
			t.Fatalf("event %d start = %q, want day %s", i, out.Events[i].Start, day)
		}
	}
}

func TestEventsUnknownViewRejected(t *testing.T) {
	s := testSvc(nil, time.Now())
	_, err := s.Events(context.Background(), "u1", "fortnight", "")
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestEventsBadDateRejected(t *testing.T) {
	s := testSvc(nil, time.Now())
	_, err := s.Events(context.Background(), "u1", "day", "last tuesday")
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestEventsUnknownWeekdayNeverMatches(t *testing.T) {
	rows := []repo.RowSchedule{
		{ID: "s9", Name: "Ghost", Day: "Someday", StartTime: "10:00", EndTime: "11:00"},
	}
	s := testSvc(rows, time.Now())

	out, err := s.Events(context.Background(), "u1", "year", "2026-06-01")
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if len(out.Events) != 0 {
		t.Fatalf("got %d events, want 0", len(out.Events))
	}
}

func TestExportICS(t *testing.T) {
	s := testSvc(fixtureRows(), time.Date(2026, 1, 7, 9, 0, 0, 0, time.Local))

	body, err := s.ExportICS(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ExportICS: %v", err)
	}
	ics := string(body)

	if !strings.Contains(ics, "BEGIN:VCALENDAR") || !strings.Contains(ics, "END:VCALENDAR") {
		t.Fatalf("not a calendar:\n%s", ics)
	}
	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 2 {
		t.Fatalf("got %d VEVENTs, want 2:\n%s", got, ics)
	}
	if !strings.Contains(ics, "SUMMARY:Linear Algebra") {
		t.Fatalf("missing summary:\n%s", ics)
	}
	if !strings.Contains(ics, "RRULE:FREQ=WEEKLY;BYDAY=MO") {
		t.Fatalf("missing weekly Monday rrule:\n%s", ics)
	}
	if !strings.Contains(ics, "RRULE:FREQ=WEEKLY;BYDAY=WE") {
		t.Fatalf("missing weekly Wednesday rrule:\n%s", ics)
	}
}

func TestExportICSSkipsUnknownWeekday(t *testing.T) {
	rows := []repo.RowSchedule{
		{ID: "s9", Name: "Ghost", Day: "Someday", StartTime: "10:00", EndTime: "11:00"},
	}
	s := testSvc(rows, time.Now())

	body, err := s.ExportICS(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ExportICS: %v", err)
	}
	if strings.Contains(string(body), "BEGIN:VEVENT") {
		t.Fatalf("unexpected VEVENT for unknown weekday:\n%s", body)
	}
}
