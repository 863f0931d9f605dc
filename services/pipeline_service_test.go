package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"staffing-crm-api/models"
)

var (
	loadPattern          = regexp.MustCompile(`SELECT \* FROM .submissions. WHERE submission_id = \?`)
	hydratedPattern      = regexp.MustCompile(`(?i)SELECT submissions\..*consultant_name.*FROM .submissions. LEFT JOIN consultants`)
	ratePreloadPattern   = regexp.MustCompile(`(?i)SELECT \* FROM .rate_history. WHERE .*submission_id.*ORDER BY changed_date ASC`)
	statusPreloadPattern = regexp.MustCompile(`(?i)SELECT \* FROM .status_history. WHERE .*submission_id.*ORDER BY changed_date ASC`)
)

var submissionColumns = []string{
	"submission_id", "consultant_id", "vendor_id", "job_id", "status",
	"applied_rate", "submission_rate", "rate_confirmation_date",
	"submission_date", "created_at",
}

func submissionRow(id string, status string, appliedRate float64, submissionRate driver.Value, rateConfirmed driver.Value) []driver.Value {
	now := time.Now()
	return []driver.Value{id, "c1", "v1", "j1", status, appliedRate, submissionRate, rateConfirmed, now, now}
}

var statusHistoryColumns = []string{
	"history_id", "submission_id", "from_status", "to_status", "changed_by", "changed_date",
}

var rateHistoryColumns = []string{
	"history_id", "submission_id", "old_rate", "new_rate", "changed_by", "changed_date", "rate_type",
}

func TestUpdateStatusRejectsSubmissionWithoutNegotiatedRate(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: loadPattern,
			columns: submissionColumns,
			rows:    [][]driver.Value{submissionRow("sub-1", "applied", 60.0, nil, nil)},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewPipelineService(db)
	_, err := svc.UpdateStatus("sub-1", &StatusChangeInput{
		NewStatus: models.StatusSubmission,
		Actor:     "ops@example.com",
	})
	if !errors.Is(err, ErrRateNotConfirmed) {
		t.Fatalf("expected ErrRateNotConfirmed, got %v", err)
	}

	// The guard must fire before any mutation is attempted.
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestUpdateStatusUnknownSubmission(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: loadPattern,
			columns: submissionColumns,
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewPipelineService(db)
	_, err := svc.UpdateStatus("missing", &StatusChangeInput{
		NewStatus: models.StatusRejected,
		Actor:     "ops@example.com",
	})
	if !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestUpdateRateRejectsNonPositiveRate(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewPipelineService(db)
	for _, rate := range []float64{0, -15} {
		if _, err := svc.UpdateRate("sub-1", &RateChangeInput{NewRate: rate, Actor: "ops"}); !errors.Is(err, ErrInvalidRate) {
			t.Fatalf("rate %v: expected ErrInvalidRate, got %v", rate, err)
		}
	}

	// Invalid input never reaches the database.
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestUpdateRateAppendsNegotiatedHistory(t *testing.T) {
	now := time.Now()
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: loadPattern,
			columns: submissionColumns,
			rows:    [][]driver.Value{submissionRow("sub-1", "applied", 60.0, nil, nil)},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`UPDATE .submissions. SET .submission_rate.`),
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`INSERT INTO .rate_history.`),
		},
		// Read-your-writes refetch.
		{
			kind:    kindQuery,
			pattern: hydratedPattern,
			columns: append(submissionColumns, "consultant_name", "vendor_name", "job_title", "client"),
			rows: [][]driver.Value{
				append(submissionRow("sub-1", "applied", 60.0, 72.0, nil),
					"Ada Park", "TekVen", "Data Engineer", "Acme"),
			},
		},
		{
			kind:    kindQuery,
			pattern: ratePreloadPattern,
			columns: rateHistoryColumns,
			rows: [][]driver.Value{
				{int64(1), "sub-1", nil, 60.0, "ops@example.com", now, "applied"},
				{int64(2), "sub-1", 60.0, 72.0, "ops@example.com", now, "negotiated"},
			},
		},
		{
			kind:    kindQuery,
			pattern: statusPreloadPattern,
			columns: statusHistoryColumns,
			rows: [][]driver.Value{
				{int64(1), "sub-1", nil, "applied", "ops@example.com", now},
			},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewPipelineService(db)
	reason := "vendor countered"
	sub, err := svc.UpdateRate("sub-1", &RateChangeInput{
		NewRate: 72,
		Reason:  &reason,
		Actor:   "ops@example.com",
	})
	if err != nil {
		t.Fatalf("UpdateRate returned error: %v", err)
	}

	if sub.SubmissionRate == nil || *sub.SubmissionRate != 72 {
		t.Fatalf("expected submission_rate 72, got %v", sub.SubmissionRate)
	}
	if len(sub.RateHistory) != 2 {
		t.Fatalf("expected 2 rate history entries, got %d", len(sub.RateHistory))
	}
	latest := sub.RateHistory[len(sub.RateHistory)-1]
	if latest.RateType != models.RateTypeNegotiated || latest.OldRate == nil || *latest.OldRate != 60 || latest.NewRate != 72 {
		t.Fatalf("unexpected negotiated entry: %+v", latest)
	}
	first := sub.RateHistory[0]
	if first.RateType != models.RateTypeApplied || first.OldRate != nil || first.NewRate != 60 {
		t.Fatalf("unexpected applied entry: %+v", first)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestUpdateStatusIntoSubmissionStampsRateConfirmation(t *testing.T) {
	now := time.Now()
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: loadPattern,
			columns: submissionColumns,
			rows:    [][]driver.Value{submissionRow("sub-1", "applied", 60.0, 72.0, nil)},
		},
		// rate_confirmation_date is part of the update because this is the
		// first entry into `submission`.
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`UPDATE .submissions. SET .rate_confirmation_date.*.status_changed_date.`),
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`INSERT INTO .status_history.`),
		},
		{
			kind:    kindQuery,
			pattern: hydratedPattern,
			columns: append(submissionColumns, "consultant_name", "vendor_name", "job_title", "client"),
			rows: [][]driver.Value{
				append(submissionRow("sub-1", "submission", 60.0, 72.0, now),
					"Ada Park", "TekVen", "Data Engineer", "Acme"),
			},
		},
		{
			kind:    kindQuery,
			pattern: ratePreloadPattern,
			columns: rateHistoryColumns,
			rows: [][]driver.Value{
				{int64(1), "sub-1", nil, 60.0, "ops@example.com", now, "applied"},
				{int64(2), "sub-1", 60.0, 72.0, "ops@example.com", now, "negotiated"},
			},
		},
		{
			kind:    kindQuery,
			pattern: statusPreloadPattern,
			columns: statusHistoryColumns,
			rows: [][]driver.Value{
				{int64(1), "sub-1", nil, "applied", "ops@example.com", now},
				{int64(2), "sub-1", "applied", "submission", "ops@example.com", now},
			},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewPipelineService(db)
	sub, err := svc.UpdateStatus("sub-1", &StatusChangeInput{
		NewStatus: models.StatusSubmission,
		Actor:     "ops@example.com",
	})
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	if sub.Status != models.StatusSubmission {
		t.Fatalf("expected status submission, got %s", sub.Status)
	}
	if sub.RateConfirmationDate == nil {
		t.Fatalf("expected rate_confirmation_date to be set")
	}
	if len(sub.StatusHistory) != 2 {
		t.Fatalf("expected 2 status history entries, got %d", len(sub.StatusHistory))
	}

	// The cached status must equal the tail of the history log.
	tail := sub.StatusHistory[len(sub.StatusHistory)-1]
	if tail.ToStatus != sub.Status {
		t.Fatalf("status %s does not match history tail %s", sub.Status, tail.ToStatus)
	}
	if tail.FromStatus == nil || *tail.FromStatus != models.StatusApplied {
		t.Fatalf("unexpected from_status: %v", tail.FromStatus)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestUpdateStatusReentryKeepsRateConfirmation(t *testing.T) {
	now := time.Now()
	confirmedAt := now.Add(-48 * time.Hour)
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: loadPattern,
			columns: submissionColumns,
			rows:    [][]driver.Value{submissionRow("sub-1", "interview_scheduled", 60.0, 72.0, confirmedAt)},
		},
		// The date was stamped on the first entry into `submission`, so this
		// re-entry updates only the status columns. Updates(map) sorts its
		// keys, so the SET list is exact and rate_confirmation_date cannot
		// hide in it.
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`UPDATE .submissions. SET .status.=\?,.status_changed_by.=\?,.status_changed_date.=\? WHERE`),
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`INSERT INTO .status_history.`),
		},
		{
			kind:    kindQuery,
			pattern: hydratedPattern,
			columns: append(submissionColumns, "consultant_name", "vendor_name", "job_title", "client"),
			rows: [][]driver.Value{
				append(submissionRow("sub-1", "submission", 60.0, 72.0, confirmedAt),
					"Ada Park", "TekVen", "Data Engineer", "Acme"),
			},
		},
		{
			kind:    kindQuery,
			pattern: ratePreloadPattern,
			columns: rateHistoryColumns,
			rows: [][]driver.Value{
				{int64(1), "sub-1", nil, 60.0, "ops@example.com", now, "applied"},
				{int64(2), "sub-1", 60.0, 72.0, "ops@example.com", now, "negotiated"},
			},
		},
		{
			kind:    kindQuery,
			pattern: statusPreloadPattern,
			columns: statusHistoryColumns,
			rows: [][]driver.Value{
				{int64(1), "sub-1", nil, "applied", "ops@example.com", now},
				{int64(2), "sub-1", "applied", "submission", "ops@example.com", now},
				{int64(3), "sub-1", "submission", "interview_scheduled", "ops@example.com", now},
				{int64(4), "sub-1", "interview_scheduled", "submission", "ops@example.com", now},
			},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewPipelineService(db)
	sub, err := svc.UpdateStatus("sub-1", &StatusChangeInput{
		NewStatus: models.StatusSubmission,
		Actor:     "ops@example.com",
	})
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	if sub.Status != models.StatusSubmission {
		t.Fatalf("expected status submission, got %s", sub.Status)
	}
	if sub.RateConfirmationDate == nil || !sub.RateConfirmationDate.Equal(confirmedAt) {
		t.Fatalf("expected original rate_confirmation_date %v, got %v", confirmedAt, sub.RateConfirmationDate)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestCreateWritesInitialHistories(t *testing.T) {
	now := time.Now()
	steps := []*queryStep{
		{kind: kindExec, pattern: regexp.MustCompile(`INSERT INTO .submissions.`)},
		{kind: kindExec, pattern: regexp.MustCompile(`INSERT INTO .status_history.`)},
		{kind: kindExec, pattern: regexp.MustCompile(`INSERT INTO .rate_history.`)},
		{
			kind:    kindQuery,
			pattern: hydratedPattern,
			columns: append(submissionColumns, "consultant_name", "vendor_name", "job_title", "client"),
			rows: [][]driver.Value{
				append(submissionRow("sub-1", "applied", 60.0, nil, nil),
					"Ada Park", "TekVen", "Data Engineer", "Acme"),
			},
		},
		{
			kind:    kindQuery,
			pattern: ratePreloadPattern,
			columns: rateHistoryColumns,
			rows: [][]driver.Value{
				{int64(1), "sub-1", nil, 60.0, "ops@example.com", now, "applied"},
			},
		},
		{
			kind:    kindQuery,
			pattern: statusPreloadPattern,
			columns: statusHistoryColumns,
			rows: [][]driver.Value{
				{int64(1), "sub-1", nil, "applied", "ops@example.com", now},
			},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewPipelineService(db)
	sub, err := svc.Create(&CreateSubmissionInput{
		ConsultantID: "c1",
		VendorID:     "v1",
		JobID:        "j1",
		AppliedRate:  60,
		Actor:        "ops@example.com",
		ActorID:      7,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if sub.Status != models.StatusApplied {
		t.Fatalf("expected status applied, got %s", sub.Status)
	}
	if sub.SubmissionRate != nil {
		t.Fatalf("expected no negotiated rate on creation, got %v", *sub.SubmissionRate)
	}
	if len(sub.StatusHistory) != 1 || sub.StatusHistory[0].FromStatus != nil || sub.StatusHistory[0].ToStatus != models.StatusApplied {
		t.Fatalf("unexpected initial status history: %+v", sub.StatusHistory)
	}
	if len(sub.RateHistory) != 1 || sub.RateHistory[0].RateType != models.RateTypeApplied ||
		sub.RateHistory[0].OldRate != nil || sub.RateHistory[0].NewRate != 60 {
		t.Fatalf("unexpected initial rate history: %+v", sub.RateHistory)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestCreateRejectsNonPositiveAppliedRate(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewPipelineService(db)
	_, err := svc.Create(&CreateSubmissionInput{
		ConsultantID: "c1",
		VendorID:     "v1",
		JobID:        "j1",
		AppliedRate:  0,
		Actor:        "ops@example.com",
	})
	if !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("expected ErrInvalidRate, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}
