package monitor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"guardian/internal/exposure"
	"guardian/internal/hygiene"
	"guardian/internal/monitor"
	"guardian/pkg/domain"
	"guardian/pkg/serrors"
	"guardian/pkg/source"
	"guardian/pkg/storage"
	mockstorage "guardian/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeClient is an in-memory source.Client for wiring the aggregator.
type fakeClient struct {
	name     string
	findings source.Findings
	err      error
}

func (f *fakeClient) Name() string  { return f.name }
func (f *fakeClient) Priority() int { return 0 }

func (f *fakeClient) Supports(k source.AttributeKind) bool { return k == source.AttributeEmail }

func (f *fakeClient) Lookup(context.Context, source.Attribute) (source.Findings, error) {
	return f.findings, f.err
}

func newTestMonitor(t *testing.T, clients ...source.Client) (*gomock.Controller, *mockstorage.MockStorage, monitor.Monitor) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	questionnaire, err := hygiene.DefaultQuestionnaire()
	require.NoError(t, err)

	m := monitor.New(st,
		exposure.New(clients, exposure.NewScorer(exposure.ScorerOptions{}),
			exposure.Options{SourceTimeout: time.Second}),
		hygiene.NewScorer(questionnaire, nil, hygiene.Options{}))

	return ctrl, st, m
}

func newOwner() domain.OwnerID {
	return domain.OwnerID(uuid.New())
}

func completeAnswers(t *testing.T) map[string]domain.HygieneAnswer {
	t.Helper()

	questionnaire, err := hygiene.DefaultQuestionnaire()
	require.NoError(t, err)

	answers := make(map[string]domain.HygieneAnswer)
	for _, c := range questionnaire.Categories {
		for _, q := range c.Questions {
			answers[q.ID] = domain.HygieneAnswer{QuestionID: q.ID, Value: 4}
		}
	}

	return answers
}

func TestMonitor_CheckExposure_PersistsReport(t *testing.T) {
	_, st, m := newTestMonitor(t, &fakeClient{
		name: "hibp",
		findings: source.Findings{Breaches: []domain.BreachRecord{
			{SourceName: "hibp", BreachName: "Acme Leak"},
		}},
	})

	owner := newOwner()
	assigned := domain.ReportID(uuid.New())
	st.EXPECT().StoreReport(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, report domain.Report) (*domain.Report, error) {
			require.Equal(t, owner, report.OwnerID)
			require.Equal(t, domain.ReportKindExposure, report.Kind)
			require.Equal(t, domain.RiskMedium, report.RiskLevel)
			require.NotNil(t, report.Exposure)
			report.ID = assigned
			report.CreatedAt = time.Now()

			return &report, nil
		})

	report, err := m.CheckExposure(context.Background(), owner,
		domain.ExposureQuery{Email: "victim@example.com"})
	require.NoError(t, err)
	require.Equal(t, assigned, report.ID)
	require.Equal(t, 1, report.Exposure.EmailReport.TotalBreachCount)
}

func TestMonitor_CheckExposure_InvalidQuery(t *testing.T) {
	_, _, m := newTestMonitor(t)

	_, err := m.CheckExposure(context.Background(), newOwner(), domain.ExposureQuery{})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.ErrorIs(t, err, domain.ErrEmptyQuery)

	_, err = m.CheckExposure(context.Background(), newOwner(),
		domain.ExposureQuery{Email: "not-an-email"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestMonitor_CheckExposure_MissingOwner(t *testing.T) {
	_, _, m := newTestMonitor(t)

	_, err := m.CheckExposure(context.Background(), domain.OwnerID{},
		domain.ExposureQuery{Email: "victim@example.com"})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestMonitor_CheckExposure_StorageFailureKeepsReport(t *testing.T) {
	_, st, m := newTestMonitor(t, &fakeClient{name: "hibp"})

	st.EXPECT().StoreReport(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	report, err := m.CheckExposure(context.Background(), newOwner(),
		domain.ExposureQuery{Email: "victim@example.com"})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.True(t, monitor.IsRetryable(err))

	// the computed report is returned so the caller can retry the save
	require.NotNil(t, report)
	require.True(t, report.ID.IsZero())
	require.Equal(t, domain.RiskLow, report.RiskLevel)
}

func TestMonitor_AssessHygiene_PersistsReport(t *testing.T) {
	_, st, m := newTestMonitor(t)

	owner := newOwner()
	st.EXPECT().StoreReport(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, report domain.Report) (*domain.Report, error) {
			require.Equal(t, domain.ReportKindHygiene, report.Kind)
			require.Equal(t, domain.RiskLow, report.RiskLevel)
			require.Equal(t, 100, report.Hygiene.OverallScore)
			report.ID = domain.ReportID(uuid.New())

			return &report, nil
		})

	report, err := m.AssessHygiene(context.Background(), owner, completeAnswers(t))
	require.NoError(t, err)
	require.False(t, report.ID.IsZero())
}

func TestMonitor_AssessHygiene_IncompleteSubmission(t *testing.T) {
	_, _, m := newTestMonitor(t)

	answers := completeAnswers(t)
	for id := range answers {
		delete(answers, id)

		break
	}

	_, err := m.AssessHygiene(context.Background(), newOwner(), answers)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestMonitor_Report_NotFound(t *testing.T) {
	_, st, m := newTestMonitor(t)

	st.EXPECT().ReportByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := m.Report(context.Background(), newOwner(), domain.ReportID(uuid.New()))
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestMonitor_History_DefaultsAndPassThrough(t *testing.T) {
	_, st, m := newTestMonitor(t)

	owner := newOwner()
	st.EXPECT().OwnerReports(gomock.Any(), owner, domain.ReportKindHygiene, uint(1), uint(20)).
		Return(storage.ReportPage{
			Reports:    []domain.Report{{Kind: domain.ReportKindHygiene}},
			TotalPages: 3,
		}, nil)

	reports, totalPages, err := m.History(context.Background(), owner, domain.ReportKindHygiene, 0, 0)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, uint(3), totalPages)
}

func TestMonitor_History_UnknownKind(t *testing.T) {
	_, _, m := newTestMonitor(t)

	_, _, err := m.History(context.Background(), newOwner(), "BOGUS", 1, 10)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestMonitor_Delete(t *testing.T) {
	_, st, m := newTestMonitor(t)

	owner := newOwner()
	id := domain.ReportID(uuid.New())

	st.EXPECT().DeleteReport(gomock.Any(), owner, id).
		Return(&domain.Report{ID: id}, nil)
	require.NoError(t, m.Delete(context.Background(), owner, id))

	st.EXPECT().DeleteReport(gomock.Any(), owner, id).Return(nil, nil)
	err := m.Delete(context.Background(), owner, id)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
