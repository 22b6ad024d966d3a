package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avarialab/avaria/internal/domain/ai"
	domain "github.com/avarialab/avaria/internal/domain/analysis"
)

//
// ==== test doubles ====
//

type fakeVision struct {
	text  string
	err   error
	calls int
}

func (f *fakeVision) Describe(_ context.Context, _ []domain.UploadedImage, _ string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeReasoning struct {
	rep        ai.Report
	err        error
	calls      int
	visionText string
}

func (f *fakeReasoning) Synthesize(_ context.Context, visionText, _ string, _ domain.AssetInfo) (ai.Report, error) {
	f.calls++
	f.visionText = visionText
	return f.rep, f.err
}

type fakeRepo struct {
	saved []*domain.Analysis
}

func (f *fakeRepo) Save(_ context.Context, a *domain.Analysis) error {
	f.saved = append(f.saved, a)
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id domain.AnalysisID) (*domain.Analysis, error) {
	for _, a := range f.saved {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) List(_ context.Context) ([]*domain.Analysis, error) { return f.saved, nil }

func (f *fakeRepo) Delete(_ context.Context, id domain.AnalysisID) error {
	for i, a := range f.saved {
		if a.ID == id {
			f.saved = append(f.saved[:i], f.saved[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeArtifacts struct {
	keys []string
}

func (f *fakeArtifacts) UploadJSON(_ context.Context, key string, _ []byte) (string, error) {
	f.keys = append(f.keys, key)
	return "http://minio.local/reports/" + key, nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func jpeg(name string, size int) domain.UploadedImage {
	return domain.UploadedImage{Data: make([]byte, size), MimeType: "image/jpeg", Filename: name}
}

func newService(v *fakeVision, r *fakeReasoning, repo *fakeRepo) *Service {
	return &Service{
		Repo:      repo,
		Vision:    v,
		Reasoning: r,
		Guard:     Guard{MaxImages: 5, MaxFileBytes: 2_990_000},
		Clock:     fixedClock{t: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)},
	}
}

//
// ==== guard ====
//

func TestAnalyzeRejectsBeforeAnyModelCall(t *testing.T) {
	cases := []struct {
		name   string
		images []domain.UploadedImage
		want   error
	}{
		{"no images", nil, domain.ErrNoImages},
		{"six images", []domain.UploadedImage{
			jpeg("1", 10), jpeg("2", 10), jpeg("3", 10), jpeg("4", 10), jpeg("5", 10), jpeg("6", 10),
		}, domain.ErrTooManyImages},
		{"oversized file", []domain.UploadedImage{jpeg("big.jpg", 2_990_001)}, domain.ErrImageTooLarge},
		{"not an image", []domain.UploadedImage{{Data: []byte("%PDF"), MimeType: "application/pdf", Filename: "doc.pdf"}}, domain.ErrInvalidImageType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vision := &fakeVision{text: "descrição"}
			reasoning := &fakeReasoning{}
			repo := &fakeRepo{}
			svc := newService(vision, reasoning, repo)

			_, err := svc.Analyze(context.Background(), AnalyzeCommand{Images: tc.images})
			require.ErrorIs(t, err, tc.want)
			assert.Zero(t, vision.calls, "vision must not be called on rejected input")
			assert.Zero(t, reasoning.calls, "reasoning must not be called on rejected input")
			assert.Empty(t, repo.saved)
		})
	}
}

func TestGuardAcceptsBoundaryInput(t *testing.T) {
	g := Guard{MaxImages: 5, MaxFileBytes: 2_990_000}
	five := []domain.UploadedImage{
		jpeg("1", 2_990_000), jpeg("2", 1), jpeg("3", 1), jpeg("4", 1), jpeg("5", 1),
	}
	require.NoError(t, g.Validate(five))
}

//
// ==== pipeline ====
//

func TestAnalyzeHappyPath(t *testing.T) {
	vision := &fakeVision{text: "para-choque dianteiro amassado, farol direito riscado"}
	reasoning := &fakeReasoning{rep: ai.Report{
		Summary: "Veículo com dois danos",
		DamageItems: []domain.DamageItem{
			{ItemName: "Para-choque Dianteiro", Severity: domain.SeverityHigh, Description: "amassado"},
			{ItemName: "Farol Direito", Severity: domain.SeverityLow, Description: "riscado"},
			{ItemName: "Porta Traseira Esquerda", Severity: domain.SeverityLow, Description: "arranhão"},
		},
	}}
	repo := &fakeRepo{}
	svc := newService(vision, reasoning, repo)

	a, err := svc.Analyze(context.Background(), AnalyzeCommand{
		Images:      []domain.UploadedImage{jpeg("frente.jpg", 1024)},
		Description: "batida no estacionamento",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, vision.calls)
	assert.Equal(t, 1, reasoning.calls)
	assert.Equal(t, vision.text, reasoning.visionText, "reasoning must receive the vision text verbatim")

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC), a.Timestamp)
	assert.Equal(t, 3, a.TotalItems)
	assert.Equal(t, domain.SeverityCounts{Low: 2, Moderate: 0, High: 1}, a.SeverityCounts)
	assert.Equal(t, domain.SeverityHigh, a.OverallSeverity)
	assert.Equal(t, "batida no estacionamento", a.Description)
	// order == model output order
	assert.Equal(t, "Para-choque Dianteiro", a.DamageItems[0].ItemName)
	assert.Equal(t, "Porta Traseira Esquerda", a.DamageItems[2].ItemName)

	// round-trip via the repository
	require.Len(t, repo.saved, 1)
	got, err := svc.Get(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestAnalyzeAssemblerInvariants(t *testing.T) {
	cases := []struct {
		name    string
		items   []domain.DamageItem
		counts  domain.SeverityCounts
		overall domain.Severity
	}{
		{
			"single high",
			[]domain.DamageItem{{ItemName: "Para-choque Dianteiro", Severity: domain.SeverityHigh, Description: "x"}},
			domain.SeverityCounts{High: 1},
			domain.SeverityHigh,
		},
		{
			"moderate beats low",
			[]domain.DamageItem{
				{ItemName: "a", Severity: domain.SeverityLow, Description: "x"},
				{ItemName: "b", Severity: domain.SeverityModerate, Description: "x"},
			},
			domain.SeverityCounts{Low: 1, Moderate: 1},
			domain.SeverityModerate,
		},
		{
			"all low",
			[]domain.DamageItem{
				{ItemName: "a", Severity: domain.SeverityLow, Description: "x"},
				{ItemName: "b", Severity: domain.SeverityLow, Description: "x"},
			},
			domain.SeverityCounts{Low: 2},
			domain.SeverityLow,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newService(&fakeVision{text: "d"}, &fakeReasoning{rep: ai.Report{Summary: "s", DamageItems: tc.items}}, &fakeRepo{})

			a, err := svc.Analyze(context.Background(), AnalyzeCommand{Images: []domain.UploadedImage{jpeg("f.jpg", 10)}})
			require.NoError(t, err)
			assert.Equal(t, len(tc.items), a.TotalItems)
			assert.Equal(t, tc.counts, a.SeverityCounts)
			assert.Equal(t, a.TotalItems, a.SeverityCounts.Low+a.SeverityCounts.Moderate+a.SeverityCounts.High)
			assert.Equal(t, tc.overall, a.OverallSeverity)
		})
	}
}

func TestAnalyzeEmptyReportIsNoDamage(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(&fakeVision{text: "carro impecável"}, &fakeReasoning{rep: ai.Report{Summary: "sem danos"}}, repo)

	_, err := svc.Analyze(context.Background(), AnalyzeCommand{Images: []domain.UploadedImage{jpeg("f.jpg", 10)}})
	require.ErrorIs(t, err, domain.ErrNoDamageFound)
	assert.Empty(t, repo.saved, "a zero-item analysis must never be persisted")
}

func TestAnalyzeVisionFailureShortCircuits(t *testing.T) {
	boom := errors.New("upstream 503")
	reasoning := &fakeReasoning{}
	repo := &fakeRepo{}
	svc := newService(&fakeVision{err: boom}, reasoning, repo)

	_, err := svc.Analyze(context.Background(), AnalyzeCommand{Images: []domain.UploadedImage{jpeg("f.jpg", 10)}})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, reasoning.calls)
	assert.Empty(t, repo.saved)
}

func TestAnalyzeReasoningFailureNotPersisted(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(&fakeVision{text: "d"}, &fakeReasoning{err: domain.ErrInvalidModelOutput}, repo)

	_, err := svc.Analyze(context.Background(), AnalyzeCommand{Images: []domain.UploadedImage{jpeg("f.jpg", 10)}})
	require.ErrorIs(t, err, domain.ErrInvalidModelOutput)
	assert.Empty(t, repo.saved)
}

func TestAnalyzeArchivesReportWhenConfigured(t *testing.T) {
	repo := &fakeRepo{}
	artifacts := &fakeArtifacts{}
	svc := newService(&fakeVision{text: "d"}, &fakeReasoning{rep: ai.Report{
		Summary:     "s",
		DamageItems: []domain.DamageItem{{ItemName: "Porta", Severity: domain.SeverityLow, Description: "x"}},
	}}, repo)
	svc.Artifacts = artifacts

	a, err := svc.Analyze(context.Background(), AnalyzeCommand{Images: []domain.UploadedImage{jpeg("f.jpg", 10)}})
	require.NoError(t, err)
	require.Len(t, artifacts.keys, 1)
	assert.Contains(t, a.ArtifactURL, string(a.ID))
	// the persisted record carries the artifact URL stamped before save
	assert.Equal(t, a.ArtifactURL, repo.saved[0].ArtifactURL)
}

func TestDeleteUnknownIDIsNotFound(t *testing.T) {
	svc := newService(&fakeVision{}, &fakeReasoning{}, &fakeRepo{})

	err := svc.Delete(context.Background(), "never-created")
	require.ErrorIs(t, err, domain.ErrNotFound)
	// second delete behaves identically
	err = svc.Delete(context.Background(), "never-created")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
