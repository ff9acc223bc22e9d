package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specforge-io/specforge-backend/internal/blueprint/domain"
	docdomain "github.com/specforge-io/specforge-backend/internal/documents/domain"
	"github.com/specforge-io/specforge-backend/internal/llm"
	"github.com/specforge-io/specforge-backend/internal/results"
)

type fakeGenerator struct {
	text string
	err  error
	got  string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, _ llm.Options) (string, error) {
	f.got = prompt
	return f.text, f.err
}

type fakeSaver struct {
	err   error
	calls int
}

func (f *fakeSaver) Create(_ context.Context, ownerUID, projectName, title, content string) (*docdomain.Document, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &docdomain.Document{PublicID: "doc_test", ProjectName: projectName, Title: title, Content: content}, nil
}

func genSpec() *domain.Spec {
	return &domain.Spec{
		Meta:  domain.Meta{ProjectName: "Taskboard", Summary: "Task tracking"},
		Stack: domain.Stack{Type: domain.StackFullstack},
		Auth:  domain.Auth{Enabled: true, Roles: []string{"admin"}},
		API:   domain.API{Type: domain.APIRest},
		Tests: domain.Tests{Unit: true},
	}
}

func TestGenerate_Success(t *testing.T) {
	gen := &fakeGenerator{text: "# Taskboard\n..."}
	saver := &fakeSaver{}
	svc := NewGenerationService(gen, llm.Options{}, time.Second, nil, saver)

	out, err := svc.Generate(context.Background(), "user-1", genSpec())
	require.NoError(t, err)
	assert.Equal(t, "# Taskboard\n...", out.Document)
	assert.Contains(t, gen.got, "Taskboard")
	assert.Empty(t, out.Warnings)
	assert.Equal(t, 1, saver.calls)
	assert.True(t, out.Integrity.Valid())
	assert.NotEmpty(t, out.Plan.UnitTests)
}

func TestGenerate_NotConfigured(t *testing.T) {
	svc := NewGenerationService(nil, llm.Options{}, time.Second, nil, nil)
	_, err := svc.Generate(context.Background(), "user-1", genSpec())
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}

func TestGenerate_UpstreamFailureAborts(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	saver := &fakeSaver{}
	svc := NewGenerationService(gen, llm.Options{}, time.Second, nil, saver)

	out, err := svc.Generate(context.Background(), "user-1", genSpec())
	assert.Error(t, err)
	assert.Nil(t, out)
	assert.Zero(t, saver.calls, "nothing is saved when generation fails")
}

func TestGenerate_PersistenceFailureDegrades(t *testing.T) {
	gen := &fakeGenerator{text: "doc"}
	saver := &fakeSaver{err: errors.New("db down")}
	svc := NewGenerationService(gen, llm.Options{}, time.Second, nil, saver)

	out, err := svc.Generate(context.Background(), "user-1", genSpec())
	require.NoError(t, err, "a save failure must not discard the generated document")
	assert.Equal(t, "doc", out.Document)
	assert.Contains(t, out.Warnings, "document generated but not saved")
}

func TestGenerate_AnonymousSkipsSave(t *testing.T) {
	gen := &fakeGenerator{text: "doc"}
	saver := &fakeSaver{}
	svc := NewGenerationService(gen, llm.Options{}, time.Second, nil, saver)

	out, err := svc.Generate(context.Background(), "", genSpec())
	require.NoError(t, err)
	assert.Equal(t, "doc", out.Document)
	assert.Zero(t, saver.calls)
}

func TestGenerate_CachesResult(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := results.NewStore(client)

	gen := &fakeGenerator{text: "doc"}
	svc := NewGenerationService(gen, llm.Options{}, time.Second, store, nil)

	out, err := svc.Generate(context.Background(), "user-1", genSpec())
	require.NoError(t, err)
	require.NotEmpty(t, out.ResultID)

	cached, err := store.Get(context.Background(), "user-1", out.ResultID)
	require.NoError(t, err)
	assert.Equal(t, "doc", cached.Document)
}
