package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/specforge-io/specforge-backend/internal/blueprint/assembly"
	"github.com/specforge-io/specforge-backend/internal/blueprint/domain"
	"github.com/specforge-io/specforge-backend/internal/blueprint/integrity"
	"github.com/specforge-io/specforge-backend/internal/blueprint/testplan"
	docdomain "github.com/specforge-io/specforge-backend/internal/documents/domain"
	"github.com/specforge-io/specforge-backend/internal/llm"
	"github.com/specforge-io/specforge-backend/internal/results"
)

// DocumentSaver is the slice of the documents repository the generation
// path needs.
type DocumentSaver interface {
	Create(ctx context.Context, ownerUID, projectName, title, content string) (*docdomain.Document, error)
}

// GenerationService orchestrates one generate request: evaluate the spec,
// derive its test plan, build the prompt, call the generator, then park
// and save the result. The engines run regardless of whether generation is
// configured; only the LLM call itself can fail the request.
type GenerationService struct {
	gen     llm.Generator
	opts    llm.Options
	timeout time.Duration
	results *results.Store // optional
	docs    DocumentSaver  // optional
}

func NewGenerationService(gen llm.Generator, opts llm.Options, timeout time.Duration, store *results.Store, docs DocumentSaver) *GenerationService {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GenerationService{
		gen:     gen,
		opts:    opts,
		timeout: timeout,
		results: store,
		docs:    docs,
	}
}

// GenerateOutput is the full response for a generate request. Warnings
// report degraded side effects (result not cached, document not saved)
// that did not fail the request.
type GenerateOutput struct {
	Document  string           `json:"document"`
	ResultID  string           `json:"result_id,omitempty"`
	Integrity integrity.Result `json:"integrity"`
	Plan      testplan.Plan    `json:"test_plan"`
	Warnings  []string         `json:"warnings"`
}

// Generate runs the full pipeline for an already shape-validated spec.
// ownerUID may be empty for anonymous callers; anonymous results are
// cached but not saved.
func (s *GenerationService) Generate(ctx context.Context, ownerUID string, spec *domain.Spec) (*GenerateOutput, error) {
	report := integrity.Evaluate(spec)
	plan := testplan.Derive(spec)
	prompt := assembly.BuildPrompt(spec, report)

	if s.gen == nil {
		return nil, llm.ErrNotConfigured
	}
	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	text, err := s.gen.Generate(genCtx, prompt, s.opts)
	if err != nil {
		return nil, fmt.Errorf("generate document: %w", err)
	}

	out := &GenerateOutput{
		Document:  text,
		Integrity: report,
		Plan:      plan,
		Warnings:  []string{},
	}

	if s.results != nil {
		id, err := s.results.Put(ctx, ownerUID, spec.Meta.ProjectName, text)
		if err != nil {
			log.Printf("failed to cache generation result: %v", err)
			out.Warnings = append(out.Warnings, "result could not be cached")
		} else {
			out.ResultID = id
		}
	}

	if s.docs != nil && ownerUID != "" {
		if _, err := s.docs.Create(ctx, ownerUID, spec.Meta.ProjectName, spec.Meta.ProjectName, text); err != nil {
			log.Printf("failed to save document for %s: %v", ownerUID, err)
			out.Warnings = append(out.Warnings, "document generated but not saved")
		}
	}

	return out, nil
}
