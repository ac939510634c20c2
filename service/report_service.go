package service

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/dashboard"
	"github.com/ludo-technologies/empdash/internal/markup"
)

// ReportService renders report documents and the standalone selector fragment.
type ReportService struct {
	report *dashboard.Report
	page   markup.Page
}

// NewReportService creates a report service. page supplies the stylesheets
// and scripts; its title is set per render.
func NewReportService(report *dashboard.Report, page markup.Page) *ReportService {
	return &ReportService{report: report, page: page}
}

// Render implements domain.ReportRenderer.
func (s *ReportService) Render(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) ([]byte, error) {
	body, err := s.report.Build(ctx, id, model)
	if err != nil {
		return nil, err
	}

	page := s.page
	page.Title = Title(model)
	doc, err := page.Document(body)
	if err != nil {
		return nil, domain.NewOutputError("failed to render document", err)
	}
	return doc, nil
}

// RenderSelector renders only the entity dropdown for model, without a
// current selection.
func (s *ReportService) RenderSelector(ctx context.Context, model domain.ModelAdapter) ([]byte, error) {
	node, err := s.report.Selector().Build(ctx, domain.NoEntity, model)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := markup.Render(&buf, node); err != nil {
		return nil, domain.NewOutputError("failed to render selector", err)
	}
	return buf.Bytes(), nil
}

// Title is the document title for a model's report.
func Title(model domain.ModelAdapter) string {
	return fmt.Sprintf("%s Report", cases.Title(language.English).String(model.Name()))
}

var _ domain.ReportRenderer = (*ReportService)(nil)
