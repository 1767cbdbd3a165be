package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/proxionix/unit-tools/internal/model"
	"github.com/proxionix/unit-tools/pkg/logger"
)

const (
	templateFR = "FR-Materiel.pdf"
	templateNL = "NL-Materiel.pdf"

	fieldTechName = "name_tech"

	outputPrefix    = "CommandeMateriel_"
	timestampLayout = "20060102_150405"
)

// FormEngine is the document backend: it lists, fills and locks AcroForm
// fields of a template on disk. FieldNames reports model.ErrNoFormFields for
// a well-formed document without a form.
type FormEngine interface {
	Validate(path string) error
	FieldNames(path string) ([]string, error)
	Fill(templatePath, outPath string, values map[string]string) error
	Lock(inPath, outPath string) error
}

// LocaleResolver yields the active display-language tag (user override first,
// system language otherwise).
type LocaleResolver interface {
	Language(ctx context.Context) string
}

type service struct {
	engine       FormEngine
	locales      LocaleResolver
	templatesDir string
	outputDir    string
	now          func() time.Time
}

func NewPDFService(
	engine FormEngine,
	locales LocaleResolver,
	templatesDir string,
	outputDir string,
) *service {
	return &service{
		engine:       engine,
		locales:      locales,
		templatesDir: templatesDir,
		outputDir:    outputDir,
		now:          time.Now,
	}
}

// Generate fills the localized order template with the technician name and
// the a1..a24 quantities and writes a locked copy to a fresh file.
//
// Quantities are clamped against the maxima here again, independently of the
// order state's own clamping; upstream values are never trusted.
func (s *service) Generate(
	ctx context.Context,
	params model.FillOrderParams,
) (*model.GeneratedOrderDocument, error) {
	const op = "pdf.service.Generate"

	id := uuid.New()
	lang := s.locales.Language(ctx)
	templateName := templateFR
	if strings.HasPrefix(strings.ToLower(lang), "nl") {
		templateName = templateNL
	}

	log := logger.With(
		logger.String("generation_id", id.String()),
		logger.String("template", templateName),
		logger.String("language", lang),
	)

	templatePath := filepath.Join(s.templatesDir, templateName)
	if err := s.engine.Validate(templatePath); err != nil {
		log.Error(ctx, "template unusable", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %s: %w", op, templateName, model.ErrTemplateLoad)
	}

	generatedAt := s.now()
	outPath, err := s.reserveOutputPath(generatedAt)
	if err != nil {
		log.Error(ctx, "reserve output path", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	required := append([]string{fieldTechName}, model.Codes()...)

	fieldNames, err := s.engine.FieldNames(templatePath)
	if errors.Is(err, model.ErrNoFormFields) {
		// Degrade to copying the template through unfilled.
		log.Warn(ctx, "template has no fillable fields, copying through")
		if cerr := copyFile(templatePath, outPath); cerr != nil {
			return nil, fmt.Errorf("%s: copy template: %w", op, cerr)
		}
		return &model.GeneratedOrderDocument{
			ID:            id,
			Path:          outPath,
			Language:      lang,
			MissingFields: required,
			GeneratedAt:   generatedAt,
		}, nil
	}
	if err != nil {
		log.Error(ctx, "list template fields", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %s: %w", op, templateName, model.ErrTemplateLoad)
	}

	present := lo.SliceToMap(fieldNames, func(name string) (string, struct{}) {
		return name, struct{}{}
	})
	missing := lo.Filter(required, func(name string, _ int) bool {
		_, ok := present[name]
		return !ok
	})
	for _, name := range missing {
		log.Warn(ctx, "field missing from template", logger.String("field", name))
	}

	values := make(map[string]string, len(required))
	if _, ok := present[fieldTechName]; ok {
		values[fieldTechName] = strings.TrimSpace(params.TechnicianName)
	}
	for _, code := range model.Codes() {
		if _, ok := present[code]; !ok {
			continue
		}
		maxValue, ok := params.Maxima[code]
		if !ok {
			maxValue = model.SentinelMax
		}
		values[code] = strconv.Itoa(clamp(params.Quantities[code], 0, maxValue))
	}

	if err := s.writeFilled(templatePath, outPath, values); err != nil {
		log.Error(ctx, "fill order document", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "order document generated",
		logger.String("path", outPath),
		logger.Int("fields_missing", len(missing)),
	)

	return &model.GeneratedOrderDocument{
		ID:            id,
		Path:          outPath,
		Language:      lang,
		MissingFields: missing,
		GeneratedAt:   generatedAt,
	}, nil
}

// AuditTemplates checks both bundled templates for the required field set
// without generating anything.
func (s *service) AuditTemplates(ctx context.Context) []model.TemplateReport {
	required := append([]string{fieldTechName}, model.Codes()...)

	reports := make([]model.TemplateReport, 0, 2)
	for _, name := range []string{templateFR, templateNL} {
		report := model.TemplateReport{Template: name}
		path := filepath.Join(s.templatesDir, name)

		if err := s.engine.Validate(path); err != nil {
			report.Err = err
			report.Missing = required
			reports = append(reports, report)
			continue
		}

		fieldNames, err := s.engine.FieldNames(path)
		if err != nil && !errors.Is(err, model.ErrNoFormFields) {
			report.Err = err
			report.Missing = required
			reports = append(reports, report)
			continue
		}

		present := lo.SliceToMap(fieldNames, func(n string) (string, struct{}) {
			return n, struct{}{}
		})
		report.Present = fieldNames
		report.Missing = lo.Filter(required, func(n string, _ int) bool {
			_, ok := present[n]
			return !ok
		})
		reports = append(reports, report)
	}

	return reports
}

// writeFilled fills into a scratch file and locks it into place so a failed
// generation never leaves a partial output file behind.
func (s *service) writeFilled(templatePath, outPath string, values map[string]string) error {
	if len(values) == 0 {
		return copyFile(templatePath, outPath)
	}

	scratch := outPath + ".filling"
	if err := s.engine.Fill(templatePath, scratch, values); err != nil {
		_ = os.Remove(scratch)
		return fmt.Errorf("fill: %w", err)
	}
	if err := s.engine.Lock(scratch, outPath); err != nil {
		_ = os.Remove(scratch)
		_ = os.Remove(outPath)
		return fmt.Errorf("lock: %w", err)
	}
	return os.Remove(scratch)
}

// reserveOutputPath builds the timestamped output name. Two generations in
// the same second get distinct files via a counter suffix.
func (s *service) reserveOutputPath(ts time.Time) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", err
	}

	base := outputPrefix + ts.Format(timestampLayout)
	path := filepath.Join(s.outputDir, base+".pdf")
	for n := 2; ; n++ {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
		path = filepath.Join(s.outputDir, fmt.Sprintf("%s_%d.pdf", base, n))
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}

func clamp(v, floor, ceil int) int {
	if v < floor {
		return floor
	}
	if v > ceil {
		return ceil
	}
	return v
}
