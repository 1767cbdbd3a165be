package app

import (
	"context"
	"fmt"

	"github.com/proxionix/unit-tools/internal/config"
	"github.com/proxionix/unit-tools/internal/model"
	catalogrepo "github.com/proxionix/unit-tools/internal/repository/catalog"
	settingsrepo "github.com/proxionix/unit-tools/internal/repository/settings"
	localesvc "github.com/proxionix/unit-tools/internal/service/locale"
	ordersvc "github.com/proxionix/unit-tools/internal/service/order"
	pdfsvc "github.com/proxionix/unit-tools/internal/service/pdf"
	"github.com/proxionix/unit-tools/internal/share/email"
	"github.com/proxionix/unit-tools/internal/share/preview"
)

type CatalogLoader interface {
	Load(ctx context.Context) ([]model.OrderItem, error)
}

type LocaleManager interface {
	Language(ctx context.Context) string
	Current(ctx context.Context) string
	Apply(ctx context.Context, tag string) error
}

type OrderDocumentGenerator interface {
	Generate(ctx context.Context, params model.FillOrderParams) (*model.GeneratedOrderDocument, error)
	AuditTemplates(ctx context.Context) []model.TemplateReport
}

type Previewer interface {
	Open(ctx context.Context, path string) error
}

type EmailComposer interface {
	Compose(ctx context.Context, attachmentPath string) error
}

type di struct {
	catalogRepository CatalogLoader
	settingsStore     localesvc.SettingsStore
	locales           LocaleManager
	formEngine        pdfsvc.FormEngine
	generator         OrderDocumentGenerator
	previewer         Previewer
	emailComposer     EmailComposer

	catalog    []model.OrderItem
	orderState *ordersvc.State
}

func NewDI() *di { return &di{} }

func (d *di) CatalogRepository(_ context.Context) CatalogLoader {
	if d.catalogRepository == nil {
		d.catalogRepository = catalogrepo.NewCatalogRepository(config.C().Catalog.Path())
	}

	return d.catalogRepository
}

func (d *di) SettingsStore(_ context.Context) localesvc.SettingsStore {
	if d.settingsStore == nil {
		path := config.C().Settings.Path()
		if path == "" {
			defaultPath, err := settingsrepo.DefaultPath()
			if err != nil {
				panic(fmt.Sprintf("failed to resolve settings path: %v", err))
			}
			path = defaultPath
		}
		d.settingsStore = settingsrepo.NewSettingsRepository(path)
	}

	return d.settingsStore
}

func (d *di) LocaleService(ctx context.Context) LocaleManager {
	if d.locales == nil {
		d.locales = localesvc.NewLocaleService(d.SettingsStore(ctx))
	}

	return d.locales
}

func (d *di) FormEngine(_ context.Context) pdfsvc.FormEngine {
	if d.formEngine == nil {
		d.formEngine = pdfsvc.NewPDFCPUEngine()
	}

	return d.formEngine
}

func (d *di) OrderDocumentGenerator(ctx context.Context) OrderDocumentGenerator {
	if d.generator == nil {
		cfg := config.C()
		d.generator = pdfsvc.NewPDFService(
			d.FormEngine(ctx),
			d.LocaleService(ctx),
			cfg.Documents.TemplatesDir(),
			cfg.Documents.OutputDir(),
		)
	}

	return d.generator
}

func (d *di) Catalog(ctx context.Context) ([]model.OrderItem, error) {
	if d.catalog == nil {
		items, err := d.CatalogRepository(ctx).Load(ctx)
		if err != nil {
			return nil, err
		}
		d.catalog = items
	}

	return d.catalog, nil
}

func (d *di) OrderState(ctx context.Context) (*ordersvc.State, error) {
	if d.orderState == nil {
		items, err := d.Catalog(ctx)
		if err != nil {
			return nil, err
		}
		d.orderState = ordersvc.NewState(items)
	}

	return d.orderState, nil
}

func (d *di) Previewer(_ context.Context) Previewer {
	if d.previewer == nil {
		d.previewer = preview.NewLauncher()
	}

	return d.previewer
}

func (d *di) EmailComposer(_ context.Context) EmailComposer {
	if d.emailComposer == nil {
		cfg := config.C()
		d.emailComposer = email.NewComposer(
			cfg.Mail.Recipient(),
			cfg.Mail.Subject(),
			cfg.Mail.Body(),
		)
	}

	return d.emailComposer
}
