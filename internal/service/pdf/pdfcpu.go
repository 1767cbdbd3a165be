package service

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/proxionix/unit-tools/internal/model"
)

type pdfcpuEngine struct {
	conf *pdfmodel.Configuration
}

// NewPDFCPUEngine returns the pdfcpu-backed FormEngine used in production.
func NewPDFCPUEngine() *pdfcpuEngine {
	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed
	return &pdfcpuEngine{conf: conf}
}

func (e *pdfcpuEngine) Validate(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	return api.ValidateFile(path, e.conf)
}

func (e *pdfcpuEngine) FieldNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	fields, err := api.FormFields(f, e.conf)
	if err != nil {
		// pdfcpu reports a missing AcroForm as an error; map it to the
		// sentinel so callers can degrade instead of aborting.
		if strings.Contains(strings.ToLower(err.Error()), "no form") {
			return nil, model.ErrNoFormFields
		}
		return nil, err
	}

	names := make([]string, 0, len(fields))
	for _, fld := range fields {
		name := fld.Name
		if name == "" {
			name = fld.ID
		}
		names = append(names, name)
	}
	return names, nil
}

// The fill payload mirrors the JSON schema of pdfcpu's form export, which is
// what FillFormFile consumes.
type fillData struct {
	Forms []formGroup `json:"forms"`
}

type formGroup struct {
	TextFields []textField `json:"textfield,omitempty"`
}

type textField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (e *pdfcpuEngine) Fill(templatePath, outPath string, values map[string]string) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	group := formGroup{TextFields: make([]textField, 0, len(names))}
	for _, name := range names {
		group.TextFields = append(group.TextFields, textField{Name: name, Value: values[name]})
	}

	payload, err := json.Marshal(fillData{Forms: []formGroup{group}})
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "materiel-fill-*.json")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return api.FillFormFile(templatePath, tmp.Name(), outPath, e.conf)
}

// Lock makes every field read-only so the written values are fixed.
func (e *pdfcpuEngine) Lock(inPath, outPath string) error {
	return api.LockFormFieldsFile(inPath, outPath, nil, e.conf)
}
