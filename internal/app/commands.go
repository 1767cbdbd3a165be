package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/proxionix/unit-tools/internal/model"
	"github.com/proxionix/unit-tools/pkg/logger"
)

const usage = `Usage: materiel <command> [flags]

Commands:
  list      show the product catalog (supports -query, -sort, -in-stock)
  generate  fill the order PDF (-first, -last, -qty code=value, -deliver)
  lang      show or set the display language (system|fr|nl|en)
  validate  audit the bundled PDF templates for required fields
`

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("no command given")
	}

	switch args[0] {
	case "list":
		return a.runList(ctx, args[1:])
	case "generate":
		return a.runGenerate(ctx, args[1:])
	case "lang":
		return a.runLang(ctx, args[1:])
	case "validate":
		return a.runValidate(ctx, args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *app) runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	query := fs.String("query", "", "filter by code or localized name")
	sortBy := fs.String("sort", "relevance", "sort order: relevance, name or max")
	inStock := fs.Bool("in-stock", false, "only items with a positive maximum")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mode, err := model.ParseSortMode(*sortBy)
	if err != nil {
		return err
	}

	state, err := a.di.OrderState(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	state.SetQuery(*query)
	state.SetSort(mode)
	if *inStock != state.InStockOnly() {
		state.ToggleInStockOnly()
	}

	lang := a.di.LocaleService(ctx).Language(ctx)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tMAX\tPER")
	for _, it := range state.VisibleItems() {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", it.Code, it.NameFor(lang), it.Max, it.Per)
	}
	return w.Flush()
}

func (a *app) runGenerate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	first := fs.String("first", "", "technician first name")
	last := fs.String("last", "", "technician last name")
	deliver := fs.String("deliver", "none", "what to do with the file: none, preview or email")
	var quantities quantityFlags
	fs.Var(&quantities, "qty", "quantity as code=value, repeatable (e.g. -qty a1=5 -qty a7=2)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	state, err := a.di.OrderState(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	state.SetFirstName(*first)
	state.SetLastName(*last)
	for code, value := range quantities.values {
		state.SetQuantity(code, value)
	}

	doc, err := a.di.OrderDocumentGenerator(ctx).Generate(ctx, model.FillOrderParams{
		TechnicianName: state.FullName(),
		Quantities:     state.QuantitiesClamped(),
		Maxima:         state.Maxima(),
	})
	if err != nil {
		if errors.Is(err, model.ErrTemplateLoad) {
			fmt.Fprintln(os.Stderr, "The order template could not be loaded. Check the templates directory.")
		}
		return err
	}

	fmt.Println(doc.Path)

	switch *deliver {
	case "none", "":
		return nil
	case "preview":
		return a.di.Previewer(ctx).Open(ctx, doc.Path)
	case "email":
		return a.di.EmailComposer(ctx).Compose(ctx, doc.Path)
	default:
		return fmt.Errorf("unknown delivery mode %q", *deliver)
	}
}

func (a *app) runLang(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("lang", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	locales := a.di.LocaleService(ctx)

	if fs.NArg() == 0 {
		fmt.Printf("stored: %s\nactive: %s\n", locales.Current(ctx), locales.Language(ctx))
		return nil
	}

	tag := fs.Arg(0)
	if err := locales.Apply(ctx, tag); err != nil {
		if errors.Is(err, model.ErrInvalidLocale) {
			return fmt.Errorf("language must be one of %s", strings.Join(model.AllowedLocales, ", "))
		}
		return err
	}

	logger.Info(ctx, "display language updated", logger.String("tag", tag))
	return nil
}

func (a *app) runValidate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	reports := a.di.OrderDocumentGenerator(ctx).AuditTemplates(ctx)

	ok := true
	for _, r := range reports {
		switch {
		case r.Err != nil:
			ok = false
			fmt.Printf("%s: unreadable: %v\n", r.Template, r.Err)
		case len(r.Missing) > 0:
			ok = false
			fmt.Printf("%s: %d fields, missing: %s\n",
				r.Template, len(r.Present), strings.Join(r.Missing, ", "))
		default:
			fmt.Printf("%s: OK (%d fields)\n", r.Template, len(r.Present))
		}
	}

	if !ok {
		return errors.New("template validation failed")
	}
	return nil
}

// quantityFlags collects repeatable -qty code=value pairs; each flag value
// may also hold a comma-separated list.
type quantityFlags struct {
	values map[string]int
}

func (f *quantityFlags) String() string {
	pairs := make([]string, 0, len(f.values))
	for code, v := range f.values {
		pairs = append(pairs, fmt.Sprintf("%s=%d", code, v))
	}
	return strings.Join(pairs, ",")
}

func (f *quantityFlags) Set(raw string) error {
	if f.values == nil {
		f.values = make(map[string]int)
	}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, value, found := strings.Cut(pair, "=")
		if !found {
			return fmt.Errorf("expected code=value, got %q", pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("quantity for %q is not a number: %q", code, value)
		}
		f.values[strings.TrimSpace(code)] = n
	}
	return nil
}
