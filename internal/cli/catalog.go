package cli

// This file implements the "catalog" command for inspecting the message catalog.
// It lists keys, renders messages with arguments and exports translations.

import (
	"bytes"
	"slices"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"apperror/internal/config"
	"apperror/pkg/apperr"
)

// CatalogManager handles catalog operations with injected dependencies.
type CatalogManager struct {
	catalog *apperr.Catalog
	printer *Printer
	logger  *zap.Logger
}

// NewCatalogManager creates a CatalogManager with the given dependencies.
func NewCatalogManager(catalog *apperr.Catalog, printer *Printer, logger *zap.Logger) *CatalogManager {
	return &CatalogManager{
		catalog: catalog,
		printer: printer,
		logger:  logger,
	}
}

// DefaultCatalogManager returns a CatalogManager for the default catalog.
func DefaultCatalogManager(logger *zap.Logger) *CatalogManager {
	return NewCatalogManager(apperr.Default(), DefaultPrinter, logger)
}

// NewCatalogCmd builds the catalog subcommand. output is the default export format.
func NewCatalogCmd(logger *zap.Logger, output string) *cobra.Command {
	mgr := DefaultCatalogManager(logger)
	return NewCatalogCmdWithManager(mgr, output)
}

// NewCatalogCmdWithManager returns the catalog subcommand using the provided manager.
func NewCatalogCmdWithManager(mgr *CatalogManager, output string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the error message catalog",
		Long:  "Commands for listing, rendering and exporting error messages",
	}

	cmd.PersistentFlags().BoolVarP(&mgr.printer.Quiet, "quiet", "q", false, "Suppress headers")

	cmd.AddCommand(mgr.newCatalogInfoCmd())
	cmd.AddCommand(mgr.newCatalogKeysCmd())
	cmd.AddCommand(mgr.newCatalogRenderCmd())
	cmd.AddCommand(mgr.newCatalogExportCmd(output))

	return cmd
}

func (m *CatalogManager) newCatalogInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show catalog information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.ShowInfo()
		},
	}
}

func (m *CatalogManager) newCatalogKeysCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List message keys",
		Long:  "List every message key with its arity and format string",
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.ListKeys(lang)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Language of the format strings (default: catalog language)")

	return cmd
}

func (m *CatalogManager) newCatalogRenderCmd() *cobra.Command {
	var lang string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "render KEY [ARG...]",
		Short: "Render a message",
		Long: `Render the message for KEY with the given arguments.
Arguments are read as YAML: "[a, b]" is a list, "42" a number and "null" a
missing value. Missing arguments render as <null>.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.Render(args[0], args[1:], lang, verbose)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Language to render in (default: catalog language)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print the error with its kind and key")

	return cmd
}

func (m *CatalogManager) newCatalogExportCmd(output string) *cobra.Command {
	var format string
	var lang string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog",
		Long:  "Export the format strings of one language as a table, YAML or a TOML catalog file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.Export(format, lang)
		},
	}

	cmd.Flags().StringVar(&format, "format", output, "Output format (table, yaml, toml)")
	cmd.Flags().StringVar(&lang, "lang", "", "Language to export (default: catalog language)")

	return cmd
}

// ShowInfo displays the catalog kind and languages.
func (m *CatalogManager) ShowInfo() error {
	m.printer.Header("Catalog")

	var languages []string
	for _, tag := range m.catalog.Languages() {
		languages = append(languages, tag.String())
	}
	slices.Sort(languages)

	return m.printer.TableBoxed([][]string{
		{"Property", "Value"},
		{"Kind", string(m.catalog.Kind())},
		{"Language", m.catalog.Language().String()},
		{"Languages", apperr.CommaDelimited(languages)},
		{"Keys", strconv.Itoa(len(m.catalog.Keys()))},
	})
}

// ListKeys displays every key with its arity and format string in lang.
func (m *CatalogManager) ListKeys(lang string) error {
	if err := m.checkLanguage(lang); err != nil {
		return err
	}

	m.printer.Header("Message Keys")
	data := [][]string{{"Key", "Arity", "Format"}}
	for _, entry := range m.catalog.Entries(lang) {
		data = append(data, []string{entry.Key.String(), strconv.Itoa(entry.Key.Arity()), entry.Format})
	}
	return m.printer.Table(data)
}

// Render prints the message for the key named name with rawArgs decoded as
// YAML values. With verbose, the error built from the key is printed as well.
func (m *CatalogManager) Render(name string, rawArgs []string, lang string, verbose bool) error {
	if err := m.checkLanguage(lang); err != nil {
		return err
	}

	key, ok := m.catalog.KeyByName(name)
	if !ok {
		err := withBase(apperr.InvalidParameterValue("key", name), ErrUnknownKey)
		logStructuredError(m.logger, err, "Unknown message key")
		return err
	}
	if len(rawArgs) > key.Arity() {
		surplus := rawArgs[key.Arity():]
		err := withBase(apperr.InvalidParameterValues("args", apperr.CommaDelimited(surplus)), ErrTooManyArguments)
		logStructuredError(m.logger, err, "Too many arguments")
		return err
	}

	args := decodeArgs(rawArgs)
	var (
		msg string
		err error
	)
	if lang == "" {
		msg, err = m.catalog.Format(key, args...)
	} else {
		msg, err = m.catalog.Localize(lang, key, args...)
	}
	if err != nil {
		wrappedErr := withBase(err, ErrRenderFailed)
		logStructuredError(m.logger, wrappedErr, "Failed to render message")
		return wrappedErr
	}
	m.logger.Debug("Rendered message", zap.String("key", name), zap.Int("args", len(args)))

	m.printer.Println(msg)
	if verbose {
		m.printer.Println(apperr.DebugString(m.catalog.New(key, args...)))
	}
	return nil
}

// Export writes the format strings of lang in format.
// The TOML output is a catalog file that LoadCatalog accepts.
func (m *CatalogManager) Export(format, lang string) error {
	if err := m.checkLanguage(lang); err != nil {
		return err
	}

	entries := m.catalog.Entries(lang)
	var err error
	switch format {
	case config.OutputTable:
		return m.ListKeys(lang)
	case config.OutputYAML:
		err = exportYAML(m.printer, entries)
	case config.OutputTOML:
		err = exportTOML(m.printer, entries)
	default:
		unsupported := withBase(apperr.NotSupported(format), ErrUnsupportedFormat)
		logStructuredError(m.logger, unsupported, "Unsupported output format")
		return unsupported
	}
	if err != nil {
		wrappedErr := withBase(err, ErrExportFailed)
		logStructuredError(m.logger, wrappedErr, "Failed to export catalog")
		return wrappedErr
	}
	return nil
}

// exportYAML keeps entries in key declaration order.
func exportYAML(p *Printer, entries []apperr.Entry) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range entries {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Key.String()},
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Format, Style: yaml.DoubleQuotedStyle},
		)
	}
	enc := yaml.NewEncoder(p.out())
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// exportTOML encodes one entry at a time since go-toml sorts map keys.
func exportTOML(p *Printer, entries []apperr.Entry) error {
	var buf bytes.Buffer
	for _, entry := range entries {
		line, err := toml.Marshal(map[string]string{entry.Key.String(): entry.Format})
		if err != nil {
			return err
		}
		buf.Write(line)
	}
	_, err := p.out().Write(buf.Bytes())
	return err
}

func (m *CatalogManager) checkLanguage(lang string) error {
	if lang == "" {
		return nil
	}
	if _, err := language.Parse(lang); err != nil {
		invalid := withBase(apperr.InvalidParameterValue("lang", lang), config.ErrInvalidLanguage)
		logStructuredError(m.logger, invalid, "Invalid language")
		return invalid
	}
	return nil
}

// decodeArgs reads each argument as YAML so that lists, numbers and null can
// be passed from the command line. Mappings and unparsable input stay strings.
func decodeArgs(raw []string) []any {
	args := make([]any, len(raw))
	for i, s := range raw {
		args[i] = decodeArg(s)
	}
	return args
}

func decodeArg(raw string) any {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	switch v.(type) {
	case nil:
		if raw == "null" || raw == "~" {
			return nil
		}
		return raw
	case map[string]any, map[any]any:
		return raw
	}
	return v
}
