package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"apperror/internal/config"
	"apperror/pkg/apperr"
)

func newTestManager(t *testing.T) (*CatalogManager, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return NewCatalogManager(apperr.Default(), NewPrinter(&out), zap.NewNop()), &out
}

func TestCatalogManager_Render(t *testing.T) {
	tests := []struct {
		name string
		key  string
		args []string
		lang string
		want string
	}{
		{name: "no args", key: "MSG_NOT_IMPLEMENTED", want: "Not implemented.\n"},
		{name: "string and number", key: "MSG_INVALID_VALUE", args: []string{"timeout", "-1"}, want: "Parameter \"timeout\" has an invalid value -1.\n"},
		{name: "list", key: "MSG_MISSING_VALUES", args: []string{"[width, height]"}, want: "Parameters \"width\", \"height\" are missing values.\n"},
		{name: "null", key: "MSG_NOT_SUPPORTED", args: []string{"null"}, want: "<null> is not supported.\n"},
		{name: "missing arg", key: "MSG_INVALID_VALUE", args: []string{"timeout"}, want: "Parameter \"timeout\" has an invalid value <null>.\n"},
		{name: "french", key: "MSG_NOT_IMPLEMENTED", lang: "fr", want: "Non implémenté.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, out := newTestManager(t)
			require.NoError(t, m.Render(tt.key, tt.args, tt.lang, false))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestCatalogManager_RenderVerbose(t *testing.T) {
	m, out := newTestManager(t)
	require.NoError(t, m.Render("MSG_NOT_IMPLEMENTED", nil, "", true))
	assert.Contains(t, out.String(), "kind=ApplicationException | key=MSG_NOT_IMPLEMENTED")
}

func TestCatalogManager_RenderUnknownKey(t *testing.T) {
	m, out := newTestManager(t)
	err := m.Render("MSG_DOES_NOT_EXIST", nil, "", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Equal(t, `Parameter "key" has an invalid value "MSG_DOES_NOT_EXIST".`, apperr.UserString(err))
	assert.Empty(t, out.String(), "errors are reported by the caller")
}

func TestCatalogManager_RenderTooManyArguments(t *testing.T) {
	m, out := newTestManager(t)
	err := m.Render("MSG_NOT_IMPLEMENTED", []string{"a", "b"}, "", false)

	assert.ErrorIs(t, err, ErrTooManyArguments)
	assert.Contains(t, apperr.UserString(err), `"a, b"`)
	assert.Empty(t, out.String())
}

func TestCatalogManager_RenderInvalidLanguage(t *testing.T) {
	m, _ := newTestManager(t)
	err := m.Render("MSG_NOT_IMPLEMENTED", nil, "not a tag!", false)

	assert.ErrorIs(t, err, config.ErrInvalidLanguage)
}

func TestCatalogManager_ListKeys(t *testing.T) {
	m, out := newTestManager(t)
	require.NoError(t, m.ListKeys(""))

	for _, key := range apperr.MessageKeys() {
		assert.Contains(t, out.String(), key.String())
	}
}

func TestCatalogManager_ShowInfo(t *testing.T) {
	m, out := newTestManager(t)
	require.NoError(t, m.ShowInfo())

	assert.Contains(t, out.String(), "ApplicationException")
	assert.Contains(t, out.String(), "en, fr")
}

func TestCatalogManager_ExportYAML(t *testing.T) {
	m, out := newTestManager(t)
	require.NoError(t, m.Export(config.OutputYAML, "fr"))

	var got map[string]string
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Len(t, got, len(apperr.MessageKeys()))
	assert.Equal(t, "Non implémenté.", got["MSG_NOT_IMPLEMENTED"])
}

func TestCatalogManager_ExportTOMLIsACatalog(t *testing.T) {
	m, out := newTestManager(t)
	require.NoError(t, m.Export(config.OutputTOML, ""))

	var got map[string]string
	require.NoError(t, toml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "%s is not supported.", got["MSG_NOT_SUPPORTED"])

	c, err := apperr.LoadCatalog(apperr.KindApplication, fstest.MapFS{
		"ApplicationException.en.toml": {Data: out.Bytes()},
	}, apperr.MessageKeys())
	require.NoError(t, err)
	assert.Equal(t, apperr.Default().Entries(""), c.Entries(""))
}

func TestCatalogManager_ExportKeepsDeclarationOrder(t *testing.T) {
	for _, format := range []string{config.OutputYAML, config.OutputTOML} {
		t.Run(format, func(t *testing.T) {
			m, out := newTestManager(t)
			require.NoError(t, m.Export(format, ""))

			first := strings.Index(out.String(), "MSG_NOT_IMPLEMENTED")
			second := strings.Index(out.String(), "MSG_FAILED_TO_INITIALIZE_COMPONENT")
			require.NotEqual(t, -1, first)
			require.NotEqual(t, -1, second)
			assert.Less(t, first, second)
		})
	}
}

func TestCatalogManager_ExportTable(t *testing.T) {
	m, out := newTestManager(t)
	require.NoError(t, m.Export(config.OutputTable, ""))
	assert.Contains(t, out.String(), "MSG_PRE_GENERATED")
}

func TestCatalogManager_ExportUnsupportedFormat(t *testing.T) {
	m, _ := newTestManager(t)
	err := m.Export("json", "")

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.True(t, errors.Is(err, apperr.NotSupported("json")))
}

func TestCatalogCmd(t *testing.T) {
	m, out := newTestManager(t)
	cmd := NewCatalogCmdWithManager(m, config.OutputYAML)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"render", "MSG_MISSING_VALUE", "name"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Parameter \"name\" is missing a value.\n", out.String())
}

func TestCatalogCmd_Quiet(t *testing.T) {
	m, out := newTestManager(t)
	cmd := NewCatalogCmdWithManager(m, config.OutputYAML)
	cmd.SetArgs([]string{"keys", "--quiet"})

	require.NoError(t, cmd.Execute())
	assert.NotContains(t, out.String(), "Message Keys")
	assert.Contains(t, out.String(), "MSG_NOT_IMPLEMENTED")
}

func TestCatalogCmd_ExportDefaultFormat(t *testing.T) {
	m, out := newTestManager(t)
	cmd := NewCatalogCmdWithManager(m, config.OutputTOML)
	cmd.SetArgs([]string{"export"})

	require.NoError(t, cmd.Execute())
	var got map[string]string
	require.NoError(t, toml.Unmarshal(out.Bytes(), &got))
	assert.Contains(t, got, "MSG_NO_RESOURCE_BUNDLE")
}

func TestDecodeArg(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{raw: "plain", want: "plain"},
		{raw: "42", want: 42},
		{raw: "true", want: true},
		{raw: "null", want: nil},
		{raw: "~", want: nil},
		{raw: "", want: ""},
		{raw: "[a, 1]", want: []any{"a", 1}},
		{raw: "key: value", want: "key: value"},
		{raw: "[unterminated", want: "[unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeArg(tt.raw))
		})
	}
}

func TestLogStructuredError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	SetDebugMode(false)
	logStructuredError(logger, apperr.NotImplemented(), "not logged")
	assert.Zero(t, logs.Len())

	SetDebugMode(true)
	t.Cleanup(func() { SetDebugMode(false) })

	cause := errors.New("boom")
	logStructuredError(logger, apperr.FailedToInitializeComponent("store", cause), "Failed")
	logStructuredError(logger, errors.New("plain"), "Plain")

	entries := logs.All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "ApplicationException", fields["error.kind"])
	assert.Equal(t, "MSG_FAILED_TO_INITIALIZE_COMPONENT", fields["error.key"])
	assert.Equal(t, "boom", fields["error.cause"])
	assert.Equal(t, "plain", entries[1].ContextMap()["error"])
}

func TestWithBase(t *testing.T) {
	appErr := withBase(apperr.NotImplemented(), ErrRenderFailed)
	assert.ErrorIs(t, appErr, ErrRenderFailed)
	assert.True(t, apperr.IsError(appErr))

	plain := withBase(errors.New("plain"), ErrExportFailed)
	assert.ErrorIs(t, plain, ErrExportFailed)
	assert.False(t, apperr.IsError(plain))
}
