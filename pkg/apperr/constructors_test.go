package apperr

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type component struct{}

func TestConstructors(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name  string
		got   *Error
		want  *Error
		key   MessageKey
		cause error
	}{
		{
			name: "NotImplemented",
			got:  NotImplemented(),
			want: New(MsgNotImplemented),
			key:  MsgNotImplemented,
		},
		{
			name: "NotSupported",
			got:  NotSupported("testObject"),
			want: New(MsgNotSupported, "testObject"),
			key:  MsgNotSupported,
		},
		{
			name:  "FailedToInitializeComponent",
			got:   FailedToInitializeComponent("testObject", cause),
			want:  Wrap(cause, MsgFailedToInitializeComponent, "string", cause),
			key:   MsgFailedToInitializeComponent,
			cause: cause,
		},
		{
			name: "FailedToInitializeComponentDetail",
			got:  FailedToInitializeComponentDetail("testObject", "a message."),
			want: New(MsgFailedToInitializeComponent, "string", "a message."),
			key:  MsgFailedToInitializeComponent,
		},
		{
			name: "UnsupportedDateString",
			got:  UnsupportedDateString("1/1/1"),
			want: New(MsgUnsupportedDate, "1/1/1"),
			key:  MsgUnsupportedDate,
		},
		{
			name: "PreGenerated",
			got:  PreGenerated("report"),
			want: New(MsgPreGenerated, "report"),
			key:  MsgPreGenerated,
		},
		{
			name:  "MissingResourceBundle",
			got:   MissingResourceBundle("bundleName", cause),
			want:  Wrap(cause, MsgMissingResourceBundle, "bundleName", cause),
			key:   MsgMissingResourceBundle,
			cause: cause,
		},
		{
			name: "NoResourceBundle",
			got:  NoResourceBundle(),
			want: New(MsgNoResourceBundle),
			key:  MsgNoResourceBundle,
		},
		{
			name: "InvalidParameterValue",
			got:  InvalidParameterValue("name", "value"),
			want: New(MsgInvalidValue, "name", "value"),
			key:  MsgInvalidValue,
		},
		{
			name: "InvalidParameterValues",
			got:  InvalidParameterValues("name", "value, value"),
			want: New(MsgInvalidValues, "name", "value, value"),
			key:  MsgInvalidValues,
		},
		{
			name: "MissingParameterValue",
			got:  MissingParameterValue("name"),
			want: New(MsgMissingValue, "name"),
			key:  MsgMissingValue,
		},
		{
			name: "MissingParameterValues",
			got:  MissingParameterValues("name"),
			want: New(MsgMissingValues, "name"),
			key:  MsgMissingValues,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.got.Error(), "message should not be empty")
			assert.True(t, tt.got.Equal(tt.want), "got %q, want %q", tt.got, tt.want)
			assert.Equal(t, tt.want.Hash(), tt.got.Hash())
			assert.Equal(t, Key(tt.key), tt.got.Key())
			assert.Equal(t, KindApplication, tt.got.Kind())
			assert.Equal(t, tt.cause, tt.got.Cause())
		})
	}
}

func TestConstructors_NotImplementedTwice(t *testing.T) {
	first := NotImplemented()
	second := NotImplemented()

	assert.NotSame(t, first, second)
	assert.True(t, first.Equal(second))
	assert.ErrorIs(t, first, second)
}

func TestConstructors_MissingResourceBundleMessage(t *testing.T) {
	err := MissingResourceBundle("bundleName", errors.New("not found"))
	assert.Equal(t, `Missing resource bundle "bundleName": not found`, err.Error())
}

func TestConstructors_InvalidParameterValuesWithListHelpers(t *testing.T) {
	names := []string{"width", "height"}
	err := InvalidParameterValues(CommaDelimited(names), KeyValueCommaDelimited(names, []any{-1, 0}))
	assert.Equal(t, `Parameters "width, height" have invalid values "width: -1, height: 0".`, err.Error())
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		arg  any
		want any
	}{
		{name: "nil", arg: nil, want: nil},
		{name: "builtin", arg: "x", want: "string"},
		{name: "named", arg: component{}, want: "apperror/pkg/apperr.component"},
		{name: "pointer", arg: &component{}, want: "apperror/pkg/apperr.component"},
		{name: "reflect type", arg: reflect.TypeOf(component{}), want: "apperror/pkg/apperr.component"},
		{name: "unnamed", arg: []int{}, want: "[]int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, typeName(tt.arg))
		})
	}
}

func TestFailedToInitializeComponent_NamesComponent(t *testing.T) {
	err := FailedToInitializeComponentDetail(&component{}, "no config")
	assert.Equal(t, `Failed to initialize component "apperror/pkg/apperr.component": "no config"`, err.Error())
}
