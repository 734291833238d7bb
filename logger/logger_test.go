package logger

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		verbosity  int
	}{
		{name: "JSON output mode", jsonOutput: true, verbosity: 0},
		{name: "Console output mode", jsonOutput: false, verbosity: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Logger = nil
			JSONOutput = false

			require.NoError(t, Initialize(tt.jsonOutput, tt.verbosity))
			require.NotNil(t, Logger)
			assert.Equal(t, tt.jsonOutput, JSONOutput)

			Logger = zap.NewNop().Sugar()
		})
	}
}

func TestHelpersWithNilLogger(t *testing.T) {
	Logger = nil
	defer func() { Logger = zap.NewNop().Sugar() }()

	assert.NotPanics(t, func() {
		Infow("info")
		Warnw("warn")
		Errorw("error")
		Debugw("debug")
		Cleanup()
	})
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{VerbosityTrace, zapcore.DebugLevel},
		{7, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(LevelName(tt.verbosity), func(t *testing.T) {
			assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity))
		})
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "User", LevelName(0))
	assert.Equal(t, "Debug (-vv)", LevelName(2))
	assert.Equal(t, "Trace (-vvv+)", LevelName(9))
	assert.Equal(t, "Unknown", LevelName(-1))
	assert.True(t, ShouldLogTrace(3))
	assert.False(t, ShouldLogTrace(2))
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("everforest")

	SetTheme("gruvbox")
	assert.Equal(t, gruvbox, colors())

	SetTheme("solarized")
	assert.Equal(t, gruvbox, colors(), "unknown themes are ignored")

	SetTheme("everforest")
	assert.Equal(t, everforest, colors())
}

func TestMinimalEncoder_EncodeEntry(t *testing.T) {
	enc := newMinimalEncoder()
	ent := zapcore.Entry{
		Level:      zapcore.DebugLevel,
		Time:       time.Date(2024, 1, 2, 13, 4, 35, 0, time.UTC),
		LoggerName: "fiscal.batch",
		Message:    "composed name code",
	}
	fields := []zapcore.Field{
		zap.String(FieldNameCode, "OLAL"),
		zap.String(FieldRule, "composite"),
		zap.Int(FieldRow, 3),
		zap.String("ignored", "value"),
	}

	buf, err := enc.EncodeEntry(ent, fields)
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "13:04:35")
	assert.Contains(t, out, "f.batch")
	assert.Contains(t, out, "composed name code")
	assert.Contains(t, out, "OLAL")
	assert.Contains(t, out, "composite")
	assert.Contains(t, out, "row ")
	assert.NotContains(t, out, "ignored")
	assert.NotContains(t, out, "WARN")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestExtractFieldValues_NameSteps(t *testing.T) {
	out := extractFieldValues([]zapcore.Field{
		zap.String(FieldGivenName, "CARLOS"),
		zap.String(FieldPaternal, "LAMAS"),
		zap.String(FieldMaternal, ""),
		zap.String(FieldVerbosity, LevelName(VerbosityTrace)),
	})
	assert.Contains(t, out, "given_name=CARLOS")
	assert.Contains(t, out, "paternal_surname=LAMAS")
	assert.NotContains(t, out, "maternal_surname")
	assert.Contains(t, out, "Trace (-vvv)")
}

func TestMinimalEncoder_Levels(t *testing.T) {
	assert.Contains(t, levelColorString(zapcore.WarnLevel), "WARN")
	assert.Contains(t, levelColorString(zapcore.ErrorLevel), "ERROR")
	assert.Empty(t, levelColorString(zapcore.InfoLevel))
}

func TestExtractFieldValues_Error(t *testing.T) {
	out := extractFieldValues([]zapcore.Field{zap.Any(FieldError, errors.New("bad row"))})
	assert.Contains(t, out, "bad row")
}

func TestAbbreviateName(t *testing.T) {
	assert.Equal(t, "fiscal", abbreviateName("fiscal"))
	assert.Equal(t, "f.tables", abbreviateName("fiscal.tables"))
}
