package notify_test

import (
	"bytes"
	"testing"

	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/notify"
	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/timer"
	fcolor "github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	fcolor.NoColor = true

	m.Run()
}

func TestConvenienceFunctions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		write func(buf *bytes.Buffer)
		want  string
	}{
		{
			name:  "error",
			write: func(buf *bytes.Buffer) { notify.Errorf(buf, "step '%s' failed", "packages") },
			want:  "✗ step 'packages' failed\n",
		},
		{
			name:  "warning",
			write: func(buf *bytes.Buffer) { notify.Warningf(buf, "continuing past optional failure") },
			want:  "⚠ continuing past optional failure\n",
		},
		{
			name:  "activity",
			write: func(buf *bytes.Buffer) { notify.Activityf(buf, "ensuring directory tree") },
			want:  "► ensuring directory tree\n",
		},
		{
			name:  "generate",
			write: func(buf *bytes.Buffer) { notify.Generatef(buf, "created '%s'", "fmaa.yaml") },
			want:  "✚ created 'fmaa.yaml'\n",
		},
		{
			name:  "skip",
			write: func(buf *bytes.Buffer) { notify.Skipf(buf, "directories already present") },
			want:  "○ directories already present\n",
		},
		{
			name:  "success",
			write: func(buf *bytes.Buffer) { notify.Successf(buf, "workspace provisioned") },
			want:  "✔ workspace provisioned\n",
		},
		{
			name:  "info",
			write: func(buf *bytes.Buffer) { notify.Infof(buf, "using built-in manifest") },
			want:  "ℹ using built-in manifest\n",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			testCase.write(&buf)

			assert.Equal(t, testCase.want, buf.String())
		})
	}
}

func TestTitlefUsesCustomEmoji(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	notify.Titlef(&buf, "🚀", "Provision workspace...")

	assert.Equal(t, "🚀 Provision workspace...\n", buf.String())
}

func TestTitlefDefaultsEmoji(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	notify.WriteMessage(notify.Message{
		Type:    notify.TitleType,
		Content: "Provision workspace...",
		Writer:  &buf,
	})

	assert.Equal(t, "ℹ️ Provision workspace...\n", buf.String())
}

func TestMultilineContentIsIndented(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	notify.Errorf(&buf, "write failed\npermission denied")

	assert.Equal(t, "✗ write failed\n  permission denied\n", buf.String())
}

func TestSuccessWithTimerEmitsTimingBlock(t *testing.T) {
	t.Parallel()

	tmr := timer.New()
	tmr.Start()

	var buf bytes.Buffer

	notify.SuccessWithTimerf(&buf, tmr, "workspace provisioned")

	output := buf.String()
	require.Contains(t, output, "✔ workspace provisioned\n")
	require.Contains(t, output, "⏲ current:")
	require.Contains(t, output, "total:")
}

func TestBufferOutputIsNotWrapped(t *testing.T) {
	t.Parallel()

	long := "a long diagnostic message that would normally wrap on a narrow terminal but must stay on one line when captured"

	var buf bytes.Buffer

	notify.Infof(&buf, "%s", long)

	assert.Equal(t, "ℹ "+long+"\n", buf.String())
}
