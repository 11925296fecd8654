package isp_test

import (
	"bytes"
	"testing"

	"github.com/grazierShahid/OOP-context/solid/isp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNotifiers verifies each notifier writes its channel-shaped line.
func TestNotifiers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		notifier func(out *bytes.Buffer) isp.Notifier
		want     string
	}{
		{
			name: "email",
			notifier: func(out *bytes.Buffer) isp.Notifier {
				return isp.EmailNotifier{Out: out, To: "alice@example.com"}
			},
			want: "email to alice@example.com: payment accepted\n",
		},
		{
			name: "sms",
			notifier: func(out *bytes.Buffer) isp.Notifier {
				return isp.SMSNotifier{Out: out, Number: "+15551234"}
			},
			want: "sms to +15551234: payment accepted\n",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			require.NoError(t, tc.notifier(&out).Notify("payment accepted"))
			assert.Equal(t, tc.want, out.String())
		})
	}
}

// TestWriterLogger verifies the two levels and their prefixes.
func TestWriterLogger(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := isp.WriterLogger{Out: &out}

	logger.Info("processing PAY-001")
	logger.Error("processing failed")

	assert.Equal(t, "INFO: processing PAY-001\nERROR: processing failed\n", out.String())
}

// TestZeroValues verifies the nil-writer guard: zero-value notifiers and
// loggers are safe no-ops.
func TestZeroValues(t *testing.T) {
	t.Parallel()

	assert.NoError(t, isp.EmailNotifier{}.Notify("dropped"))
	assert.NoError(t, isp.SMSNotifier{}.Notify("dropped"))
	assert.NotPanics(t, func() {
		isp.WriterLogger{}.Info("dropped")
		isp.WriterLogger{}.Error("dropped")
	})
}
