package formatter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_DrawsMessageAndClearsLine(t *testing.T) {
	var buf bytes.Buffer
	stop := StartSpinner(&buf, "Generating cards")
	stop()
	stop()

	out := buf.String()
	assert.Contains(t, out, "Generating cards")
	assert.Contains(t, out, spinnerFrames[0])
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\r\033[K")))
}
