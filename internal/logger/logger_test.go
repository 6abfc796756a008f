package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Infof("loaded %d posts", 3)
	l.Warnf("rollback %s", "like")
	l.Errorf("boom")

	out := buf.String()
	assert.Contains(t, out, "INFO: ")
	assert.Contains(t, out, "loaded 3 posts")
	assert.Contains(t, out, "WARN: ")
	assert.Contains(t, out, "rollback like")
	assert.Contains(t, out, "ERROR: ")
}
