package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ponder/internal/ui/style"
)

func TestStatusIcon(t *testing.T) {
	assert.Equal(t, style.Check, style.StatusIcon("present"))
	assert.Equal(t, style.Dot, style.StatusIcon("pending"))
	assert.Equal(t, style.Circle, style.StatusIcon("absent"))
	assert.Equal(t, style.Tilde, style.StatusIcon("other"))
}
