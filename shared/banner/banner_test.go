package banner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFromEnv(t *testing.T) {
	c, ok := colorFromEnv(" Green ")
	assert.True(t, ok)
	assert.Equal(t, "green", c.name)

	c, ok = colorFromEnv("\x1b[38;5;208m")
	assert.True(t, ok)
	assert.Equal(t, "\x1b[38;5;208m", c.code)

	_, ok = colorFromEnv("no-such-color")
	assert.False(t, ok)

	_, ok = colorFromEnv("")
	assert.False(t, ok)
}

func TestTitleColorDefault(t *testing.T) {
	t.Setenv(colorEnv, "")
	t.Setenv("COLORFGBG", "")
	assert.Equal(t, palette[defaultColor], titleColor())

	t.Setenv(colorEnv, "purple")
	assert.Equal(t, "purple", titleColor().name)
}

func TestTitleLinesHaveEqualWidth(t *testing.T) {
	for _, line := range titleLines[1:] {
		assert.Equal(t, len([]rune(titleLines[0])), len([]rune(line)))
	}
}

func TestCentered(t *testing.T) {
	out := centered([]string{"abcd", "toolong"}, 8)
	assert.Equal(t, []string{"  abcd", "toolong", ""}, strings.Split(out, "\n"))
}
