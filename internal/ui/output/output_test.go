package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zix/internal/ui/output"
	"go.trai.ch/zix/internal/ui/style"
)

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(), "NO_COLOR should force Ascii profile")

	t.Setenv("NO_COLOR", "")
	p := output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestNew_Plain(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf, false)

	styled := out.String("hello").Foreground(out.Color(string(style.Green)))
	_, _ = out.WriteString(styled.String())

	assert.Equal(t, "hello", buf.String())
}

func TestNew_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := output.New(&buf, true)

	styled := out.String("hello").Foreground(out.Color(string(style.Red)))
	_, _ = out.WriteString(styled.String())

	assert.Equal(t, "hello", buf.String())
}

func TestNew_Nil(t *testing.T) {
	assert.NotNil(t, output.New(nil, false))
}
