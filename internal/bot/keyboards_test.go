package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsKeyboardLayout(t *testing.T) {
	keyboard := OptionsKeyboard([]string{"a", "b", "c"})

	// two options per row, plus the cancel row
	require.Len(t, keyboard.Keyboard, 3)
	assert.Equal(t, "a", keyboard.Keyboard[0][0].Text)
	assert.Equal(t, "b", keyboard.Keyboard[0][1].Text)
	assert.Equal(t, "c", keyboard.Keyboard[1][0].Text)
	assert.Equal(t, ButtonCancel, keyboard.Keyboard[2][0].Text)
	assert.True(t, keyboard.OneTimeKeyboard)
}
