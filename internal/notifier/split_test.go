package notifier

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessage(t *testing.T) {
	t.Run("короткое сообщение не режется", func(t *testing.T) {
		text := "Alerta\nColaborador: Ana"
		assert.Equal(t, []string{text}, SplitMessage(text, 4096))
	})

	t.Run("ровно limit символов", func(t *testing.T) {
		text := strings.Repeat("a", 10)
		assert.Equal(t, []string{text}, SplitMessage(text, 10))
	})

	t.Run("разрез по последнему переводу строки", func(t *testing.T) {
		text := "aaaa bbb\ncc dd\neeeeee"
		parts := SplitMessage(text, 12)
		assert.Equal(t, []string{"aaaa bbb", "cc dd\neeeeee"}, parts)
	})

	t.Run("разрез по пробелу, если нет перевода строки", func(t *testing.T) {
		parts := SplitMessage("alpha beta gamma", 12)
		assert.Equal(t, []string{"alpha beta", "gamma"}, parts)
	})

	t.Run("жесткий разрез без границ", func(t *testing.T) {
		parts := SplitMessage(strings.Repeat("x", 25), 10)
		assert.Equal(t, []string{strings.Repeat("x", 10), strings.Repeat("x", 10), strings.Repeat("x", 5)}, parts)
	})

	t.Run("лимит считается в символах, а не байтах", func(t *testing.T) {
		text := strings.Repeat("ç", 8)
		assert.Equal(t, []string{text}, SplitMessage(text, 8))

		parts := SplitMessage(strings.Repeat("ã", 9), 8)
		require.Len(t, parts, 2)
		assert.Equal(t, 8, utf8.RuneCountInString(parts[0]))
	})

	t.Run("пробелы на границах обрезаются", func(t *testing.T) {
		parts := SplitMessage("abc   \n\n   def ghi", 8)
		assert.Equal(t, []string{"abc", "def ghi"}, parts)
	})

	t.Run("нулевой лимит означает лимит Telegram", func(t *testing.T) {
		text := strings.Repeat("y", TelegramLimit)
		assert.Equal(t, []string{text}, SplitMessage(text, 0))
	})
}

func TestSplitMessage_RoundTrip(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 400; i++ {
		b.WriteString("Colaborador: Fulano de Tal número ")
		b.WriteString(strings.Repeat("z", i%37))
		if i%3 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	text := b.String()

	for _, limit := range []int{50, 333, 4096} {
		parts := SplitMessage(text, limit)
		for _, p := range parts {
			assert.LessOrEqual(t, utf8.RuneCountInString(p), limit)
			assert.NotEmpty(t, p)
		}
		assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(parts, " ")),
			"содержимое должно совпадать с точностью до пробелов (limit=%d)", limit)
	}
}
