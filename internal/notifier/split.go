package notifier

import (
	"strings"
	"unicode"
)

// TelegramLimit - максимальная длина сообщения Telegram в символах
const TelegramLimit = 4096

// SplitMessage режет текст на части не длиннее limit символов.
// Граница ищется по последнему переводу строки, затем по пробелу, иначе жесткий разрез.
// Пустые части не возвращаются.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 {
		limit = TelegramLimit
	}

	remaining := []rune(text)
	if len(remaining) <= limit {
		return []string{text}
	}

	var parts []string
	for len(remaining) > 0 {
		if len(remaining) <= limit {
			parts = append(parts, string(remaining))
			break
		}

		window := remaining[:limit]
		cut := lastIndexRune(window, '\n')
		if cut == -1 {
			cut = lastIndexRune(window, ' ')
		}
		if cut == -1 {
			cut = limit
		}

		if chunk := strings.TrimRightFunc(string(remaining[:cut]), unicode.IsSpace); chunk != "" {
			parts = append(parts, chunk)
		}
		remaining = []rune(strings.TrimLeftFunc(string(remaining[cut:]), unicode.IsSpace))
	}

	return parts
}

func lastIndexRune(rs []rune, r rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == r {
			return i
		}
	}
	return -1
}
