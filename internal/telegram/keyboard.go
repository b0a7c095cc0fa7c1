package telegram

import (
	"fmt"

	"github.com/go-telegram/bot/models"
)

// InlineButton creates a single inline keyboard button.
func InlineButton(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// InlineKeyboard creates an inline keyboard from rows of buttons.
func InlineKeyboard(rows ...[]models.InlineKeyboardButton) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: rows,
	}
}

// ButtonRow creates a row of inline buttons.
func ButtonRow(buttons ...models.InlineKeyboardButton) []models.InlineKeyboardButton {
	return buttons
}

// Grid lays out codes as inline buttons in rows of perRow, each button
// labeled with its code and carrying "<prefix>_<code>" as callback data.
func Grid(codes []string, perRow int, prefix string) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	for i := 0; i < len(codes); i += perRow {
		end := i + perRow
		if end > len(codes) {
			end = len(codes)
		}
		var row []models.InlineKeyboardButton
		for _, code := range codes[i:end] {
			row = append(row, InlineButton(code, fmt.Sprintf("%s_%s", prefix, code)))
		}
		rows = append(rows, row)
	}
	return InlineKeyboard(rows...)
}

// NumericCodes returns two-digit codes for the half-open range [from, to).
func NumericCodes(from, to int) []string {
	codes := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		codes = append(codes, fmt.Sprintf("%02d", i))
	}
	return codes
}
