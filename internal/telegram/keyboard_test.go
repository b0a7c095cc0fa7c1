package telegram

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/require"
)

func TestNumericCodes(t *testing.T) {
	hours := NumericCodes(0, 24)
	require.Len(t, hours, 24)
	require.Equal(t, "00", hours[0])
	require.Equal(t, "23", hours[23])

	days := NumericCodes(1, 32)
	require.Len(t, days, 31)
	require.Equal(t, "01", days[0])
	require.Equal(t, "31", days[30])
}

func TestGridShapes(t *testing.T) {
	months := Grid(NumericCodes(1, 13), 3, "month")
	require.Len(t, months.InlineKeyboard, 4)
	for _, row := range months.InlineKeyboard {
		require.Len(t, row, 3)
	}
	require.Equal(t, "01", months.InlineKeyboard[0][0].Text)
	require.Equal(t, "month_01", months.InlineKeyboard[0][0].CallbackData)
	require.Equal(t, "month_12", months.InlineKeyboard[3][2].CallbackData)

	days := Grid(NumericCodes(1, 32), 5, "day")
	require.Len(t, days.InlineKeyboard, 7)
	require.Len(t, days.InlineKeyboard[6], 1)
	require.Equal(t, "day_31", days.InlineKeyboard[6][0].CallbackData)

	minutes := Grid([]string{"00", "15", "30", "45"}, 4, "minute")
	require.Len(t, minutes.InlineKeyboard, 1)
	require.Len(t, minutes.InlineKeyboard[0], 4)
	require.Equal(t, "minute_45", minutes.InlineKeyboard[0][3].CallbackData)
}

func TestLargestPhoto(t *testing.T) {
	_, ok := LargestPhoto(nil)
	require.False(t, ok)

	sizes := []models.PhotoSize{
		{FileID: "small", Width: 90, Height: 90},
		{FileID: "big", Width: 1280, Height: 1280},
		{FileID: "medium", Width: 320, Height: 320},
	}
	best, ok := LargestPhoto(sizes)
	require.True(t, ok)
	require.Equal(t, "big", best.FileID)
}
