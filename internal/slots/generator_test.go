package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rheareserve/booking-service/pkg/types"
)

func TestGenerateBlocks(t *testing.T) {
	tests := []struct {
		name     string
		start    types.TimeString
		end      types.TimeString
		duration int
		want     []Block
	}{
		{
			name:     "window divides evenly",
			start:    "09:00",
			end:      "12:00",
			duration: 60,
			want: []Block{
				{Start: "09:00", End: "10:00"},
				{Start: "10:00", End: "11:00"},
				{Start: "11:00", End: "12:00"},
			},
		},
		{
			name:     "trailing remainder is dropped",
			start:    "09:00",
			end:      "09:50",
			duration: 30,
			want:     []Block{{Start: "09:00", End: "09:30"}},
		},
		{
			name:     "window shorter than duration",
			start:    "09:00",
			end:      "09:20",
			duration: 30,
			want:     []Block{},
		},
		{
			name:     "degenerate window",
			start:    "12:00",
			end:      "12:00",
			duration: 15,
			want:     []Block{},
		},
		{
			name:     "inverted window",
			start:    "15:00",
			end:      "09:00",
			duration: 30,
			want:     []Block{},
		},
		{
			name:     "odd duration",
			start:    "10:00",
			end:      "11:30",
			duration: 45,
			want: []Block{
				{Start: "10:00", End: "10:45"},
				{Start: "10:45", End: "11:30"},
			},
		},
		{
			name:     "window ends at midnight boundary",
			start:    "23:00",
			end:      "24:00",
			duration: 30,
			want: []Block{
				{Start: "23:00", End: "23:30"},
				{Start: "23:30", End: "24:00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateBlocks(tt.start, tt.end, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateBlocks_InvalidDuration(t *testing.T) {
	_, err := GenerateBlocks("09:00", "12:00", 0)
	require.ErrorIs(t, err, ErrInvalidDuration)

	_, err = GenerateBlocks("09:00", "12:00", -15)
	require.ErrorIs(t, err, ErrInvalidDuration)
}

// Блоки должны покрывать floor(window/duration) интервалов, идти строго по
// возрастанию, быть смежными и иметь ровно заданную длину
func TestGenerateBlocks_Properties(t *testing.T) {
	windows := []struct {
		start    types.TimeString
		end      types.TimeString
		duration int
	}{
		{"08:00", "20:00", 25},
		{"09:15", "13:40", 30},
		{"00:00", "24:00", 90},
		{"10:00", "10:07", 7},
	}

	for _, w := range windows {
		blocks, err := GenerateBlocks(w.start, w.end, w.duration)
		require.NoError(t, err)

		total, err := w.start.MinutesBetween(w.end)
		require.NoError(t, err)
		assert.Len(t, blocks, total/w.duration)

		for i, b := range blocks {
			length, err := b.Start.MinutesBetween(b.End)
			require.NoError(t, err)
			assert.Equal(t, w.duration, length)

			if i > 0 {
				assert.Equal(t, blocks[i-1].End, b.Start)
				assert.True(t, blocks[i-1].Start.IsBefore(b.Start))
			}
		}
	}
}

func TestIntersect(t *testing.T) {
	start, end, ok := Intersect("09:00", "18:00", "10:00", "20:00")
	require.True(t, ok)
	assert.Equal(t, types.TimeString("10:00"), start)
	assert.Equal(t, types.TimeString("18:00"), end)

	// Вложенное окно
	start, end, ok = Intersect("09:00", "18:00", "11:00", "12:00")
	require.True(t, ok)
	assert.Equal(t, types.TimeString("11:00"), start)
	assert.Equal(t, types.TimeString("12:00"), end)

	// Не пересекаются
	_, _, ok = Intersect("09:00", "12:00", "13:00", "18:00")
	assert.False(t, ok)

	// Граничат — пересечения нет
	_, _, ok = Intersect("09:00", "12:00", "12:00", "18:00")
	assert.False(t, ok)
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps("11:30", "12:00", "11:20", "11:40"))
	assert.False(t, Overlaps("11:30", "12:00", "11:00", "11:30"))
	assert.False(t, Overlaps("11:30", "12:00", "12:00", "12:30"))
	assert.True(t, Overlaps("09:00", "18:00", "10:00", "10:30"))
}
