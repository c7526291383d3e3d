package dto

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0))
	assert.Equal(t, 1, TotalPages(1))
	assert.Equal(t, 1, TotalPages(10))
	assert.Equal(t, 2, TotalPages(11))
	assert.Equal(t, 3, TotalPages(25))
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name                      string
		count, page               int
		wantStart, wantEnd, wantP int
	}{
		{"first of three", 25, 1, 0, 10, 1},
		{"middle", 25, 2, 10, 20, 2},
		{"last is short", 25, 3, 20, 25, 3},
		{"page past the end clamps", 25, 9, 20, 25, 3},
		{"page below one clamps", 25, 0, 0, 10, 1},
		{"empty list", 0, 1, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, page := PageBounds(tt.count, tt.page)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.Equal(t, tt.wantP, page)
		})
	}
}

func TestNavRow(t *testing.T) {
	pageData := func(p int) string { return fmt.Sprintf("go_%d", p) }

	t.Run("single page has no controls", func(t *testing.T) {
		assert.Nil(t, NavRow(1, 1, pageData))
		assert.Nil(t, NavRow(1, 0, pageData))
	})

	t.Run("first page has inert prev", func(t *testing.T) {
		row := NavRow(1, 3, pageData)
		require.Len(t, row, 3)
		assert.Equal(t, CallbackNavDisabled, row[0].Data)
		assert.Equal(t, "1/3", row[1].Text)
		assert.Equal(t, "go_2", row[2].Data)
	})

	t.Run("middle page navigates both ways", func(t *testing.T) {
		row := NavRow(2, 3, pageData)
		require.Len(t, row, 3)
		assert.Equal(t, "go_1", row[0].Data)
		assert.Equal(t, "go_3", row[2].Data)
	})

	t.Run("last page has inert next", func(t *testing.T) {
		row := NavRow(3, 3, pageData)
		require.Len(t, row, 3)
		assert.Equal(t, "go_2", row[0].Data)
		assert.Equal(t, CallbackNavDisabled, row[2].Data)
	})
}
