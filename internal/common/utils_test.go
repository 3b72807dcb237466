package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yludeuk/svoyak/models"
)

func TestParseSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{name: "plain", input: "10,10,9,9", want: []int{10, 10, 9, 9}},
		{name: "spaces and trailing comma", input: " 12, 11 ,", want: []int{12, 11}},
		{name: "empty", input: "", want: nil},
		{name: "not a number", input: "10,ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSplit(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, models.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormats(t *testing.T) {
	got, err := ParseFormats("docx, MD,txt")
	require.NoError(t, err)
	assert.Equal(t, []models.OutputFormat{models.FormatDocx, models.FormatMarkdown, models.FormatText}, got)

	_, err = ParseFormats("docx,pdf")
	assert.ErrorIs(t, err, models.ErrInvalidConfig)
}

func TestDefaultPrefix(t *testing.T) {
	a, b := DefaultPrefix(), DefaultPrefix()
	assert.Len(t, a, len("svoyak_")+8)
	assert.NotEqual(t, a, b)
}
