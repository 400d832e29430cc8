package main

import (
	"bytes"
	"testing"

	"github.com/jonathan/outfit-recommender/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStructured(t *testing.T) {
	v := map[string]string{"category": "hot"}

	tests := []struct {
		format  string
		want    string
		wantErr string
	}{
		{format: config.FormatJSON, want: "{\n  \"category\": \"hot\"\n}\n"},
		{format: config.FormatYAML, want: "category: hot\n"},
		{format: config.FormatText, wantErr: `unsupported output format "text"`},
		{format: "xml", wantErr: `unsupported output format "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := writeStructured(&buf, tt.format, v)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, buf.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
