package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants_Distinct(t *testing.T) {
	fields := []string{
		FieldFile, FieldDataset, FieldChart, FieldStage, FieldDuration,
		FieldCount, FieldDropped, FieldDelimiter, FieldPages, FieldSink,
	}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		assert.NotEmpty(t, f)
		assert.False(t, seen[f], "duplicate field name %q", f)
		seen[f] = true
	}
}
