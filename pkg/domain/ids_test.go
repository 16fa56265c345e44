package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "billsplit/pkg/domain-errors"
)

// TestParseCNP_TrustBoundary validates that user identifiers entering the API are
// rejected before they reach any store.
func TestParseCNP_TrustBoundary(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CNP
		wantErr bool
	}{
		{"SQL injection attempt", "'; DROP TABLE users;--", "", true},
		{"Path traversal", "../../../etc/passwd", "", true},
		{"Null byte injection", "1960101\x00123456", "", true},
		{"Oversized input", strings.Repeat("1", 1000), "", true},
		{"Unicode zero-width space", "1960101\u200B123456", "", true},
		{"Empty string", "", "", true},
		{"Whitespace only", "   ", "", true},

		{"Thirteen digit CNP", "1960101123456", "1960101123456", false},
		{"Surrounding whitespace is trimmed", "  5000101223344 ", "5000101223344", false},
		{"Alphanumeric key", "user42", "user42", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCNP(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReportID(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseReportID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseReportID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseReportID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		raw := uuid.New()
		id, err := ParseReportID(raw.String())
		require.NoError(t, err)
		assert.Equal(t, ReportID(raw), id)
		assert.Equal(t, raw.String(), id.String())
		assert.False(t, id.IsNil())
	})
}

func TestReportID_JSON(t *testing.T) {
	raw := NewReportID()

	encoded, err := json.Marshal(struct {
		ID ReportID `json:"id"`
	}{ID: raw})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+raw.String()+`"}`, string(encoded))

	var decoded struct {
		ID ReportID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, raw, decoded.ID)

	err = json.Unmarshal([]byte(`{"id":"00000000-0000-0000-0000-000000000000"}`), &decoded)
	require.Error(t, err)
}
