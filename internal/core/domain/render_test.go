package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tabicons/internal/core/domain"
)

func TestParseRenderStyle(t *testing.T) {
	tests := []struct {
		input string
		want  domain.RenderStyle
	}{
		{"", domain.RenderStyleHard},
		{"hard", domain.RenderStyleHard},
		{" Smooth ", domain.RenderStyleSmooth},
		{"SMOOTH", domain.RenderStyleSmooth},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseRenderStyle(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := domain.ParseRenderStyle("blurry")
	assert.ErrorIs(t, err, domain.ErrInvalidRenderStyle)
}

func TestVerifyReport(t *testing.T) {
	report := &domain.VerifyReport{Results: []domain.VerifyResult{
		{Filename: "a.png", Status: domain.VerifyStatusOK},
		{Filename: "b.png", Status: domain.VerifyStatusOK},
	}}
	assert.False(t, report.Failed())
	assert.Equal(t, 2, report.Count(domain.VerifyStatusOK))

	report.Results = append(report.Results, domain.VerifyResult{Filename: "c.png", Status: domain.VerifyStatusDrifted})
	assert.True(t, report.Failed())
	assert.Equal(t, 1, report.Count(domain.VerifyStatusDrifted))
	assert.Equal(t, 0, report.Count(domain.VerifyStatusMissing))
}
