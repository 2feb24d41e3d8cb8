package cert

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Igaki12/news-network-api/domain/quiz"
)

func TestGenerate(t *testing.T) {
	result := &quiz.ExamResult{
		CorrectCount:       9,
		Total:              10,
		Accuracy:           0.9,
		ElapsedMs:          120000,
		EstimatedDeviation: 62,
		Reason:             quiz.FinalizeComplete,
		Passed:             true,
	}

	pdfBytes, err := Generate("Student Alpha", "20240131", result, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdfBytes), "%PDF"))
	assert.Greater(t, len(pdfBytes), 500)
}

func TestGenerateFailingResult(t *testing.T) {
	result := &quiz.ExamResult{
		CorrectCount: 3,
		Total:        10,
		Accuracy:     0.3,
		Reason:       quiz.FinalizeTimeout,
	}

	pdfBytes, err := Generate("Anyone", "20240101", result, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
