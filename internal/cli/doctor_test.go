package cli

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunixtng/lunixmon/internal/config"
	"github.com/lunixtng/lunixmon/internal/doctor"
	"github.com/lunixtng/lunixmon/internal/ui"
)

func TestPluralSuffix(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{
			name: "zero returns s",
			n:    0,
			want: "s",
		},
		{
			name: "one returns empty",
			n:    1,
			want: "",
		},
		{
			name: "two returns s",
			n:    2,
			want: "s",
		},
		{
			name: "large number returns s",
			n:    100,
			want: "s",
		},
		{
			name: "negative returns s",
			n:    -1,
			want: "s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pluralSuffix(tt.n)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDoctorOutput_JSONMarshaling(t *testing.T) {
	output := DoctorOutput{
		Categories: []CategoryOutput{
			{
				Name: "DEVICES",
				Results: []doctor.CheckResult{
					{
						Status:     doctor.StatusPass,
						Message:    "Device directory: /dev",
						Suggestion: "",
						Fixable:    false,
					},
				},
			},
			{
				Name: "CONFIG",
				Results: []doctor.CheckResult{
					{
						Status:     doctor.StatusWarn,
						Message:    "No config file found (using built-in defaults)",
						Suggestion: "Run 'lunixmon init' to create a .lunixmon.yaml config file",
						Fixable:    true,
					},
				},
			},
		},
		Summary: SummaryOutput{
			Pass:     1,
			Warn:     1,
			Fail:     0,
			Fixable:  1,
			AllClear: false,
		},
	}

	// Marshal to JSON
	data, err := json.Marshal(output)
	require.NoError(t, err)

	// Unmarshal back
	var decoded DoctorOutput
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	// Verify structure
	assert.Len(t, decoded.Categories, 2)
	assert.Equal(t, "DEVICES", decoded.Categories[0].Name)
	assert.Equal(t, "CONFIG", decoded.Categories[1].Name)
	assert.Len(t, decoded.Categories[0].Results, 1)
	assert.Len(t, decoded.Categories[1].Results, 1)

	// Verify summary
	assert.Equal(t, 1, decoded.Summary.Pass)
	assert.Equal(t, 1, decoded.Summary.Warn)
	assert.Equal(t, 0, decoded.Summary.Fail)
	assert.Equal(t, 1, decoded.Summary.Fixable)
	assert.False(t, decoded.Summary.AllClear)
}

func TestDoctorOutput_EmptyCategories(t *testing.T) {
	output := DoctorOutput{
		Categories: []CategoryOutput{},
		Summary: SummaryOutput{
			Pass:     0,
			Warn:     0,
			Fail:     0,
			Fixable:  0,
			AllClear: true,
		},
	}

	data, err := json.Marshal(output)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"categories":[]`)
	assert.Contains(t, string(data), `"all_clear":true`)
}

func TestCategoryOutput_JSONFields(t *testing.T) {
	cat := CategoryOutput{
		Name: "TERMINAL",
		Results: []doctor.CheckResult{
			{
				Status:     doctor.StatusWarn,
				Message:    "TERM is not set",
				Suggestion: "Use a terminal emulator that sets TERM",
				Fixable:    false,
			},
		},
	}

	data, err := json.Marshal(cat)
	require.NoError(t, err)

	// Verify JSON field names
	assert.Contains(t, string(data), `"name":"TERMINAL"`)
	assert.Contains(t, string(data), `"results":[`)
}

func TestSummaryOutput_AllClear(t *testing.T) {
	tests := []struct {
		name     string
		summary  SummaryOutput
		wantJSON string
	}{
		{
			name: "all pass",
			summary: SummaryOutput{
				Pass:     5,
				Warn:     0,
				Fail:     0,
				Fixable:  0,
				AllClear: true,
			},
			wantJSON: `"all_clear":true`,
		},
		{
			name: "has warnings",
			summary: SummaryOutput{
				Pass:     3,
				Warn:     2,
				Fail:     0,
				Fixable:  1,
				AllClear: false,
			},
			wantJSON: `"all_clear":false`,
		},
		{
			name: "has failures",
			summary: SummaryOutput{
				Pass:     1,
				Warn:     0,
				Fail:     3,
				Fixable:  2,
				AllClear: false,
			},
			wantJSON: `"all_clear":false`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.summary)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.wantJSON)
		})
	}
}

func TestCollectChecks(t *testing.T) {
	checks := collectChecks(config.DefaultConfig())
	assert.NotEmpty(t, checks)

	// Verify categories are present
	categories := make(map[string]bool)
	for _, check := range checks {
		categories[check.Category()] = true
	}

	assert.True(t, categories["DEVICES"], "should have DEVICES checks")
	assert.True(t, categories["CONFIG"], "should have CONFIG checks")
	assert.True(t, categories["TERMINAL"], "should have TERMINAL checks")
}

func TestCollectChecksCount(t *testing.T) {
	// 3 device + 2 config + 3 terminal
	checks := collectChecks(config.DefaultConfig())
	assert.Len(t, checks, 8)
}

// mockCheck implements doctor.Check for testing
type mockCheck struct {
	name     string
	result   doctor.CheckResult
	category string
	fixed    bool
	fixErr   error
}

func (m *mockCheck) Name() string {
	if m.name == "" {
		return "mock_check"
	}
	return m.name
}

func (m *mockCheck) Run() doctor.CheckResult {
	return m.result
}

func (m *mockCheck) Category() string {
	if m.category == "" {
		return "TEST"
	}
	return m.category
}

func (m *mockCheck) Fix() error {
	m.fixed = true
	return m.fixErr
}

func TestAttemptFixes_PassStatus(t *testing.T) {
	// Create a mock check that passes
	results := []doctor.CheckResult{
		{
			Status:  doctor.StatusPass,
			Message: "All good",
			Fixable: true, // Even though fixable, pass status should not attempt fix
		},
	}

	checks := []doctor.Check{
		&mockCheck{result: results[0]},
	}

	newResults := attemptFixes(checks, results)

	// Results should be unchanged for passing checks
	assert.Equal(t, results, newResults)
}

func TestAttemptFixes_FailStatus(t *testing.T) {
	results := []doctor.CheckResult{
		{
			Status:  doctor.StatusFail,
			Message: "Something failed",
			Fixable: true,
		},
	}

	checks := []doctor.Check{
		&mockCheck{
			result: doctor.CheckResult{
				Status:  doctor.StatusPass,
				Message: "Fixed!",
			},
		},
	}

	newResults := attemptFixes(checks, results)

	// After fix attempt, should re-run check
	assert.Equal(t, doctor.StatusPass, newResults[0].Status)
}

func TestAttemptFixes_WarnStatus(t *testing.T) {
	results := []doctor.CheckResult{
		{
			Status:  doctor.StatusWarn,
			Message: "Warning",
			Fixable: true,
		},
	}

	checks := []doctor.Check{
		&mockCheck{
			result: doctor.CheckResult{
				Status:  doctor.StatusPass,
				Message: "Fixed warning!",
			},
		},
	}

	newResults := attemptFixes(checks, results)
	assert.Equal(t, doctor.StatusPass, newResults[0].Status)
}

func TestAttemptFixes_NotFixable(t *testing.T) {
	originalResult := doctor.CheckResult{
		Status:  doctor.StatusFail,
		Message: "Not fixable failure",
		Fixable: false,
	}
	results := []doctor.CheckResult{originalResult}

	mockChk := &mockCheck{result: originalResult}
	checks := []doctor.Check{mockChk}

	newResults := attemptFixes(checks, results)

	// Should not attempt fix for non-fixable check
	assert.False(t, mockChk.fixed)
	assert.Equal(t, originalResult, newResults[0])
}

func TestAttemptFixes_FixError(t *testing.T) {
	originalResult := doctor.CheckResult{
		Status:  doctor.StatusFail,
		Message: "Fixable but will error",
		Fixable: true,
	}
	results := []doctor.CheckResult{originalResult}

	checks := []doctor.Check{
		&mockCheck{
			result: originalResult,
			fixErr: fmt.Errorf("fix failed"),
		},
	}

	newResults := attemptFixes(checks, results)

	// When fix fails, original result is kept
	assert.Equal(t, originalResult, newResults[0])
}

func TestAttemptFixes_MultipleChecks(t *testing.T) {
	results := []doctor.CheckResult{
		{Status: doctor.StatusPass, Message: "Already passing", Fixable: false},
		{Status: doctor.StatusFail, Message: "Failing check", Fixable: true},
		{Status: doctor.StatusWarn, Message: "Warning check", Fixable: true},
		{Status: doctor.StatusFail, Message: "Not fixable", Fixable: false},
	}

	checks := []doctor.Check{
		&mockCheck{result: results[0]},
		&mockCheck{result: doctor.CheckResult{Status: doctor.StatusPass, Message: "Fixed 1"}},
		&mockCheck{result: doctor.CheckResult{Status: doctor.StatusPass, Message: "Fixed 2"}},
		&mockCheck{result: results[3]},
	}

	newResults := attemptFixes(checks, results)

	assert.Equal(t, doctor.StatusPass, newResults[0].Status) // unchanged
	assert.Equal(t, doctor.StatusPass, newResults[1].Status) // fixed
	assert.Equal(t, doctor.StatusPass, newResults[2].Status) // fixed
	assert.Equal(t, doctor.StatusFail, newResults[3].Status) // unchanged, not fixable
}

func TestRenderCheckResult_AllStatuses(t *testing.T) {
	tests := []struct {
		status doctor.CheckStatus
	}{
		{doctor.StatusPass},
		{doctor.StatusWarn},
		{doctor.StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			result := doctor.CheckResult{
				Status:     tt.status,
				Message:    "Test message",
				Suggestion: "Test suggestion",
			}

			// Should not panic
			assert.NotPanics(t, func() {
				renderCheckResult(result, ui.SuccessStyle(), ui.ErrorStyle(), ui.WarningStyle(), ui.MutedStyle())
			})
		})
	}
}

func TestMockCheck_AllMethods(t *testing.T) {
	check := &mockCheck{
		name:     "test_check",
		result:   doctor.CheckResult{Status: doctor.StatusPass, Message: "OK"},
		category: "TEST",
	}

	assert.Equal(t, "test_check", check.Name())
	assert.Equal(t, "TEST", check.Category())
	assert.Equal(t, doctor.StatusPass, check.Run().Status)

	err := check.Fix()
	assert.NoError(t, err)
	assert.True(t, check.fixed)
}
