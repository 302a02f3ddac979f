package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/shellbridge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfigTemplate_Execute(t *testing.T) {
	custom := domain.NewDefaultConfig()
	custom.Shell = domain.ShellConfig{Program: "bash", Args: []string{"-lc"}}
	custom.Terminal.HistoryLimit = 42

	tests := []struct {
		name         string
		input        ShowConfigTemplateInput
		wantContains []string
	}{
		{
			name:  "nil config renders defaults",
			input: ShowConfigTemplateInput{},
			wantContains: []string{
				"[shell]",
				"[terminal]",
				"[log]",
				`# level = "info"`,
				"# history_limit = 500",
			},
		},
		{
			name:  "custom values",
			input: ShowConfigTemplateInput{Config: custom},
			wantContains: []string{
				`# program = "bash"`,
				`# args = ["-lc"]`,
				"# history_limit = 42",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewShowConfigTemplate()
			out, err := uc.Execute(context.Background(), tt.input)

			require.NoError(t, err)
			require.NotNil(t, out)

			for _, want := range tt.wantContains {
				assert.Contains(t, out.Template, want, "template should contain %q", want)
			}
		})
	}
}
