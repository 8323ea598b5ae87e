package refs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckToolID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want ToolIDStatus
	}{
		{
			name: "full toolshed path",
			id:   "toolshed.g2.bx.psu.edu/repos/iuc/bwa/bwa_mem/0.7.17",
			want: ToolIDOK,
		},
		{
			name: "toolshed path with four segments",
			id:   "toolshed.g2.bx.psu.edu/repos/iuc/bwa",
			want: ToolIDMalformed,
		},
		{
			name: "single slash",
			id:   "owner/tool",
			want: ToolIDMalformed,
		},
		{
			name: "builtin upload",
			id:   "upload1",
			want: ToolIDOK,
		},
		{
			name: "builtin collection operation",
			id:   "__APPLY_RULES__",
			want: ToolIDOK,
		},
		{
			name: "interactive tool",
			id:   "interactive_tool_rstudio",
			want: ToolIDOK,
		},
		{
			name: "unknown short id",
			id:   "my_local_tool",
			want: ToolIDUnknownBuiltin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckToolID(tt.id))
		})
	}
}
