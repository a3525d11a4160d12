package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolPrefix(t *testing.T) {
	assert.Equal(t, "SPV_psMain_", SymbolPrefix(FormatSPV, "psMain"))
	assert.Equal(t, "DXBC_vsMain2D_", SymbolPrefix(FormatDXBC, "vsMain2D"))
}

func TestSymbolPrefixDistinctEntries(t *testing.T) {
	tasks := DefaultTasks()
	for _, f := range Formats {
		seen := map[string]string{}
		for _, task := range tasks {
			p := SymbolPrefix(f, task.Entry)
			if other, ok := seen[p]; ok {
				t.Fatalf("prefix %s shared by %s and %s", p, other, task.Entry)
			}
			seen[p] = task.Entry
		}
	}
}

func TestFormatsPassOrder(t *testing.T) {
	assert.Equal(t, []Format{FormatSPV, FormatDXBC}, Formats)
	assert.Equal(t, ".spv", FormatSPV.Ext())
	assert.Equal(t, ".dxbc", FormatDXBC.Ext())
}

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile("ps_5_0")
	assert.NoError(t, err)
	assert.Equal(t, ProfilePixel5, p)

	_, err = ParseProfile("cs_5_0")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		tasks   []Task
		wantErr string
	}{
		{name: "default list", tasks: DefaultTasks()},
		{name: "empty", tasks: nil, wantErr: "no shader tasks"},
		{
			name:    "bad identifier",
			tasks:   []Task{{Source: "a.hlsl", Entry: "ps-main", Profile: ProfilePixel5}},
			wantErr: "not a valid identifier",
		},
		{
			name:    "leading digit",
			tasks:   []Task{{Source: "a.hlsl", Entry: "1main", Profile: ProfilePixel5}},
			wantErr: "not a valid identifier",
		},
		{
			name:    "unknown profile",
			tasks:   []Task{{Source: "a.hlsl", Entry: "main", Profile: "gs_5_0"}},
			wantErr: "unknown target profile",
		},
		{
			name: "duplicate entry",
			tasks: []Task{
				{Source: "a.hlsl", Entry: "main", Profile: ProfilePixel5},
				{Source: "b.hlsl", Entry: "main", Profile: ProfileVertex5},
			},
			wantErr: "duplicate entry point",
		},
		{
			name:    "missing source",
			tasks:   []Task{{Entry: "main", Profile: ProfilePixel5}},
			wantErr: "empty source path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.tasks)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
