package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-c", "conf.json", "-s", "redis"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=alt.json", "-s", "file"},
			allowed: []string{"-config"},
			want:    []string{"-config=alt.json"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "-y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag at end without value",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next token is a flag, not a value",
			args:    []string{"-c", "-d"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "several allowed flags keep order",
			args:    []string{"-s", "sqlite", "-p", "x.db", "-l", "debug"},
			allowed: []string{"-p", "-s"},
			want:    []string{"-s", "sqlite", "-p", "x.db"},
		},
		{
			name:    "empty",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "/p/short.json", ConfigFile([]string{"-c", "/p/short.json"}))
	assert.Equal(t, "/p/long.json", ConfigFile([]string{"-config", "/p/long.json", "-s", "file"}))
	assert.Equal(t, "/p/2.json", ConfigFile([]string{"-c", "/p/1.json", "-config=/p/2.json"}))
	assert.Empty(t, ConfigFile([]string{"-x", "1"}))
}
