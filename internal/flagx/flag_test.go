package flagx

import (
	"os"
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
			name:    "separate value kept",
			args:    []string{"-a", ":8080", "-x", "other"},
			allowed: []string{"-a"},
			want:    []string{"-a", ":8080"},
		},
		{
			name:    "equals form kept",
			args:    []string{"--secret=abc", "-a=:9090"},
			allowed: []string{"-a"},
			want:    []string{"-a=:9090"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-a", "-s", "key"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "x"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"authd", "-a", ":8080", "-c", "conf.json"}
	assert.Equal(t, "conf.json", ConfigFileFlag())

	os.Args = []string{"authd", "-config=settings.json"}
	assert.Equal(t, "settings.json", ConfigFileFlag())

	os.Args = []string{"authd", "-a", ":8080"}
	assert.Equal(t, "", ConfigFileFlag())
}
