package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldMigrate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{
			name: "debug 模式默认迁移",
			cfg:  Config{Server: ServerConfig{Mode: "debug"}},
			want: true,
		},
		{
			name: "release 模式默认不迁移",
			cfg:  Config{Server: ServerConfig{Mode: "release"}},
			want: false,
		},
		{
			name: "release 模式下 --migrate 强制迁移",
			cfg:  Config{Server: ServerConfig{Mode: "release"}, ForceMigrate: true},
			want: true,
		},
		{
			name: "migrate-only 同样走强制迁移",
			cfg:  Config{Server: ServerConfig{Mode: "release"}, ForceMigrate: true, MigrateOnly: true},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.ShouldMigrate())
		})
	}
}
