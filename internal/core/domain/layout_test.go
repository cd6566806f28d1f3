package domain_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xspring/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultConfigPath",
			got:      domain.DefaultConfigPath("/home/u/.config"),
			expected: filepath.Join("/home/u/.config", "xspring", "config.yaml"),
		},
		{
			name:     "DefaultLogDir",
			got:      domain.DefaultLogDir("/home/u/.cache"),
			expected: filepath.Join("/home/u/.cache", "xspring", "logs"),
		},
		{
			name:     "LogFileName",
			got:      domain.LogFileName(time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)),
			expected: "xspring-2024-03-05.log",
		},
		{
			name:     "UserAgent",
			got:      domain.UserAgent("1.2.3"),
			expected: "xspring/1.2.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestListItem_Axis(t *testing.T) {
	catalog := &domain.Catalog{
		JavaVersion: domain.Axis{Default: "17"},
		BootVersion: domain.Axis{Default: "3.2.0"},
		ProjectType: domain.Axis{Default: "gradle-project"},
		Language:    domain.Axis{Default: "java"},
		Packaging:   domain.Axis{Default: "jar"},
	}

	for item, want := range map[domain.ListItem]string{
		domain.ListJava:      "17",
		domain.ListBoot:      "3.2.0",
		domain.ListType:      "gradle-project",
		domain.ListLanguage:  "java",
		domain.ListPackaging: "jar",
	} {
		axis, ok := item.Axis(catalog)
		assert.True(t, ok, item)
		assert.Equal(t, want, axis.Default, item)
	}

	_, ok := domain.ListDeps.Axis(catalog)
	assert.False(t, ok)
}

func TestValidateServiceURL(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
	}{
		{raw: "https://start.spring.io", valid: true},
		{raw: "http://localhost:8080/initializr", valid: true},
		{raw: "start.spring.io", valid: false},
		{raw: "ftp://start.spring.io", valid: false},
		{raw: "https://", valid: false},
		{raw: "://bad", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			err := domain.ValidateServiceURL(tt.raw)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidServiceURL)
		})
	}
}

func TestParseTimeout(t *testing.T) {
	d, err := domain.ParseTimeout(" 45s ")
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, d)

	for _, raw := range []string{"", "0s", "-5s", "soon"} {
		_, err := domain.ParseTimeout(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidTimeout, raw)
	}
}
