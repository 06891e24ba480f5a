package server_test

import (
	"testing"

	"s3-uploader/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
		want bool
	}{
		{"Default", "8080", true},
		{"Max", "65535", true},
		{"Zero", "0", false},
		{"TooHigh", "70000", false},
		{"NotNumber", "http", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.IsValidPort())
		})
	}
}

func TestConfig_Addr(t *testing.T) {
	assert.Equal(t, ":8080", server.Config{Port: "8080"}.Addr())
}

func TestConfig_BodyLimit(t *testing.T) {
	assert.Equal(t, 32*1024*1024, server.Config{}.BodyLimit())
	assert.Equal(t, 5*1024*1024, server.Config{BodyLimitMB: 5}.BodyLimit())
}
