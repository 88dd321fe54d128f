//go:build unit

package rosterdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefuseInternal(t *testing.T) {
	tests := []struct {
		address string
		blocked bool
	}{
		{"127.0.0.1:443", true},
		{"10.1.2.3:80", true},
		{"172.16.0.9:80", true},
		{"192.168.0.1:80", true},
		{"169.254.169.254:80", true},
		{"0.0.0.0:80", true},
		{"[::1]:443", true},
		{"[fe80::1]:443", true},
		{"[fd00::1]:443", true},
		{"[::ffff:10.0.0.1]:443", true},
		{"142.250.74.110:443", false},
		{"[2607:f8b0:4004:800::200e]:443", false},
	}
	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			err := refuseInternal("tcp", tt.address, nil)
			if tt.blocked {
				assert.ErrorIs(t, err, ErrBlockedHost)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
