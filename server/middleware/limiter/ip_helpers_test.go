// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"net"
	"net/http"
	"testing"
)

func TestGetClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		request    *http.Request
		expectedIP string
	}{
		{
			name: "X-Real-IP only",
			request: &http.Request{
				RemoteAddr: "127.0.0.1:12345", // Use localhost to make it trusted
				Header: http.Header{
					"X-Real-Ip": []string{"2.2.2.2"},
				},
			},
			expectedIP: "2.2.2.2",
		},
		{
			name: "X-Forwarded-For only",
			request: &http.Request{
				RemoteAddr: "192.168.1.1:12345", // Use private IP to make it trusted
				Header: http.Header{
					"X-Forwarded-For": []string{"3.3.3.3, 4.4.4.4"},
				},
			},
			expectedIP: "4.4.4.4",
		},
		{
			name: "Proxy headers from untrusted source are ignored",
			request: &http.Request{
				RemoteAddr: "1.1.1.1:12345",
				Header: http.Header{
					"X-Real-Ip":       []string{"2.2.2.2"},
					"X-Forwarded-For": []string{"3.3.3.3"},
				},
			},
			expectedIP: "1.1.1.1",
		},
		{
			name: "Unix socket peer trusts proxy headers",
			request: &http.Request{
				RemoteAddr: "@",
				Header: http.Header{
					"X-Forwarded-For": []string{"5.5.5.5"},
				},
			},
			expectedIP: "5.5.5.5",
		},
		{
			name:       "Unix socket peer without proxy headers",
			request:    &http.Request{RemoteAddr: "@"},
			expectedIP: "",
		},
		{
			name: "RemoteAddr fallback",
			request: &http.Request{
				RemoteAddr: "1.1.1.1:12345",
			},
			expectedIP: "1.1.1.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ip := getClientIP(tt.request)

			if ip != tt.expectedIP {
				t.Errorf("getClientIP() = %v, want %v", ip, tt.expectedIP)
			}
		})
	}
}

func TestGetNetwork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ip         string
		ipv4Prefix int
		ipv6Prefix int
		expected   string
	}{
		{
			name:       "IPv4 with /24",
			ip:         "192.168.1.1",
			ipv4Prefix: 24,
			ipv6Prefix: 64,
			expected:   "192.168.1.0/24",
		},
		{
			name:       "IPv6 with /64",
			ip:         "2001:db8::1",
			ipv4Prefix: 24,
			ipv6Prefix: 64,
			expected:   "2001:db8::/64",
		},
		{
			name:       "IPv4-mapped IPv6 uses the IPv4 prefix",
			ip:         "::ffff:10.1.2.3",
			ipv4Prefix: 16,
			ipv6Prefix: 48,
			expected:   "10.1.0.0/16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ip := net.ParseIP(tt.ip)

			network := getNetwork(ip, tt.ipv4Prefix, tt.ipv6Prefix)
			if network.String() != tt.expected {
				t.Errorf("getNetwork(%v, %v, %v) = %v, want %v",
					tt.ip, tt.ipv4Prefix, tt.ipv6Prefix, network.String(), tt.expected)
			}
		})
	}
}
