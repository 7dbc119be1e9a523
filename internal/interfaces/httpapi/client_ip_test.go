package httpapi

import (
	"net/http/httptest"
	"testing"
)

func TestResolveClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "fly header wins", headers: map[string]string{"Fly-Client-IP": "10.0.0.1", "X-Forwarded-For": "10.0.0.2"}, remote: "10.0.0.3:1234", want: "10.0.0.1"},
		{name: "first forwarded hop", headers: map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.2"}, remote: "10.0.0.3:1234", want: "203.0.113.5"},
		{name: "remote addr fallback", remote: "192.0.2.10:5555", want: "192.0.2.10"},
		{name: "garbage header skipped", headers: map[string]string{"X-Real-IP": "not-an-ip"}, remote: "[2001:db8::1]:80", want: "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/leaderboard", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := resolveClientIP(req); got != tt.want {
				t.Fatalf("resolveClientIP()=%q want=%q", got, tt.want)
			}
		})
	}
}
