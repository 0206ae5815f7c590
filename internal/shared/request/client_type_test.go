package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveClientType(t *testing.T) {
	cases := []struct {
		header, ua, want string
	}{
		{"web", "", ClientWeb},
		{" MOBILE ", "Mozilla/5.0", ClientMobile},
		{"", "Mozilla/5.0 (X11; Linux x86_64)", ClientWeb},
		{"", "okhttp/4.12.0", ClientMobile},
		{"", "curl/8.5.0", ClientAPI},
		{"desktop", "", ClientAPI},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ResolveClientType(tc.header, tc.ua), "header=%q ua=%q", tc.header, tc.ua)
	}
	assert.True(t, IsWebClient(ClientWeb))
	assert.False(t, IsWebClient(ClientAPI))
}
