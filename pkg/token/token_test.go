package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCookieRoundTrip(t *testing.T) {
	GenerateSecretKey()

	payload := SessionPayload{UserID: 42, SessionID: "session-1"}
	cookie, err := EncodeSessionCookie(payload)
	require.NoError(t, err)

	decoded, err := DecodeSessionCookie(cookie)
	require.NoError(t, err)
	assert.Equal(t, payload, *decoded)
}

func TestDecodeRejectsTamperedPayload(t *testing.T) {
	GenerateSecretKey()

	cookie, err := EncodeSessionCookie(SessionPayload{UserID: 42, SessionID: "session-1"})
	require.NoError(t, err)

	// 换掉负载但保留原签名，校验必须失败
	forged, err := EncodeSessionCookie(SessionPayload{UserID: 1, SessionID: "session-1"})
	require.NoError(t, err)
	tampered := strings.SplitN(forged, ".", 2)[0] + "." + strings.SplitN(cookie, ".", 2)[1]

	_, err = DecodeSessionCookie(tampered)
	assert.Error(t, err)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	GenerateSecretKey()

	for _, value := range []string{"", "no-dot", "a.b.c!!", "%%%.###"} {
		_, err := DecodeSessionCookie(value)
		assert.Error(t, err, "值 %q 不应通过校验", value)
	}
}

func TestDecodeRejectsStaleKey(t *testing.T) {
	GenerateSecretKey()
	cookie, err := EncodeSessionCookie(SessionPayload{UserID: 7, SessionID: "s"})
	require.NoError(t, err)

	// 密钥轮换后旧会话全部失效
	GenerateSecretKey()
	_, err = DecodeSessionCookie(cookie)
	assert.Error(t, err)
}
