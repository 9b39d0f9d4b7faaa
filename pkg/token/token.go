package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// secretKey 是一个全局变量，用于存储服务器在启动时生成的32字节密钥。
// 密钥不持久化，重启后所有旧会话自动失效。
var secretKey []byte

// SessionPayload 定义了会话Cookie中被签名的数据结构。
type SessionPayload struct {
	UserID    int    `json:"u"`
	SessionID string `json:"s"`
}

// GenerateSecretKey 生成一个密码学安全的32字节随机密钥。
func GenerateSecretKey() {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	if err != nil {
		panic("无法生成安全的密钥: " + err.Error())
	}
	secretKey = key
	fmt.Println("HMAC密钥已成功生成。")
}

// sign 使用HMAC-SHA256对任意字节签名，返回URL安全的Base64编码。
func sign(data []byte) string {
	mac := hmac.New(sha256.New, secretKey)
	mac.Write(data)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// EncodeSessionCookie 将会话负载编码为"payload.signature"形式的Cookie值。
func EncodeSessionCookie(payload SessionPayload) (string, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", errors.New("无法序列化会话负载")
	}
	encodedPayload := base64.RawURLEncoding.EncodeToString(payloadBytes)
	return encodedPayload + "." + sign(payloadBytes), nil
}

// DecodeSessionCookie 解析并校验一个会话Cookie值。
// 签名不匹配、格式错误都会返回错误，调用方应将其视为匿名访问。
func DecodeSessionCookie(value string) (*SessionPayload, error) {
	parts := strings.SplitN(value, ".", 2)
	if len(parts) != 2 {
		return nil, errors.New("会话Cookie格式错误")
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, errors.New("会话负载解码失败")
	}

	// 使用 hmac.Equal 进行时间恒定的比较，防止时序攻击
	expected := sign(payloadBytes)
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return nil, errors.New("会话签名校验失败")
	}

	var payload SessionPayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		return nil, errors.New("无法解析会话负载")
	}
	return &payload, nil
}
