package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaderpath_backend/internal/model"
)

const testSecret = "test-secret-test-secret-test-secret"

func testUser() *model.User {
	return &model.User{
		BaseModel:      model.BaseModel{ID: 9},
		Name:           "张伟",
		Email:          "zhangwei@example.com",
		Role:           model.Leader,
		OrganizationID: 3,
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	t.Run("签发后可解析出原始声明", func(t *testing.T) {
		token, err := GenerateJWT(testUser(), testSecret, time.Hour)
		require.NoError(t, err)

		claims, err := ParseJWT(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, uint(9), claims.UserID)
		assert.Equal(t, uint(3), claims.OrganizationID)
		assert.Equal(t, model.Leader, claims.Role)
		assert.Equal(t, "zhangwei@example.com", claims.Email)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("每次签发的jti不同", func(t *testing.T) {
		first, err := GenerateJWT(testUser(), testSecret, time.Hour)
		require.NoError(t, err)
		second, err := GenerateJWT(testUser(), testSecret, time.Hour)
		require.NoError(t, err)

		c1, err := ParseJWT(first, testSecret)
		require.NoError(t, err)
		c2, err := ParseJWT(second, testSecret)
		require.NoError(t, err)
		assert.NotEqual(t, c1.ID, c2.ID)
	})

	t.Run("密钥不符解析失败", func(t *testing.T) {
		token, err := GenerateJWT(testUser(), testSecret, time.Hour)
		require.NoError(t, err)

		_, err = ParseJWT(token, "another-secret-another-secret-xx")
		assert.Error(t, err)
	})

	t.Run("过期令牌解析失败", func(t *testing.T) {
		token, err := GenerateJWT(testUser(), testSecret, -time.Minute)
		require.NoError(t, err)

		_, err = ParseJWT(token, testSecret)
		assert.Error(t, err)
	})
}
