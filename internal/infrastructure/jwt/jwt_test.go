package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	s := New("super-secret")
	userID := "123"
	role := "ADMIN"

	tok, err := s.GenerateJWT(userID, role, time.Hour)
	require.NoError(t, err, "GenerateJWT should not error")
	require.NotEmpty(t, tok, "token must not be empty")

	subject, claims, err := s.ValidateToken(tok)
	require.NoError(t, err, "ValidateToken should not error for fresh token")
	require.NotNil(t, claims)

	assert.Equal(t, uint64(123), subject)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, role, claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Time.After(time.Now().Add(-1*time.Second)))
}

func TestGenerateJWT_NoSecret(t *testing.T) {
	s := New("")

	tok, err := s.GenerateJWT("1", "USER", time.Hour)
	require.ErrorIs(t, err, ErrSecretNotConfigured)
	assert.Empty(t, tok)
}

func TestValidateToken_Table(t *testing.T) {
	type fields struct {
		secret string
	}
	type want struct {
		ok      bool
		err     error
		subject uint64
	}

	makeToken := func(secret, userID string, exp time.Duration) string {
		s := New(secret)
		tok, err := s.GenerateJWT(userID, "USER", exp)
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name   string
		fields fields
		token  string
		want   want
	}{
		{
			name:   "valid token",
			fields: fields{secret: "k1"},
			token:  makeToken("k1", "42", 5*time.Minute),
			want: want{
				ok:      true,
				subject: 42,
			},
		},
		{
			name:   "invalid secret (signature mismatch)",
			fields: fields{secret: "k2"},
			token:  makeToken("k1", "42", 5*time.Minute),
			want: want{
				err: ErrTokenInvalid,
			},
		},
		{
			name:   "expired token",
			fields: fields{secret: "k1"},
			token:  makeToken("k1", "42", -1*time.Minute),
			want: want{
				err: ErrTokenExpired,
			},
		},
		{
			name:   "malformed token string",
			fields: fields{secret: "k1"},
			token:  "not-a-jwt",
			want: want{
				err: ErrTokenInvalid,
			},
		},
		{
			name:   "payload without numeric subject",
			fields: fields{secret: "k1"},
			token:  makeToken("k1", "person-42", 5*time.Minute),
			want: want{
				err: ErrInvalidPayload,
			},
		},
		{
			name:   "payload with zero subject",
			fields: fields{secret: "k1"},
			token:  makeToken("k1", "0", 5*time.Minute),
			want: want{
				err: ErrInvalidPayload,
			},
		},
		{
			name:   "no secret configured",
			fields: fields{secret: ""},
			token:  makeToken("k1", "42", 5*time.Minute),
			want: want{
				err: ErrSecretNotConfigured,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.fields.secret)

			subject, claims, err := s.ValidateToken(tt.token)
			if tt.want.ok {
				require.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, tt.want.subject, subject)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.want.err)
				assert.Nil(t, claims)
				assert.Zero(t, subject)
			}
		})
	}
}
