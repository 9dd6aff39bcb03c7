package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peter-evance/bookspace/backend/internal/utils"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"simple names", []string{"Peter", "Evance"}, "peter-evance"},
		{"mixed case", []string{"GRACE", "otieno"}, "grace-otieno"},
		{"apostrophe splits", []string{"Ngugi", "wa Thiong'o"}, "ngugi-wa-thiong-o"},
		{"digits kept", []string{"Agent", "007"}, "agent-007"},
		{"leading and trailing junk", []string{"  Mary!  ", "O'Brien"}, "mary-o-brien"},
		{"empty input", []string{"", ""}, ""},
		{"han characters romanized", []string{"小明", "王"}, "xiao-ming-wang"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.Slugify(tt.parts...))
		})
	}
}

func TestGenerateRandomOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp := utils.GenerateRandomOTP()
		assert.Len(t, otp, 6)
	}
}

func TestGenerateRandomUser(t *testing.T) {
	user, err := utils.GenerateRandomUser("secret-password", "bookspace.shop")
	assert.NoError(t, err)
	assert.NotEmpty(t, user.Username)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret-password", user.PasswordHash)
	assert.Contains(t, user.Email, "@bookspace.shop")
	assert.False(t, user.IsOwner)
	assert.False(t, user.IsManager)
	assert.False(t, user.IsAssistantManager)
	assert.False(t, user.IsWorker)
}
