package gateway

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		member *discordgo.Member
		want   string
	}{
		{"nil member", nil, ""},
		{"nickname wins", &discordgo.Member{Nick: "Nick", User: &discordgo.User{GlobalName: "Global", Username: "user"}}, "Nick"},
		{"global name", &discordgo.Member{User: &discordgo.User{GlobalName: "Global", Username: "user"}}, "Global"},
		{"username", &discordgo.Member{User: &discordgo.User{Username: "user"}}, "user"},
		{"no user", &discordgo.Member{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.member))
		})
	}
}

func TestWrapMarksNotFound(t *testing.T) {
	restErr := &discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusNotFound}}

	err := wrap(restErr, "channel %s", "42")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "channel 42")

	var target *discordgo.RESTError
	assert.True(t, errors.As(err, &target))
}

func TestWrapKeepsOtherErrors(t *testing.T) {
	forbidden := &discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusForbidden}}

	err := wrap(forbidden, "delete message %s", "7")
	assert.NotErrorIs(t, err, ErrNotFound)

	plain := errors.New("connection reset")
	err = wrap(plain, "send")
	assert.ErrorIs(t, err, plain)
	assert.NotErrorIs(t, err, ErrNotFound)
}
