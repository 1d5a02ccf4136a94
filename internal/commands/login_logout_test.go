package commands_test

import (
	"os"
	"strings"
	"testing"

	"todo/internal/commands"
	"todo/internal/exitcode"
)

func TestLoginCommand_NoOAuthClient(t *testing.T) {
	env := newEnv(t, nil, nil, false, nil)

	stdout, stderr, code := runCommand(t, &commands.LoginCmd{}, env, nil)
	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "oauth_client.json not found") {
		t.Errorf("expected setup instructions, got %q", stderr)
	}
	if !strings.Contains(stderr, env.Config.OAuthClientPath()) {
		t.Errorf("expected the credentials path in the message, got %q", stderr)
	}
}

func TestLogoutCommand_NotLoggedIn(t *testing.T) {
	env := newEnv(t, nil, nil, false, nil)

	stdout, stderr, code := runCommand(t, &commands.LogoutCmd{}, env, nil)
	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "not logged in\n" {
		t.Errorf("expected 'not logged in', got %q", stdout)
	}
}

func TestLogoutCommand_RemovesToken(t *testing.T) {
	env := newEnv(t, nil, nil, false, nil)
	if err := os.WriteFile(env.Config.TokenPath(), []byte(`{"access_token":"x"}`), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	stdout, _, code := runCommand(t, &commands.LogoutCmd{}, env, nil)
	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	if env.Config.HasToken() {
		t.Error("token file should be gone")
	}
}
