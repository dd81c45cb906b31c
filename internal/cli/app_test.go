package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/localauth/internal/logging"
)

func TestRun_RestoresSessionAndExits(t *testing.T) {
	capturePrints(t)

	f := &fakeAuth{user: jane, session: jane}
	var out bytes.Buffer
	a := NewApp(f, nil, logging.NewNopLogger(), strings.NewReader("logout\nexit\n"), &out)

	a.Run(context.Background())

	assert.Contains(t, out.String(), "Welcome back, Jane!")
	assert.True(t, f.logoutCalled)
	assert.False(t, a.isLoggedIn())
}

func TestRun_NoSession(t *testing.T) {
	capturePrints(t)

	f := &fakeAuth{}
	var out bytes.Buffer
	a := NewApp(f, nil, logging.NewNopLogger(), strings.NewReader(""), &out)

	a.Run(context.Background())

	assert.Contains(t, out.String(), "Welcome to localauth")
	assert.NotContains(t, out.String(), "Welcome back")
	assert.False(t, a.isLoggedIn())
}
