package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/wardrobe/internal/common"
	"github.com/Veraticus/wardrobe/internal/config"
	"github.com/Veraticus/wardrobe/internal/testutil"
)

func setupViper(t *testing.T, serverURL string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	config.SetDefaults(viper.GetViper())
	viper.Set(config.KeyServerURL, serverURL)
	viper.Set(config.KeySessionPath, filepath.Join(t.TempDir(), "session.db"))
}

func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestProfileUpdateFromFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantEmpty bool
		check     func(t *testing.T, age, height, weight *int, shape, season *string)
	}{
		{
			name:      "no flags",
			wantEmpty: true,
		},
		{
			name: "numbers only",
			args: []string{"--age", "29", "--height", "168"},
			check: func(t *testing.T, age, height, weight *int, shape, season *string) {
				require.NotNil(t, age)
				require.NotNil(t, height)
				assert.Equal(t, 29, *age)
				assert.Equal(t, 168, *height)
				assert.Nil(t, weight)
				assert.Nil(t, shape)
				assert.Nil(t, season)
			},
		},
		{
			name: "codes are normalized",
			args: []string{"--body-shape", " x ", "--skin-season", "Winter"},
			check: func(t *testing.T, _, _, _ *int, shape, season *string) {
				require.NotNil(t, shape)
				require.NotNil(t, season)
				assert.Equal(t, "X", *shape)
				assert.Equal(t, "winter", *season)
			},
		},
		{
			name: "explicit zero is kept",
			args: []string{"--weight", "0"},
			check: func(t *testing.T, _, _, weight *int, _, _ *string) {
				require.NotNil(t, weight)
				assert.Equal(t, 0, *weight)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := profileUpdateCmd()
			require.NoError(t, cmd.ParseFlags(tt.args))

			update, err := profileUpdateFromFlags(cmd.Flags())
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmpty, update.IsEmpty())
			if tt.check != nil {
				tt.check(t, update.Age, update.Height, update.Weight, update.BodyShape, update.SkinSeason)
			}
		})
	}
}

func TestAuthFlow(t *testing.T) {
	backend := testutil.NewBackend(t, "mia", "secret")
	backend.SetProfile(testutil.Profile("mia"))
	setupViper(t, backend.URL())

	out, err := execute(t, authCmd(), "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in")

	out, err = execute(t, authCmd(), "secret\n", "login", "-u", "mia", "--password-stdin")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as mia")

	// The session survives into a fresh app.
	out, err = execute(t, authCmd(), "", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "mia\n", out)

	out, err = execute(t, authCmd(), "", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")

	out, err = execute(t, authCmd(), "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in")
}

func TestLoginWrongPassword(t *testing.T) {
	backend := testutil.NewBackend(t, "mia", "secret")
	setupViper(t, backend.URL())

	_, err := execute(t, authCmd(), "nope\n", "login", "-u", "mia", "--password-stdin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Wrong username or password")
}

func TestCommandsRequireLogin(t *testing.T) {
	backend := testutil.NewBackend(t, "mia", "secret")
	setupViper(t, backend.URL())

	tests := []struct {
		name string
		cmd  func() *cobra.Command
		args []string
	}{
		{"wardrobe list", wardrobeCmd, []string{"list"}},
		{"wardrobe stats", wardrobeCmd, []string{"stats"}},
		{"outfits", recommendCmd, []string{"outfits"}},
		{"recommend", recommendCmd, nil},
		{"profile update", profileCmd, []string{"update", "--age", "30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.cmd(), "", tt.args...)
			require.Error(t, err)
		})
	}
}

func TestSignedInCommands(t *testing.T) {
	backend := testutil.NewBackend(t, "mia", "secret")
	backend.SetProfile(testutil.Profile("mia"))
	items := testutil.NewItemBuilder().WithCapsule().Build()
	backend.SetItems(items)
	backend.SetResults(testutil.Results(items[:2], 1.4, 0.3))
	setupViper(t, backend.URL())

	_, err := execute(t, authCmd(), "secret\n", "login", "-u", "mia", "--password-stdin")
	require.NoError(t, err)

	t.Run("tips", func(t *testing.T) {
		out, err := execute(t, tipsCmd(), "")
		require.NoError(t, err)
		assert.Contains(t, out, "Colour advice")
	})

	t.Run("wardrobe list filtered", func(t *testing.T) {
		out, err := execute(t, wardrobeCmd(), "", "list", "--group", "bottoms")
		require.NoError(t, err)
		assert.Contains(t, out, "Blue jeans")
		assert.NotContains(t, out, "White tee")
	})

	t.Run("recommend", func(t *testing.T) {
		out, err := execute(t, recommendCmd(), "")
		require.NoError(t, err)
		assert.Contains(t, out, "1.40")
		assert.Contains(t, out, "White tee")
	})

	t.Run("upload", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "linen-shirt.png")
		testutil.WriteFile(t, path, testutil.PNG(t))

		out, err := execute(t, wardrobeCmd(), "", "upload", "--quiet", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Uploaded!")
		assert.Len(t, backend.Items(), len(items)+1)
	})

	t.Run("delete rejects bad id", func(t *testing.T) {
		_, err := execute(t, wardrobeCmd(), "", "delete", "abc")
		assert.EqualError(t, err, `invalid item id "abc"`)
	})

	t.Run("delete unknown item", func(t *testing.T) {
		_, err := execute(t, wardrobeCmd(), "", "delete", "9999")
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrNotFound)
		assert.Equal(t, "No item with id 9999", common.UserMessage(err))
	})

	t.Run("profile update", func(t *testing.T) {
		out, err := execute(t, profileCmd(), "", "update", "--age", "31")
		require.NoError(t, err)
		assert.Contains(t, out, "Profile updated")
		assert.Contains(t, out, "31")
	})

	t.Run("profile update out of range", func(t *testing.T) {
		_, err := execute(t, profileCmd(), "", "update", "--age", "5")
		require.Error(t, err)
	})
}
