package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/wardrobe/internal/model"
	"github.com/Veraticus/wardrobe/internal/style"
	"github.com/Veraticus/wardrobe/internal/testutil"
	"github.com/Veraticus/wardrobe/internal/viewmodel"
)

func TestRenderProfile(t *testing.T) {
	t.Run("signed out", func(t *testing.T) {
		out := RenderProfile(viewmodel.NewProfileView(nil))
		assert.Contains(t, out, viewmodel.SignedOutProfile)
	})

	t.Run("signed in", func(t *testing.T) {
		out := RenderProfile(viewmodel.NewProfileView(testutil.Profile("mia")))
		assert.Contains(t, out, "mia")
		assert.Contains(t, out, "X-shape | Hourglass")
		assert.Contains(t, out, "Winter (cool tones)")
		assert.Contains(t, out, "168 cm")
	})
}

func TestRenderStatsAndWardrobe(t *testing.T) {
	items := testutil.NewItemBuilder().WithCapsule().Build()
	view := viewmodel.NewWardrobeView(items, style.GroupAll, true)

	stats := RenderStats(view)
	assert.Contains(t, stats, "Most owned: T-shirt (2)")
	assert.Contains(t, stats, "Jeans")

	list := RenderWardrobe(view)
	assert.Contains(t, list, "All (5)")
	assert.Contains(t, list, "White tee")
	assert.Contains(t, list, "Sneakers")

	empty := RenderWardrobe(viewmodel.NewWardrobeView(items, style.GroupDresses, true))
	assert.Contains(t, empty, viewmodel.EmptyGroup)
}

func TestRenderTips(t *testing.T) {
	out := RenderTips(style.GenerateTips(&model.UserProfile{SkinSeason: "winter", BodyShape: "X"}))
	assert.Contains(t, out, style.TitleSeason)
	assert.Contains(t, out, style.TitleShape)
	assert.Contains(t, out, style.TitleFabric)
}

func TestRenderRecommendations(t *testing.T) {
	assert.Contains(t, RenderRecommendations(style.NormalizeResults(nil)), style.NoRecommendations)

	items := testutil.NewItemBuilder().With("Trench coat", "coat", "#C4A484").Build()
	out := RenderRecommendations(style.NormalizeResults(testutil.Results(items, 0.82)))
	assert.Contains(t, out, "0.82")
	assert.Contains(t, out, "Trench coat")
	assert.Contains(t, out, " 90%")
	assert.Contains(t, out, " 55%")
}

func TestRenderOutfits(t *testing.T) {
	assert.Contains(t, RenderOutfits(style.NormalizeOutfits(nil)), style.NoOutfits)

	items := testutil.NewItemBuilder().WithCapsule().Build()
	out := RenderOutfits(style.NormalizeOutfits(testutil.Outfits(items, "Work")))
	assert.Contains(t, out, "Work look")
	assert.Contains(t, out, "Match: 80%")
	assert.NotContains(t, out, "Trench coat", "only the first three items are listed")
}

func TestRenderShowcaseAndDashboard(t *testing.T) {
	assert.Contains(t, RenderShowcase(style.Showcase(nil)), "Essential")

	d := viewmodel.NewDashboard(viewmodel.Input{User: testutil.Profile("mia")})
	out := RenderDashboard(d)
	for _, section := range []string{"Profile", "Wardrobe overview", "Style tips", "Recommendations", "Outfits", "Highlights"} {
		assert.Contains(t, out, section)
	}
}

func TestRenderUploadSummary(t *testing.T) {
	out := RenderUploadSummary(viewmodel.NewUploadSummary(model.UploadResult{
		Item:           model.WardrobeItem{Category: "coat"},
		Classification: model.ItemClassification{Method: model.ClassificationMethodDeepLearning, Confidence: 0.5},
	}))
	assert.Contains(t, out, "Recognized as: Coat")
	assert.Contains(t, out, "Confidence: 50.0%")
	assert.Contains(t, out, "Extracted 0 colours")
}

func TestCredentialPrompter(t *testing.T) {
	tests := []struct {
		wantErr  error
		name     string
		input    string
		username string
		want     Credentials
	}{
		{name: "prompts both", input: "mia\nsecret\n", want: Credentials{Username: "mia", Password: "secret"}},
		{name: "username given", username: "mia", input: "secret\n", want: Credentials{Username: "mia", Password: "secret"}},
		{name: "blank password", username: "mia", input: "\n", wantErr: ErrEmptyCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewCredentialPrompterFromReader(strings.NewReader(tt.input), &out)

			got, err := p.Prompt(context.Background(), tt.username)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Password")
		})
	}
}

func TestCredentialPrompter_HiddenPassword(t *testing.T) {
	var out bytes.Buffer
	p := NewCredentialPrompterFromReader(strings.NewReader(""), &out)
	p.readPassword = func() ([]byte, error) { return []byte("hunter2"), nil }

	got, err := p.Prompt(context.Background(), "mia")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got.Password)
	assert.NotContains(t, out.String(), "hunter2")
}

func TestNewUploadProgress(t *testing.T) {
	var out bytes.Buffer
	bar := NewUploadProgress(&out, 10, "tee.png")

	n, err := bar.Write([]byte("0123456789"))
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Contains(t, out.String(), "Uploading tee.png")
}
