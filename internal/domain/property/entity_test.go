//go:build unit

package property_test

import (
	"strings"
	"testing"
	"time"

	"guri24/internal/domain/money"
	"guri24/internal/domain/property"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() property.Details {
	price, _ := money.Parse("45000.00")
	return property.Details{
		Title:       "Sunny loft near the old city",
		Description: strings.Repeat("Bright two-room loft with a balcony. ", 3),
		Type:        property.TypeApartment,
		Purpose:     property.PurposeStay,
		Price:       price,
		Location:    "Tashkent",
	}
}

func TestNewProperty(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("defaults to draft", func(t *testing.T) {
		p, err := property.NewProperty(validDetails(), "", uuid.New(), now)
		require.NoError(t, err)

		assert.Equal(t, "sunny-loft-near-the-old-city", p.Slug())
		assert.Equal(t, property.StatusDraft, p.Status())
		assert.True(t, p.IsBookable())
		assert.Equal(t, now, p.CreatedAt())
	})

	tests := []struct {
		name   string
		mutate func(*property.Details)
		status property.Status
		errIs  error
	}{
		{name: "short title", mutate: func(d *property.Details) { d.Title = "short" }, errIs: property.ErrTitleLength},
		{name: "short description", mutate: func(d *property.Details) { d.Description = "too short" }, errIs: property.ErrDescriptionLength},
		{name: "short location", mutate: func(d *property.Details) { d.Location = "ab" }, errIs: property.ErrLocationLength},
		{name: "zero price", mutate: func(d *property.Details) { d.Price = money.Zero() }, errIs: property.ErrNonPositivePrice},
		{name: "unknown type", mutate: func(d *property.Details) { d.Type = "castle" }, errIs: property.ErrInvalidType},
		{name: "unknown purpose", mutate: func(d *property.Details) { d.Purpose = "lease" }, errIs: property.ErrInvalidPurpose},
		{name: "negative bedrooms", mutate: func(d *property.Details) { n := int32(-1); d.Bedrooms = &n }, errIs: property.ErrNegativeCount},
		{name: "title without slug characters", mutate: func(d *property.Details) { d.Title = "!!!!!!!!!!!!" }, errIs: property.ErrEmptySlug},
		{name: "unknown status", mutate: func(d *property.Details) {}, status: "deleted", errIs: property.ErrInvalidStatus},
		{name: "published status", mutate: func(d *property.Details) {}, status: property.StatusPublished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.mutate(&d)

			p, err := property.NewProperty(d, tt.status, uuid.New(), now)
			if tt.errIs != nil {
				require.Nil(t, p)
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, p)
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Sunny Loft":               "sunny-loft",
		"  --Villa @ Chimgan!!-- ": "villa-chimgan",
		"3 rooms, 2 baths":         "3-rooms-2-baths",
		"Квартира в центре":        "",
	}
	for in, want := range tests {
		assert.Equal(t, want, property.Slugify(in), in)
	}
}

func TestWithSlugAttempt(t *testing.T) {
	p, err := property.NewProperty(validDetails(), property.StatusPublished, uuid.New(), time.Now())
	require.NoError(t, err)

	p.WithSlugAttempt(2)
	assert.Equal(t, "sunny-loft-near-the-old-city-2", p.Slug())

	p.WithSlugAttempt(0)
	assert.Equal(t, "sunny-loft-near-the-old-city", p.Slug())
}

func TestApply(t *testing.T) {
	created := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	edited := created.Add(time.Hour)
	str := func(s string) *string { return &s }

	t.Run("partial update keeps the slug when the title is unchanged", func(t *testing.T) {
		p, err := property.NewProperty(validDetails(), property.StatusDraft, uuid.New(), created)
		require.NoError(t, err)
		p.WithSlugAttempt(3)
		published := property.StatusPublished

		retitled, err := p.Apply(property.Patch{Location: str("Samarkand"), Status: &published}, edited)

		require.NoError(t, err)
		assert.False(t, retitled)
		assert.Equal(t, "sunny-loft-near-the-old-city-3", p.Slug())
		assert.Equal(t, "Samarkand", p.Details().Location)
		assert.Equal(t, validDetails().Title, p.Details().Title)
		assert.Equal(t, property.StatusPublished, p.Status())
		assert.Equal(t, edited, p.UpdatedAt())
	})

	t.Run("new title resets the slug", func(t *testing.T) {
		p, err := property.NewProperty(validDetails(), property.StatusDraft, uuid.New(), created)
		require.NoError(t, err)

		retitled, err := p.Apply(property.Patch{Title: str("Quiet villa by the lake")}, edited)

		require.NoError(t, err)
		assert.True(t, retitled)
		assert.Equal(t, "quiet-villa-by-the-lake", p.Slug())
	})

	tests := []struct {
		name  string
		patch property.Patch
		errIs error
	}{
		{"short title", property.Patch{Title: str("short")}, property.ErrTitleLength},
		{"zero price", property.Patch{Price: func() *money.Money { z := money.Zero(); return &z }()}, property.ErrNonPositivePrice},
		{"unknown status", property.Patch{Status: func() *property.Status { s := property.Status("deleted"); return &s }()}, property.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := property.NewProperty(validDetails(), property.StatusDraft, uuid.New(), created)
			require.NoError(t, err)
			before := p.Details()

			_, err = p.Apply(tt.patch, edited)

			require.ErrorIs(t, err, tt.errIs)
			assert.Equal(t, before, p.Details())
			assert.Equal(t, property.StatusDraft, p.Status())
			assert.Equal(t, created, p.UpdatedAt())
		})
	}
}

func TestArchive(t *testing.T) {
	agent := uuid.New()
	p, err := property.NewProperty(validDetails(), property.StatusPublished, agent, time.Now())
	require.NoError(t, err)

	p.Archive(time.Now())

	assert.Equal(t, property.StatusArchived, p.Status())
	assert.True(t, p.IsOwnedBy(agent))
	assert.False(t, p.IsOwnedBy(uuid.New()))
}
