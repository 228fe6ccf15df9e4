package model

import (
	"image/color"
	"strconv"
	"strings"
)

// Banner is artwork attached to a series or one of its seasons.
type Banner struct {
	ID            int     `json:"id"`
	BannerPath    Text    `json:"banner_path"`
	ThumbnailPath Text    `json:"thumbnail_path"`
	VignettePath  Text    `json:"vignette_path"`
	Rating        float32 `json:"rating"`
	RatingCount   int     `json:"rating_count"`
	HasSeriesName bool    `json:"has_series_name"`

	// Accent colors are packed 0xRRGGBB values, present on fanart only.
	LightAccentColor    int `json:"light_accent_color"`
	DarkAccentColor     int `json:"dark_accent_color"`
	NeutralMidtoneColor int `json:"neutral_midtone_color"`

	Type         Text `json:"type"`  // poster, fanart, series or season
	Type2        Text `json:"type2"` // resolution, or season/seasonwide
	Language     Text `json:"language"`
	SeasonNumber int  `json:"season_number"`
}

// AccentColors returns the light, dark and neutral colors. ok is false when
// the banner carries no color information.
func (b Banner) AccentColors() (light, dark, neutral color.RGBA, ok bool) {
	if b.LightAccentColor == NotPresent || b.DarkAccentColor == NotPresent || b.NeutralMidtoneColor == NotPresent {
		return color.RGBA{}, color.RGBA{}, color.RGBA{}, false
	}
	return unpackRGB(b.LightAccentColor), unpackRGB(b.DarkAccentColor), unpackRGB(b.NeutralMidtoneColor), true
}

func unpackRGB(v int) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// packRGB parses "r,g,b" into 0xRRGGBB. Malformed input yields NotPresent.
func packRGB(csv string) int {
	parts := strings.Split(csv, ",")
	if len(parts) != 3 {
		return NotPresent
	}
	v := 0
	for _, p := range parts {
		c, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || c < 0 || c > 255 {
			return NotPresent
		}
		v = v<<8 | c
	}
	return v
}

type BannerBuilder struct {
	b Banner
}

func NewBannerBuilder() *BannerBuilder {
	return &BannerBuilder{b: Banner{
		ID:                  NotPresent,
		Rating:              NotPresent,
		RatingCount:         NotPresent,
		LightAccentColor:    NotPresent,
		DarkAccentColor:     NotPresent,
		NeutralMidtoneColor: NotPresent,
		SeasonNumber:        NotPresent,
	}}
}

func (b *BannerBuilder) SetID(v int) *BannerBuilder {
	b.b.ID = v
	return b
}

func (b *BannerBuilder) SetBannerPath(path string) *BannerBuilder {
	b.b.BannerPath = ImageURL(path)
	return b
}

func (b *BannerBuilder) SetThumbnailPath(path string) *BannerBuilder {
	b.b.ThumbnailPath = ImageURL(path)
	return b
}

func (b *BannerBuilder) SetVignettePath(path string) *BannerBuilder {
	b.b.VignettePath = ImageURL(path)
	return b
}

func (b *BannerBuilder) SetRating(v float32) *BannerBuilder {
	b.b.Rating = v
	return b
}

func (b *BannerBuilder) SetRatingCount(v int) *BannerBuilder {
	b.b.RatingCount = v
	return b
}

func (b *BannerBuilder) SetHasSeriesName(v bool) *BannerBuilder {
	b.b.HasSeriesName = v
	return b
}

// SetColors applies a light, dark, neutral triple of "r,g,b" strings. Any
// other list length leaves the colors untouched.
func (b *BannerBuilder) SetColors(colors []string) *BannerBuilder {
	if len(colors) != 3 {
		return b
	}
	b.b.LightAccentColor = packRGB(colors[0])
	b.b.DarkAccentColor = packRGB(colors[1])
	b.b.NeutralMidtoneColor = packRGB(colors[2])
	return b
}

func (b *BannerBuilder) SetType(v string) *BannerBuilder {
	b.b.Type = NewText(v)
	return b
}

func (b *BannerBuilder) SetType2(v string) *BannerBuilder {
	b.b.Type2 = NewText(v)
	return b
}

func (b *BannerBuilder) SetLanguage(v string) *BannerBuilder {
	b.b.Language = NewText(v)
	return b
}

func (b *BannerBuilder) SetSeasonNumber(v int) *BannerBuilder {
	b.b.SeasonNumber = v
	return b
}

func (b *BannerBuilder) Build() Banner {
	return b.b
}
