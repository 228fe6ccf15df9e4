package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-runewidth"

	"github.com/Digital-Shane/tvdbxml/internal/client"
	"github.com/Digital-Shane/tvdbxml/internal/model"
)

func TestTruncate(t *testing.T) {
	runewidth.DefaultCondition.EastAsianWidth = false

	tests := map[string]struct {
		in    string
		width int
		want  string
	}{
		"short":              {in: "Pilot", width: 10, want: "Pilot"},
		"collapse spaces":    {in: "  A \n\t  B  ", width: 10, want: "A B"},
		"cut with ellipsis":  {in: "Breaking Bad", width: 6, want: "Break…"},
		"wide runes counted": {in: "日本語テキスト", width: 7, want: "日本語…"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := truncate(tc.in, tc.width); got != tc.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
			}
		})
	}
}

func TestCellFormatting(t *testing.T) {
	got := []string{
		num(model.NotPresent),
		num(0),
		num(42),
		rating(model.NotPresent),
		rating(7.5),
		list(nil),
		list([]string{"Drama", "Crime"}),
	}
	want := []string{"", "0", "42", "", "7.5", "", "Drama, Crime"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cell formatting mismatch (-want +got):\n%s", diff)
	}
}

func TestMaskKey(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"empty": {in: "", want: ""},
		"short": {in: "abc", want: "***"},
		"long":  {in: "0123456789ABCDEF", want: "************CDEF"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := maskKey(tc.in); got != tc.want {
				t.Errorf("maskKey(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestAccents(t *testing.T) {
	withColors := model.NewBannerBuilder().SetColors([]string{"255,255,255", "0,0,0", "16,32,48"}).Build()
	if got, want := accents(withColors), "#ffffff #000000 #102030"; got != want {
		t.Errorf("accents() = %q, want %q", got, want)
	}

	plain := model.NewBannerBuilder().Build()
	if got := accents(plain); got != "" {
		t.Errorf("accents() without colors = %q, want empty", got)
	}
}

func TestViewPrint(t *testing.T) {
	actors := []model.Actor{
		model.NewActorBuilder().SetID(1).SetName("Bryan Cranston").SetRole("Walter White").SetSortOrder(0).Build(),
		model.NewActorBuilder().SetID(2).SetName("Aaron Paul").SetRole("Jesse Pinkman").SetSortOrder(1).Build(),
	}
	v := actorsView(actors)

	var table bytes.Buffer
	if err := v.print(&table, false); err != nil {
		t.Fatalf("print(table) error = %v", err)
	}
	for _, want := range []string{"Actors", "Bryan Cranston", "Jesse Pinkman", "Rank"} {
		if !strings.Contains(table.String(), want) {
			t.Errorf("table output missing %q:\n%s", want, table.String())
		}
	}
	if strings.Contains(table.String(), "RANK") {
		t.Errorf("table headers were upper-cased:\n%s", table.String())
	}

	var out bytes.Buffer
	if err := v.print(&out, true); err != nil {
		t.Fatalf("print(json) error = %v", err)
	}
	var got []model.Actor
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("json output does not decode: %v\n%s", err, out.String())
	}
	if diff := cmp.Diff(actors, got); diff != "" {
		t.Errorf("json output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"A", "B", "C"}, [][]string{{"1"}, {"2", "3", "4"}}, []columnAlignment{alignRight})
	if strings.Count(out, "\n") < 4 {
		t.Errorf("renderTable() produced too few lines:\n%s", out)
	}
	if renderTable(nil, nil, nil) != "" {
		t.Error("renderTable() without headers should be empty")
	}
}

func TestDescribe(t *testing.T) {
	plain := errors.New("boom")
	if got := describe(plain); got != plain {
		t.Errorf("describe(plain) = %v, want unchanged", got)
	}

	limited := fmt.Errorf("series 1: %w", &client.ProviderError{Code: "RATE_LIMITED", Message: "TVDB rate limit exceeded", Retry: true, RetryAfter: 10})
	got := describe(limited)
	if !strings.Contains(got.Error(), "retry in 10s") {
		t.Errorf("describe(rate limited) = %q, want a retry hint", got)
	}
	var pe *client.ProviderError
	if !errors.As(got, &pe) {
		t.Error("describe() lost the ProviderError")
	}
}

func TestParseArguments(t *testing.T) {
	if _, err := parseSeriesID("abc"); err == nil {
		t.Error("parseSeriesID(abc) error = nil, want error")
	}
	if _, err := parseSeriesID("0"); err == nil {
		t.Error("parseSeriesID(0) error = nil, want error")
	}
	if id, err := parseSeriesID("81189"); err != nil || id != 81189 {
		t.Errorf("parseSeriesID(81189) = %d, %v", id, err)
	}
	if n, err := parseNumber("season", "0"); err != nil || n != 0 {
		t.Errorf("parseNumber(0) = %d, %v, want 0 for specials", n, err)
	}
	if _, err := parseNumber("episode", "-1"); err == nil {
		t.Error("parseNumber(-1) error = nil, want error")
	}
}
