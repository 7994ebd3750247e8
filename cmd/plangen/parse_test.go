package main

import (
	"testing"

	"github.com/lawnchairsociety/hearthplan/internal/building"
	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/config"
)

func TestParseSeedRange(t *testing.T) {
	tests := []struct {
		in          string
		first, last int64
		wantErr     bool
	}{
		{"1-20", 1, 20, false},
		{"7-7", 7, 7, false},
		{"-5--1", -5, -1, false},
		{"-3-2", -3, 2, false},
		{"20-1", 0, 0, true},
		{"12", 0, 0, true},
		{"a-b", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			first, last, err := parseSeedRange(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSeedRange(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if first != tt.first || last != tt.last {
				t.Errorf("parseSeedRange(%q) = %d, %d, want %d, %d", tt.in, first, last, tt.first, tt.last)
			}
		})
	}
}

func TestParseLot(t *testing.T) {
	tests := []struct {
		in      string
		want    building.LotSize
		wantErr bool
	}{
		{"24x18", building.LotSize{Width: 24, Height: 18}, false},
		{"10X8", building.LotSize{Width: 10, Height: 8}, false},
		{"24", building.LotSize{}, true},
		{"x18", building.LotSize{}, true},
		{"24xwide", building.LotSize{}, true},
	}
	for _, tt := range tests {
		got, err := parseLot(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLot(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseLot(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestBaseOptions(t *testing.T) {
	cfg := config.DefaultConfig()

	opts, err := baseOptions(cfg, "", "", 0, "", "")
	if err != nil {
		t.Fatalf("baseOptions: %v", err)
	}
	if opts.BuildingType != catalog.HouseSmall || opts.SocialClass != catalog.Common {
		t.Errorf("defaults = %v/%v, want house_small/common", opts.BuildingType, opts.SocialClass)
	}
	if opts.Stories != nil || opts.Basement != nil || opts.LotSize != nil {
		t.Errorf("unset flags should leave options nil, got %+v", opts)
	}

	opts, err = baseOptions(cfg, "tavern", "noble", 3, "true", "30x26")
	if err != nil {
		t.Fatalf("baseOptions: %v", err)
	}
	if opts.BuildingType != catalog.Tavern || opts.SocialClass != catalog.Noble {
		t.Errorf("type/class = %v/%v, want tavern/noble", opts.BuildingType, opts.SocialClass)
	}
	if opts.Stories == nil || *opts.Stories != 3 {
		t.Errorf("Stories = %v, want 3", opts.Stories)
	}
	if opts.Basement == nil || !*opts.Basement {
		t.Errorf("Basement = %v, want true", opts.Basement)
	}
	if opts.LotSize == nil || *opts.LotSize != (building.LotSize{Width: 30, Height: 26}) {
		t.Errorf("LotSize = %v, want 30x26", opts.LotSize)
	}

	for _, bad := range [][3]string{{"castle", "", ""}, {"", "royal", ""}, {"", "", "maybe"}} {
		if _, err := baseOptions(cfg, bad[0], bad[1], 0, bad[2], ""); err == nil {
			t.Errorf("baseOptions(%q) should fail", bad)
		}
	}
}
