package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lawnchairsociety/hearthplan/internal/building"
)

// parseSeedRange reads an inclusive range "first-last". Either bound may be
// negative, as in "-5--1".
func parseSeedRange(s string) (int64, int64, error) {
	idx := -1
	if len(s) > 1 {
		if i := strings.Index(s[1:], "-"); i >= 0 {
			idx = i + 1
		}
	}
	if idx < 0 {
		return 0, 0, fmt.Errorf("invalid seed range %q: want first-last", s)
	}
	first, err := strconv.ParseInt(s[:idx], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid seed range %q: %w", s, err)
	}
	last, err := strconv.ParseInt(s[idx+1:], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid seed range %q: %w", s, err)
	}
	if first > last {
		return 0, 0, fmt.Errorf("invalid seed range %q: first seed is after the last", s)
	}
	return first, last, nil
}

// parseLot reads a lot size written as WxH.
func parseLot(s string) (building.LotSize, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return building.LotSize{}, fmt.Errorf("invalid lot %q: want WxH", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return building.LotSize{}, fmt.Errorf("invalid lot width in %q: %w", s, err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return building.LotSize{}, fmt.Errorf("invalid lot height in %q: %w", s, err)
	}
	return building.LotSize{Width: width, Height: height}, nil
}
