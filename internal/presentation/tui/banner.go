package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	` _    _                            _    `,
	`| |  | |                          | |   `,
	`| |  | | __ _ _   _ _ __ ___   __ _ _ __| | __`,
	`| |/\| |/ _' | | | | '_ ' _ \ / _' | '__| |/ /`,
	`\  /\  / (_| | |_| | | | | | | (_| | |  |   < `,
	` \/  \/ \__,_|\__, |_| |_| |_|\__,_|_|  |_|\_\`,
	`               __/ |`,
	`              |___/ `,
}

var bannerColors = []string{
	ColorMarker, ColorMarker, ColorRoute, ColorRoute,
	ColorRisky, ColorRisky, ColorDistinctBlocker, ColorDistinctBlocker,
}

// PrintBanner writes the Waymark banner followed by a short legend.
func PrintBanner(w io.Writer, profile termenv.Profile) {
	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line).Foreground(profile.Color(bannerColors[i])))
	}
	fmt.Fprintln(w)

	legend := []struct{ symbol, color, name string }{
		{"·", ColorNeutral, "empty"},
		{"●", ColorMarker, "waypoint"},
		{"■", ColorBlocker, "obstacle"},
		{"▲", ColorDistinctBlocker, "inaccessible"},
		{"5", ColorRisky, "risky"},
		{"•", ColorRoute, "route"},
	}
	for _, l := range legend {
		fmt.Fprintf(w, "%s %s  ", termenv.String(l.symbol).Foreground(profile.Color(l.color)), l.name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)
}
