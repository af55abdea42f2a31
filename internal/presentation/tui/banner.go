package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner with the running version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient from indigo to rose.
	s1 := termenv.String(`  _     ___ _____ _____    ___  ____  `).Foreground(p.Color("#818cf8"))
	s2 := termenv.String(` | |   |_ _|  ___| ____|  / _ \/ ___| `).Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(` | |    | || |_  |  _|   | | | \___ \ `).Foreground(p.Color("#c084fc"))
	s4 := termenv.String(` | |___ | ||  _| | |___  | |_| |___) |`).Foreground(p.Color("#e879f9"))
	s5 := termenv.String(` |_____|___|_|   |_____|  \___/|____/ `).Foreground(p.Color("#f472b6"))
	tag := termenv.String(fmt.Sprintf("  antifragile intelligence v%s", version)).Foreground(p.Color("#fb7185")).Faint()

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(tag)
	fmt.Println()
}
