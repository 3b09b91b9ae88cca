package main

import (
	"fmt"
	"strings"
)

// progressBar renders a fixed-width terminal progress bar, redrawn in
// place with a carriage return.
type progressBar struct {
	total   int
	current int
	prefix  string
	width   int
}

func newProgressBar(total int, prefix string) *progressBar {
	bar := &progressBar{total: total, prefix: prefix, width: 50}
	bar.render("Starting...")
	return bar
}

func (b *progressBar) step(suffix string) {
	if b.current < b.total {
		b.current++
	}
	b.render(suffix)
	if b.current == b.total {
		fmt.Println()
	}
}

// abort ends the bar's line so error output starts cleanly.
func (b *progressBar) abort() {
	fmt.Println()
}

func (b *progressBar) render(suffix string) {
	filled := b.width * b.current / b.total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", b.width-filled)
	percent := 100 * float64(b.current) / float64(b.total)
	fmt.Printf("\r%s |%s| %.1f%% %s", b.prefix, bar, percent, suffix)
}
