package views

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"dailylog/internal/adapters/tui/styles"
	"dailylog/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

var (
	itemTimeRegex = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) (.*)$`)
	itemLinkRegex = regexp.MustCompile(`\[\[[^\]]+\]\]`)
)

// RenderItem styles one bullet line: the timestamp is dimmed and links are highlighted
func RenderItem(line string) string {
	body := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), domain.BulletMarker))

	var stamp string
	if m := itemTimeRegex.FindStringSubmatch(body); m != nil {
		stamp, body = m[1], m[2]
	}

	body = itemLinkRegex.ReplaceAllStringFunc(body, func(link string) string {
		return styles.Link.Render(link)
	})

	if stamp != "" {
		return "• " + styles.ItemTime.Render(stamp[11:]) + " " + styles.Item.Render(body)
	}
	return "• " + styles.Item.Render(body)
}

// RenderDay renders a day entry category by category.
// Categories without filled items show a muted placeholder.
func RenderDay(e *domain.DayEntry) string {
	var b strings.Builder

	heading := fmt.Sprintf("%s (%s)", e.DateString(), e.Weekday)
	b.WriteString(styles.DayHeading.Render(heading))
	if !e.WeekdayConsistent() {
		b.WriteString(" ")
		b.WriteString(styles.WeekdayMismatch.Render(fmt.Sprintf("expected (%s)", domain.WeekdaySymbol(e.Date))))
	}
	b.WriteString("\n")

	for _, c := range domain.Categories {
		b.WriteString("\n")
		b.WriteString(styles.CategoryHeading(c))
		b.WriteString("\n")

		items := e.FilledItems(c)
		if len(items) == 0 {
			b.WriteString("  ")
			b.WriteString(styles.MutedText.Render("(empty)"))
			b.WriteString("\n")
			continue
		}
		for _, item := range items {
			b.WriteString("  ")
			b.WriteString(RenderItem(item))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderCounts renders per-category item counts in template order, e.g. "회사 2 · 개인 0"
func RenderCounts(counts []int) string {
	parts := make([]string, 0, len(counts))
	for i, n := range counts {
		if i >= len(domain.Categories) {
			break
		}
		label := fmt.Sprintf("%s %d", domain.Categories[i], n)
		if n == 0 {
			parts = append(parts, styles.MutedText.Render(label))
			continue
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, styles.MutedText.Render(" · "))
}
